package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected OrderStatus
		wantErr  bool
	}{
		{name: "pending", token: "pending", expected: StatusPending},
		{name: "preparing", token: "preparing", expected: StatusPreparing},
		{name: "on the way", token: "on_the_way", expected: StatusOnTheWay},
		{name: "delivered", token: "delivered", expected: StatusDelivered},
		{name: "canceled", token: "canceled", expected: StatusCanceled},
		{name: "upper case", token: "PENDING", expected: StatusPending},
		{name: "mixed case", token: "On_The_Way", expected: StatusOnTheWay},
		{name: "surrounding whitespace", token: "  delivered  ", expected: StatusDelivered},
		{name: "empty", token: "", wantErr: true},
		{name: "unknown token", token: "shipped", wantErr: true},
		{name: "localized label", token: "Entregue", wantErr: true},
		{name: "hyphenated", token: "on-the-way", wantErr: true},
		{name: "partial match", token: "pending2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseOrderStatus(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}
	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
