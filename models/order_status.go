package models

import (
	"fmt"
	"strings"
)

// OrderStatus is the closed set of states an order can be in. The stored
// value doubles as the external token, so there is exactly one mapping.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// AllStatuses lists every legal order status.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOnTheWay,
	StatusDelivered,
	StatusCanceled,
}

// ParseOrderStatus normalizes an external status token. Matching is
// case-insensitive; anything outside the five legal values is rejected.
func ParseOrderStatus(token string) (OrderStatus, error) {
	normalized := OrderStatus(strings.ToLower(strings.TrimSpace(token)))
	for _, s := range AllStatuses {
		if normalized == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status %q, allowed: %s", token, statusList())
}

// IsValid reports whether the status is one of the five legal values.
func (s OrderStatus) IsValid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

func statusList() string {
	tokens := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		tokens[i] = string(s)
	}
	return strings.Join(tokens, ", ")
}
