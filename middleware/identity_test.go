package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentity(t *testing.T) {
	router := gin.New()
	router.Use(Identity())
	router.GET("/whoami", func(c *gin.Context) {
		role, roleErr := GetRole(c)
		id, idErr := GetAccountID(c)
		c.JSON(http.StatusOK, gin.H{
			"role":    role,
			"role_ok": roleErr == nil,
			"id":      id,
			"id_ok":   idErr == nil,
		})
	})

	tests := []struct {
		name         string
		headers      map[string]string
		expectedRole string
		expectRole   bool
		expectedID   float64
		expectID     bool
	}{
		{
			name:         "Role and id extracted from headers",
			headers:      map[string]string{"X-Account-Role": "client", "X-Account-ID": "42"},
			expectedRole: "client",
			expectRole:   true,
			expectedID:   42,
			expectID:     true,
		},
		{
			name:       "Anonymous request carries no identity",
			headers:    nil,
			expectRole: false,
			expectID:   false,
		},
		{
			name:         "Non-numeric id is ignored",
			headers:      map[string]string{"X-Account-Role": "admin", "X-Account-ID": "abc"},
			expectedRole: "admin",
			expectRole:   true,
			expectID:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			if tt.expectRole {
				assert.Contains(t, body, `"role":"`+tt.expectedRole+`"`)
				assert.Contains(t, body, `"role_ok":true`)
			} else {
				assert.Contains(t, body, `"role_ok":false`)
			}
			if tt.expectID {
				assert.Contains(t, body, `"id_ok":true`)
			} else {
				assert.Contains(t, body, `"id_ok":false`)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := gin.New()
	router.Use(Identity())
	router.POST("/restricted", RequireRole("restaurant"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	tests := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "Matching role passes",
			headers:        map[string]string{"X-Account-Role": "restaurant", "X-Account-ID": "1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Different role is rejected",
			headers:        map[string]string{"X-Account-Role": "client", "X-Account-ID": "1"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing role is rejected",
			headers:        nil,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/restricted", nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "FORBIDDEN")
			}
		})
	}
}
