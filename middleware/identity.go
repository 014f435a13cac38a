package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AuthError represents an identity extraction error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Identity reads the caller's role and account id from the X-Account-Role
// and X-Account-ID headers into the request context. The session layer in
// front of this API guarantees both are present on authenticated traffic.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetHeader("X-Account-Role"); role != "" {
			c.Set("account_role", role)
		}
		if rawID := c.GetHeader("X-Account-ID"); rawID != "" {
			if id, err := strconv.ParseUint(rawID, 10, 64); err == nil {
				c.Set("account_id", uint(id))
			}
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the request carries the given role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, err := GetRole(c)
		if err != nil || actual != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "This action requires the " + role + " role",
				},
			})
			return
		}
		c.Next()
	}
}

// GetRole extracts the caller's role from the Gin context
func GetRole(c *gin.Context) (string, error) {
	role, exists := c.Get("account_role")
	if !exists {
		return "", &AuthError{Code: "MISSING_ROLE", Message: "Role not found in context"}
	}

	roleStr, ok := role.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_ROLE", Message: "Role is not a string"}
	}

	return roleStr, nil
}

// GetAccountID extracts the caller's account id from the Gin context
func GetAccountID(c *gin.Context) (uint, error) {
	id, exists := c.Get("account_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_ACCOUNT_ID", Message: "Account ID not found in context"}
	}

	idVal, ok := id.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_ACCOUNT_ID", Message: "Account ID is not numeric"}
	}

	return idVal, nil
}
