package middleware

import "github.com/gin-gonic/gin"

// contextKey is used for values stored by this package.
// Using a custom type prevents collisions.
type contextKey string

const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID set by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(requestIDKey))
	if !exists {
		return "", false
	}
	requestID, ok := val.(string)
	return requestID, ok
}
