package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ErrUnauthorized indicates the request carries no valid session.
var ErrUnauthorized = errors.New("unauthorized")

// UserIDContextKey is the key used to store the resolved user id in the
// Gin context.
const UserIDContextKey = "user_id"

// Authenticator resolves an inbound request to a user identifier. The
// variant (OIDC or local dev) is chosen once at startup from configuration.
type Authenticator interface {
	// Middleware returns a Gin middleware that authenticates the request
	// and stores the user id in the context, or aborts with 401.
	Middleware() gin.HandlerFunc
}

// UserID extracts the authenticated user id from the Gin context. Returns
// ErrUnauthorized if the auth middleware did not run.
func UserID(c *gin.Context) (string, error) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return "", ErrUnauthorized
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}

	return userID, nil
}
