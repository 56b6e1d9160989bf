package auth

import (
	"github.com/gin-gonic/gin"
)

// LocalUserID is the sentinel identity used when no identity provider is
// configured. All rows written in dev mode belong to this user.
const LocalUserID = "local-dev-user"

// LocalAuthenticator resolves every request to a constant user id so the
// application runs without external credentials. It is selected only when
// the provider configuration is absent or a placeholder; with real
// configuration present it is never constructed.
type LocalAuthenticator struct {
	userID string
}

// NewLocalAuthenticator creates the dev-mode authenticator.
func NewLocalAuthenticator() *LocalAuthenticator {
	return &LocalAuthenticator{userID: LocalUserID}
}

// Middleware returns a middleware that always authenticates.
func (a *LocalAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDContextKey, a.userID)
		c.Next()
	}
}
