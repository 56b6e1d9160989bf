package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/auth"
)

// OIDCLogin godoc
// @Summary Initiate login
// @Description Redirects the user to the identity provider
// @Tags auth
// @Success 307 {string} string "Redirect to identity provider"
// @Router /auth/login [get]
func OIDCLogin(oidcAuth *auth.OIDCAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Random state for CSRF protection, round-tripped via cookie
		state, err := generateRandomState()
		if err != nil {
			slog.Error("Failed to generate state", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		c.SetCookie("oidc_state", state, 600, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, oidcAuth.AuthURL(state))
	}
}

// OIDCCallback godoc
// @Summary Handle identity-provider callback
// @Description Verifies the provider's response, sets the session cookie and redirects to the app
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State parameter"
// @Success 307 {string} string "Redirect to application root"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/callback [get]
func OIDCCallback(oidcAuth *auth.OIDCAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		storedState, err := c.Cookie("oidc_state")
		if err != nil || state == "" || state != storedState {
			slog.Warn("Invalid OIDC state", "state", state)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid state parameter"})
			return
		}

		// Clear the state cookie
		c.SetCookie("oidc_state", "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing authorization code"})
			return
		}

		token, err := oidcAuth.HandleCallback(c.Request.Context(), code)
		if err != nil {
			slog.Error("OIDC callback failed", "error", err)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication failed"})
			return
		}

		c.SetCookie(auth.SessionCookieName, token, 24*60*60, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, "/")
	}
}

// Me godoc
// @Summary Return the resolved user id for the current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": getUserID(c)})
}

// generateRandomState generates a random state string for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
