package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gymtrack-dev/gymtrack/internal/config"
	"golang.org/x/oauth2"
)

// SessionCookieName is the cookie the middleware falls back to when no
// Authorization header is present.
const SessionCookieName = "session"

// sessionDuration is the validity period for issued session tokens.
const sessionDuration = 24 * time.Hour

// OIDCAuthenticator delegates identity to an external OIDC provider. After
// the callback verifies the provider's ID token, it mints a signed session
// token whose subject is the provider's subject id; the middleware only
// ever sees that session token.
type OIDCAuthenticator struct {
	provider        *oidc.Provider
	config          *oauth2.Config
	verifier        *oidc.IDTokenVerifier
	jwtSecret       []byte
	providerTimeout time.Duration
}

// NewOIDCAuthenticator discovers the provider configuration and builds the
// production authenticator.
func NewOIDCAuthenticator(ctx context.Context, cfg config.AuthConfig) (*OIDCAuthenticator, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := cfg.ProviderTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// Discovery hits the provider's well-known endpoint; cap it so an
	// unreachable provider fails fast instead of hanging startup.
	discoveryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	provider, err := oidc.NewProvider(discoveryCtx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: cfg.ClientID,
	})

	return &OIDCAuthenticator{
		provider:        provider,
		config:          oauth2Config,
		verifier:        verifier,
		jwtSecret:       []byte(cfg.JWTSecret),
		providerTimeout: timeout,
	}, nil
}

// AuthURL returns the URL to redirect users to for authentication
func (a *OIDCAuthenticator) AuthURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, verifies the ID token
// and returns a session token for the provider's subject id.
func (a *OIDCAuthenticator) HandleCallback(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()

	oauth2Token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return "", errors.New("no id_token in token response")
	}

	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}

	if idToken.Subject == "" {
		return "", errors.New("ID token has no subject")
	}

	token, err := a.issueToken(idToken.Subject)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	slog.Info("User logged in via OIDC", "subject", idToken.Subject)
	return token, nil
}

// issueToken creates a signed session token for a subject id.
func (a *OIDCAuthenticator) issueToken(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "gymtrack",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// validateToken validates a session token and returns its subject.
func (a *OIDCAuthenticator) validateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrUnauthorized
	}

	return claims.Subject, nil
}

// Middleware returns a Gin middleware for authentication.
// It checks (in order): Bearer token header, session cookie.
func (a *OIDCAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else if cookie, err := c.Cookie(SessionCookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			c.Abort()
			return
		}

		subject, err := a.validateToken(tokenString)
		if err != nil {
			slog.Warn("Invalid session token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(UserIDContextKey, subject)
		c.Next()
	}
}
