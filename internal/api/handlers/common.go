package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/auth"
	"github.com/gymtrack-dev/gymtrack/internal/service"
)

// ErrorResponse is the JSON body for all error statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON body for deletes.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// handleServiceError maps service-layer errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		return
	}
	slog.Error("unhandled service error", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// getUserID extracts the authenticated user id set by the auth middleware.
// The middleware aborts unauthenticated requests, so an empty id here means
// a route was registered outside the protected group.
func getUserID(c *gin.Context) string {
	userID, err := auth.UserID(c)
	if err != nil {
		return ""
	}
	return userID
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
