package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/service"
)

type ExerciseHandler struct {
	svc *service.SearchService
}

func NewExerciseHandler(svc *service.SearchService) *ExerciseHandler {
	return &ExerciseHandler{svc: svc}
}

// SearchExercises godoc
// @Summary Autocomplete exercise names
// @Description Case-insensitive substring match over the user's own history and the common-exercise list; history first, deduplicated, at most 50 results.
// @Tags exercises
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /exercises/search [get]
func (h *ExerciseHandler) SearchExercises(c *gin.Context) {
	userID := getUserID(c)

	results, err := h.svc.Search(userID, c.Query("q"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
