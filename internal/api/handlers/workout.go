package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/service"
)

type WorkoutHandler struct {
	svc *service.WorkoutService
}

func NewWorkoutHandler(svc *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

// Request types
type ExercisePayload struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
}

type CreateWorkoutRequest struct {
	Title     string            `json:"title"`
	Date      string            `json:"date"`
	Exercises []ExercisePayload `json:"exercises"`
}

type UpdateWorkoutRequest struct {
	Title     *string            `json:"title"`
	Date      *string            `json:"date"`
	Exercises *[]ExercisePayload `json:"exercises"`
}

func toExerciseInputs(payloads []ExercisePayload) []service.ExerciseInput {
	inputs := make([]service.ExerciseInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, service.ExerciseInput{
			ExerciseName: p.ExerciseName,
			Weight:       p.Weight,
			Sets:         p.Sets,
			Reps:         p.Reps,
		})
	}
	return inputs
}

// ListWorkouts godoc
// @Summary List the current user's workouts
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param date query string false "Restrict to an exact date (YYYY-MM-DD)"
// @Success 200 {array} models.WorkoutSession
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID := getUserID(c)

	workouts, err := h.svc.List(userID, c.Query("date"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// CreateWorkout godoc
// @Summary Log a new workout
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param workout body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} models.WorkoutSession
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID := getUserID(c)

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	workout, err := h.svc.Create(userID, service.CreateWorkoutInput{
		Title:     req.Title,
		Date:      req.Date,
		Exercises: toExerciseInputs(req.Exercises),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GetWorkout godoc
// @Summary Get a workout by ID
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} models.WorkoutSession
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID := getUserID(c)

	workout, err := h.svc.Get(userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout godoc
// @Summary Update a workout
// @Description Updates supplied scalar fields; a supplied exercise list replaces the previous one entirely.
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param workout body UpdateWorkoutRequest true "Fields to update"
// @Success 200 {object} models.WorkoutSession
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID := getUserID(c)

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	input := service.UpdateWorkoutInput{
		Title: req.Title,
		Date:  req.Date,
	}
	if req.Exercises != nil {
		exercises := toExerciseInputs(*req.Exercises)
		input.Exercises = &exercises
	}

	workout, err := h.svc.Update(userID, c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout and its exercises
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID := getUserID(c)

	if err := h.svc.Delete(userID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
