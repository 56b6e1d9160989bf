package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/service"
)

type TemplateHandler struct {
	svc *service.TemplateService
}

func NewTemplateHandler(svc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// Request types
type TemplateExercisePayload struct {
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

type CreateTemplateRequest struct {
	Name      string                    `json:"name"`
	Exercises []TemplateExercisePayload `json:"exercises"`
}

type UpdateTemplateRequest struct {
	Name      *string                    `json:"name"`
	Exercises *[]TemplateExercisePayload `json:"exercises"`
}

func toTemplateExerciseInputs(payloads []TemplateExercisePayload) []service.TemplateExerciseInput {
	inputs := make([]service.TemplateExerciseInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, service.TemplateExerciseInput{
			ExerciseName: p.ExerciseName,
			Sets:         p.Sets,
			Reps:         p.Reps,
		})
	}
	return inputs
}

// ListTemplates godoc
// @Summary List the current user's templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Template
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	userID := getUserID(c)

	templates, err := h.svc.List(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Save a new template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param template body CreateTemplateRequest true "Template details"
// @Success 201 {object} models.Template
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID := getUserID(c)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	template, err := h.svc.Create(userID, service.CreateTemplateInput{
		Name:      req.Name,
		Exercises: toTemplateExerciseInputs(req.Exercises),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetTemplate godoc
// @Summary Get a template by ID
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.Template
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	userID := getUserID(c)

	template, err := h.svc.Get(userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param template body UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} models.Template
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID := getUserID(c)

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	input := service.UpdateTemplateInput{
		Name: req.Name,
	}
	if req.Exercises != nil {
		exercises := toTemplateExerciseInputs(*req.Exercises)
		input.Exercises = &exercises
	}

	template, err := h.svc.Update(userID, c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary Delete a template and its exercises
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID := getUserID(c)

	if err := h.svc.Delete(userID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
