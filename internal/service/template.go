package service

import (
	"errors"
	"strings"

	"github.com/gymtrack-dev/gymtrack/internal/models"
	"gorm.io/gorm"
)

// TemplateService contains the business logic for exercise templates. Same
// ownership and full-replace semantics as WorkoutService, minus weight.
type TemplateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// List returns the user's templates, newest first, each with its exercises.
func (s *TemplateService) List(userID string) ([]models.Template, error) {
	var templates []models.Template
	err := s.db.Where("user_id = ?", userID).
		Preload("Exercises", orderedExercises).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].Exercises == nil {
			templates[i].Exercises = []models.TemplateExercise{}
		}
	}
	return templates, nil
}

// Get returns a single template owned by the user.
func (s *TemplateService) Get(userID, id string) (*models.Template, error) {
	var template models.Template
	err := s.db.Preload("Exercises", orderedExercises).
		Where("id = ? AND user_id = ?", id, userID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if template.Exercises == nil {
		template.Exercises = []models.TemplateExercise{}
	}
	return &template, nil
}

// Create validates and saves a new template with its exercises in one
// transaction.
func (s *TemplateService) Create(userID string, in CreateTemplateInput) (*models.Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if err := validateTemplateExercises(in.Exercises); err != nil {
		return nil, err
	}

	template := models.Template{
		UserID: userID,
		Name:   name,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Create(&template).Error; err != nil {
			return err
		}
		return insertTemplateExercises(tx, template.ID, in.Exercises)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, template.ID)
}

// Update applies a partial update; a supplied exercise list replaces the
// previous set entirely.
func (s *TemplateService) Update(userID, id string, in UpdateTemplateInput) (*models.Template, error) {
	var name string
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, &ValidationError{Message: "name is required"}
		}
	}
	if in.Exercises != nil {
		if err := validateTemplateExercises(*in.Exercises); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var template models.Template
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if in.Name != nil {
			if err := tx.Model(&template).Update("name", name).Error; err != nil {
				return err
			}
		}

		if in.Exercises != nil {
			if err := tx.Where("template_id = ?", id).Delete(&models.TemplateExercise{}).Error; err != nil {
				return err
			}
			if err := insertTemplateExercises(tx, id, *in.Exercises); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, id)
}

// Delete removes a template and its exercises.
func (s *TemplateService) Delete(userID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var template models.Template
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("template_id = ?", id).Delete(&models.TemplateExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
}

// insertTemplateExercises writes a template's exercise list with sequential
// order_index.
func insertTemplateExercises(tx *gorm.DB, templateID string, exercises []TemplateExerciseInput) error {
	for i, in := range exercises {
		exercise := models.TemplateExercise{
			TemplateID:   templateID,
			ExerciseName: in.ExerciseName,
			Sets:         in.Sets,
			Reps:         in.Reps,
			OrderIndex:   i,
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return err
		}
	}
	return nil
}
