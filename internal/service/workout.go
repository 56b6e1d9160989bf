package service

import (
	"errors"

	"github.com/gymtrack-dev/gymtrack/internal/models"
	"gorm.io/gorm"
)

// WorkoutService contains the business logic for workout sessions. Every
// method takes the calling user's id; ownership filtering happens here, at
// the query level, never in a handler.
type WorkoutService struct {
	db *gorm.DB
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// orderedExercises preloads a workout's exercise list in display order.
func orderedExercises(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

// List returns the user's workouts, newest first, each with its exercises.
// A non-empty date restricts to exact match on the stored date string.
func (s *WorkoutService) List(userID, date string) ([]models.WorkoutSession, error) {
	query := s.db.Where("user_id = ?", userID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var workouts []models.WorkoutSession
	if err := query.Preload("Exercises", orderedExercises).Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}

	for i := range workouts {
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []models.Exercise{}
		}
	}
	return workouts, nil
}

// Get returns a single workout owned by the user.
func (s *WorkoutService) Get(userID, id string) (*models.WorkoutSession, error) {
	var workout models.WorkoutSession
	err := s.db.Preload("Exercises", orderedExercises).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if workout.Exercises == nil {
		workout.Exercises = []models.Exercise{}
	}
	return &workout, nil
}

// Create validates and logs a new workout. The session row and all its
// exercise rows are written in one transaction; order_index follows the
// submitted order, starting at 0.
func (s *WorkoutService) Create(userID string, in CreateWorkoutInput) (*models.WorkoutSession, error) {
	if in.Title == "" {
		return nil, &ValidationError{Message: "title is required"}
	}
	if in.Date == "" {
		return nil, &ValidationError{Message: "date is required"}
	}
	if err := validateExercises(in.Exercises); err != nil {
		return nil, err
	}

	workout := models.WorkoutSession{
		UserID: userID,
		Title:  in.Title,
		Date:   in.Date,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Exercises").Create(&workout).Error; err != nil {
			return err
		}
		return insertExercises(tx, workout.ID, in.Exercises)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(userID, workout.ID)
}

// Update applies a partial update. Supplied scalar fields are updated
// independently; a supplied exercise list replaces the previous set
// entirely, with fresh ids and re-numbered order_index.
func (s *WorkoutService) Update(userID, id string, in UpdateWorkoutInput) (*models.WorkoutSession, error) {
	if in.Title != nil && *in.Title == "" {
		return nil, &ValidationError{Message: "title is required"}
	}
	if in.Date != nil && *in.Date == "" {
		return nil, &ValidationError{Message: "date is required"}
	}
	if in.Exercises != nil {
		if err := validateExercises(*in.Exercises); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var workout models.WorkoutSession
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&workout).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if in.Title != nil {
			updates["title"] = *in.Title
		}
		if in.Date != nil {
			updates["date"] = *in.Date
		}
		if len(updates) > 0 {
			if err := tx.Model(&workout).Updates(updates).Error; err != nil {
				return err
			}
		}

		if in.Exercises != nil {
			if err := tx.Where("workout_id = ?", id).Delete(&models.Exercise{}).Error; err != nil {
				return err
			}
			if err := insertExercises(tx, id, *in.Exercises); err != nil {
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

// Delete removes a workout and its exercises. Children are deleted
// explicitly so behavior does not depend on the storage engine honoring
// the cascade constraint.
func (s *WorkoutService) Delete(userID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var workout models.WorkoutSession
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&workout).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("workout_id = ?", id).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}

// insertExercises writes an exercise list for a workout with sequential
// order_index.
func insertExercises(tx *gorm.DB, workoutID string, exercises []ExerciseInput) error {
	for i, in := range exercises {
		exercise := models.Exercise{
			WorkoutID:    workoutID,
			ExerciseName: in.ExerciseName,
			Weight:       in.Weight,
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
