package service

import "fmt"

// ExerciseInput holds one exercise of a workout create/update payload.
type ExerciseInput struct {
	ExerciseName string
	Weight       float64
	Sets         int
	Reps         int
}

// CreateWorkoutInput holds parameters for logging a workout.
type CreateWorkoutInput struct {
	Title     string
	Date      string
	Exercises []ExerciseInput
}

// UpdateWorkoutInput holds a partial workout update. Nil fields are left
// untouched; a non-nil Exercises replaces the whole child set.
type UpdateWorkoutInput struct {
	Title     *string
	Date      *string
	Exercises *[]ExerciseInput
}

// TemplateExerciseInput holds one exercise of a template payload. Templates
// carry no weight.
type TemplateExerciseInput struct {
	ExerciseName string
	Sets         int
	Reps         int
}

// CreateTemplateInput holds parameters for saving a template.
type CreateTemplateInput struct {
	Name      string
	Exercises []TemplateExerciseInput
}

// UpdateTemplateInput holds a partial template update.
type UpdateTemplateInput struct {
	Name      *string
	Exercises *[]TemplateExerciseInput
}

// validateExercises checks workout exercises, returning the first violation.
func validateExercises(exercises []ExerciseInput) error {
	for i, ex := range exercises {
		if ex.ExerciseName == "" {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: exercise_name is required", i)}
		}
		if ex.Weight < 0 {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: weight must be 0 or greater", i)}
		}
		if ex.Sets <= 0 {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: sets must be greater than 0", i)}
		}
		if ex.Reps <= 0 {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: reps must be greater than 0", i)}
		}
	}
	return nil
}

// validateTemplateExercises checks template exercises, returning the first
// violation.
func validateTemplateExercises(exercises []TemplateExerciseInput) error {
	for i, ex := range exercises {
		if ex.ExerciseName == "" {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: exercise_name is required", i)}
		}
		if ex.Sets <= 0 {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: sets must be greater than 0", i)}
		}
		if ex.Reps <= 0 {
			return &ValidationError{Message: fmt.Sprintf("exercises[%d]: reps must be greater than 0", i)}
		}
	}
	return nil
}
