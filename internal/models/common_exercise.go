package models

// CommonExercise is a row in the static reference list used by the
// exercise-name search. Seeded once at startup, never written afterwards.
type CommonExercise struct {
	ExerciseName string `gorm:"type:text;primaryKey" json:"exercise_name"`
}

// TableName overrides the default pluralization.
func (CommonExercise) TableName() string {
	return "common_exercises"
}
