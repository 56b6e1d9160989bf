package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutSession is a single logged workout. Exercises are always loaded
// and replaced as a whole set, ordered by OrderIndex.
type WorkoutSession struct {
	ID        string     `gorm:"type:text;primaryKey" json:"id"`
	UserID    string     `gorm:"type:text;not null;index" json:"-"`
	Title     string     `gorm:"not null" json:"title"`
	Date      string     `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time  `json:"created_at"`
	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// BeforeCreate hook to generate UUID
func (w *WorkoutSession) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Exercise is one entry in a workout session's exercise list.
// OrderIndex is contiguous and zero-based within its workout.
type Exercise struct {
	ID           string    `gorm:"type:text;primaryKey" json:"id"`
	WorkoutID    string    `gorm:"type:text;not null;index" json:"workout_id"`
	ExerciseName string    `gorm:"not null" json:"exercise_name"`
	Weight       float64   `gorm:"not null" json:"weight"`
	Sets         int       `gorm:"not null" json:"sets"`
	Reps         int       `gorm:"not null" json:"reps"`
	OrderIndex   int       `gorm:"not null" json:"order_index"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate hook to generate UUID
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
