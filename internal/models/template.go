package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template is a reusable exercise list a user can start a workout from.
type Template struct {
	ID        string             `gorm:"type:text;primaryKey" json:"id"`
	UserID    string             `gorm:"type:text;not null;index" json:"-"`
	Name      string             `gorm:"not null" json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	Exercises []TemplateExercise `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// BeforeCreate hook to generate UUID
func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TemplateExercise mirrors Exercise without weight: weight is specific to
// a logged workout, not to the template it was started from.
type TemplateExercise struct {
	ID           string `gorm:"type:text;primaryKey" json:"id"`
	TemplateID   string `gorm:"type:text;not null;index" json:"template_id"`
	ExerciseName string `gorm:"not null" json:"exercise_name"`
	Sets         int    `gorm:"not null" json:"sets"`
	Reps         int    `gorm:"not null" json:"reps"`
	OrderIndex   int    `gorm:"not null" json:"order_index"`
}

// BeforeCreate hook to generate UUID
func (t *TemplateExercise) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
