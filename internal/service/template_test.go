package service

import (
	"errors"
	"testing"

	"github.com/gymtrack-dev/gymtrack/internal/models"
)

func pushTemplateInput() CreateTemplateInput {
	return CreateTemplateInput{
		Name: "Push Day",
		Exercises: []TemplateExerciseInput{
			{ExerciseName: "Bench Press", Sets: 5, Reps: 5},
			{ExerciseName: "Overhead Press", Sets: 3, Reps: 8},
		},
	}
}

func TestCreateTemplate(t *testing.T) {
	svc := NewTemplateService(testDB(t))

	created, err := svc.Create("user-1", pushTemplateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Push Day" {
		t.Errorf("unexpected name %q", created.Name)
	}
	if len(created.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(created.Exercises))
	}
	for i, ex := range created.Exercises {
		if ex.OrderIndex != i {
			t.Errorf("exercise %d: expected order_index %d, got %d", i, i, ex.OrderIndex)
		}
	}
}

func TestCreateTemplate_NameTrimmedAndRequired(t *testing.T) {
	svc := NewTemplateService(testDB(t))

	var validationErr *ValidationError
	if _, err := svc.Create("user-1", CreateTemplateInput{Name: "   "}); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for blank name, got %v", err)
	}

	created, err := svc.Create("user-1", CreateTemplateInput{Name: "  Pull Day  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Pull Day" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
}

func TestCreateTemplate_Validation(t *testing.T) {
	svc := NewTemplateService(testDB(t))

	cases := []struct {
		name string
		in   []TemplateExerciseInput
	}{
		{"missing exercise name", []TemplateExerciseInput{{Sets: 3, Reps: 8}}},
		{"zero sets", []TemplateExerciseInput{{ExerciseName: "Bench Press", Sets: 0, Reps: 8}}},
		{"zero reps", []TemplateExerciseInput{{ExerciseName: "Bench Press", Sets: 3, Reps: 0}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create("user-1", CreateTemplateInput{Name: "Push Day", Exercises: tc.in})
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestTemplateOwnership(t *testing.T) {
	svc := NewTemplateService(testDB(t))

	created, err := svc.Create("owner", pushTemplateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get("intruder", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete("intruder", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTemplate_ReplacesExercises(t *testing.T) {
	db := testDB(t)
	svc := NewTemplateService(db)

	created, err := svc.Create("user-1", pushTemplateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := []TemplateExerciseInput{
		{ExerciseName: "Incline Bench Press", Sets: 4, Reps: 8},
	}
	updated, err := svc.Update("user-1", created.ID, UpdateTemplateInput{Exercises: &replacement})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Exercises) != 1 {
		t.Fatalf("expected 1 exercise after replace, got %d", len(updated.Exercises))
	}
	if updated.Exercises[0].ExerciseName != "Incline Bench Press" {
		t.Errorf("unexpected exercise %q", updated.Exercises[0].ExerciseName)
	}
	if updated.Exercises[0].OrderIndex != 0 {
		t.Errorf("expected order_index 0, got %d", updated.Exercises[0].OrderIndex)
	}

	var count int64
	db.Model(&models.TemplateExercise{}).Where("template_id = ?", created.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 row attached, got %d", count)
	}
}

func TestDeleteTemplate_RemovesChildren(t *testing.T) {
	db := testDB(t)
	svc := NewTemplateService(db)

	created, err := svc.Create("user-1", pushTemplateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete("user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Get("user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	var orphans int64
	db.Model(&models.TemplateExercise{}).Where("template_id = ?", created.ID).Count(&orphans)
	if orphans != 0 {
		t.Errorf("expected no template exercise rows left, got %d", orphans)
	}
}
