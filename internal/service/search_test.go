package service

import (
	"fmt"
	"testing"

	"github.com/gymtrack-dev/gymtrack/internal/models"
	"gorm.io/gorm"
)

func seedCommon(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := db.Create(&models.CommonExercise{ExerciseName: name}).Error; err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}
}

func logWorkout(t *testing.T, db *gorm.DB, userID string, names ...string) {
	t.Helper()
	svc := NewWorkoutService(db)
	exercises := make([]ExerciseInput, 0, len(names))
	for _, name := range names {
		exercises = append(exercises, ExerciseInput{ExerciseName: name, Weight: 100, Sets: 3, Reps: 5})
	}
	if _, err := svc.Create(userID, CreateWorkoutInput{Title: "Session", Date: "2024-03-01", Exercises: exercises}); err != nil {
		t.Fatalf("log workout: %v", err)
	}
}

func TestSearch_EmptyQueryReturnsEmptyWithoutStorage(t *testing.T) {
	// nil db proves the empty-query path never reaches the database
	svc := NewSearchService(nil)

	results, err := svc.Search("user-1", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	db := testDB(t)
	seedCommon(t, db, "Bench Press", "Incline Bench Press", "Back Squat")
	svc := NewSearchService(db)

	results, err := svc.Search("user-1", "bench")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %v", results)
	}
	if results[0] != "Bench Press" || results[1] != "Incline Bench Press" {
		t.Errorf("expected alphabetical common matches, got %v", results)
	}
}

func TestSearch_UserHistoryFirstAndDeduplicated(t *testing.T) {
	db := testDB(t)
	seedCommon(t, db, "Bench Press", "Incline Bench Press")
	logWorkout(t, db, "user-1", "bench press")
	svc := NewSearchService(db)

	results, err := svc.Search("user-1", "bench")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	// The user's own casing wins and takes the earlier position; the common
	// "Bench Press" is folded into it.
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %v", results)
	}
	if results[0] != "bench press" {
		t.Errorf("expected user history first, got %v", results)
	}
	if results[1] != "Incline Bench Press" {
		t.Errorf("expected common match appended, got %v", results)
	}
}

func TestSearch_DoesNotSeeOtherUsersHistory(t *testing.T) {
	db := testDB(t)
	logWorkout(t, db, "user-2", "Cable Crossover")
	svc := NewSearchService(db)

	results, err := svc.Search("user-1", "cable")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results from another user's history, got %v", results)
	}
}

func TestSearch_CapsAtFifty(t *testing.T) {
	db := testDB(t)
	names := make([]string, 60)
	for i := range names {
		names[i] = fmt.Sprintf("Row Variation %02d", i)
	}
	seedCommon(t, db, names...)
	svc := NewSearchService(db)

	results, err := svc.Search("user-1", "row")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 50 {
		t.Errorf("expected 50 results, got %d", len(results))
	}
}

func TestSearch_LikeMetacharactersMatchLiterally(t *testing.T) {
	db := testDB(t)
	seedCommon(t, db, "Farmer's Carry", "100% Effort Sprint")
	svc := NewSearchService(db)

	results, err := svc.Search("user-1", "100%")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0] != "100% Effort Sprint" {
		t.Errorf("expected literal %% match only, got %v", results)
	}

	results, err = svc.Search("user-1", "zz_zz")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected underscore to not act as wildcard, got %v", results)
	}
}
