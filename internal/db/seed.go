package db

import (
	"log/slog"

	"github.com/gymtrack-dev/gymtrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commonExerciseNames is the curated reference list offered by the search
// endpoint alongside the user's own history, grouped by muscle group.
// Read-only at runtime.
var commonExerciseNames = []string{
	// Chest
	"Bench Press",
	"Incline Bench Press",
	"Decline Bench Press",
	"Dumbbell Bench Press",
	"Incline Dumbbell Press",
	"Dumbbell Fly",
	"Cable Crossover",
	"Chest Dip",
	"Push-Up",
	"Machine Chest Press",
	"Pec Deck",

	// Back
	"Deadlift",
	"Barbell Row",
	"Pendlay Row",
	"Dumbbell Row",
	"T-Bar Row",
	"Seated Cable Row",
	"Pull-Up",
	"Chin-Up",
	"Lat Pulldown",
	"Straight-Arm Pulldown",
	"Rack Pull",
	"Good Morning",
	"Back Extension",

	// Shoulders
	"Overhead Press",
	"Push Press",
	"Seated Dumbbell Press",
	"Arnold Press",
	"Lateral Raise",
	"Front Raise",
	"Rear Delt Fly",
	"Face Pull",
	"Upright Row",
	"Shrug",

	// Biceps
	"Barbell Curl",
	"Dumbbell Curl",
	"Hammer Curl",
	"Incline Dumbbell Curl",
	"Preacher Curl",
	"Concentration Curl",
	"Cable Curl",
	"EZ-Bar Curl",

	// Triceps
	"Close-Grip Bench Press",
	"Skull Crusher",
	"Triceps Pushdown",
	"Overhead Triceps Extension",
	"Triceps Kickback",
	"Bench Dip",
	"Diamond Push-Up",

	// Quads
	"Back Squat",
	"Front Squat",
	"Goblet Squat",
	"Hack Squat",
	"Leg Press",
	"Leg Extension",
	"Bulgarian Split Squat",
	"Walking Lunge",
	"Reverse Lunge",
	"Step-Up",

	// Hamstrings
	"Romanian Deadlift",
	"Stiff-Leg Deadlift",
	"Lying Leg Curl",
	"Seated Leg Curl",
	"Nordic Hamstring Curl",
	"Glute-Ham Raise",

	// Glutes
	"Hip Thrust",
	"Glute Bridge",
	"Cable Kickback",
	"Sumo Deadlift",
	"Curtsy Lunge",

	// Calves
	"Standing Calf Raise",
	"Seated Calf Raise",
	"Donkey Calf Raise",
	"Single-Leg Calf Raise",

	// Core
	"Plank",
	"Side Plank",
	"Crunch",
	"Cable Crunch",
	"Sit-Up",
	"Hanging Leg Raise",
	"Hanging Knee Raise",
	"Russian Twist",
	"Ab Wheel Rollout",
	"Mountain Climber",
	"Dead Bug",
	"Bird Dog",
	"Pallof Press",

	// Olympic lifts
	"Clean and Jerk",
	"Power Clean",
	"Hang Clean",
	"Snatch",
	"Power Snatch",
	"Clean Pull",
	"Snatch Pull",

	// Functional movements
	"Kettlebell Swing",
	"Turkish Get-Up",
	"Farmer's Carry",
	"Sled Push",
	"Battle Ropes",
	"Box Jump",
	"Burpee",
	"Wall Ball",
	"Thruster",
	"Medicine Ball Slam",
	"Bear Crawl",
}

// SeedCommonExercises inserts the reference list, skipping names that are
// already present so reseeding on every startup is idempotent.
func SeedCommonExercises(db *gorm.DB) error {
	rows := make([]models.CommonExercise, 0, len(commonExerciseNames))
	for _, name := range commonExerciseNames {
		rows = append(rows, models.CommonExercise{ExerciseName: name})
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return result.Error
	}

	slog.Info("Seeded common exercises", "total", len(rows), "inserted", result.RowsAffected)
	return nil
}
