package service

import (
	"strings"

	"github.com/gymtrack-dev/gymtrack/internal/models"
	"gorm.io/gorm"
)

// searchLimit caps the merged result list.
const searchLimit = 50

// SearchService implements the exercise-name autocomplete: a
// case-insensitive substring match over the user's own exercise history and
// the common-exercise reference list.
type SearchService struct {
	db *gorm.DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search returns up to 50 matching exercise names. The user's own history
// comes first, then common exercises; the merge is a case-insensitive set
// union, so a name matching in both sources appears once, with the user's
// stored casing. An empty query returns an empty list without touching the
// database.
func (s *SearchService) Search(userID, query string) ([]string, error) {
	results := []string{}
	if query == "" {
		return results, nil
	}

	pattern := "%" + escapeLike(query) + "%"

	var userNames []string
	err := s.db.Model(&models.Exercise{}).
		Distinct().
		Joins("JOIN workout_sessions ON workout_sessions.id = exercises.workout_id").
		Where("workout_sessions.user_id = ?", userID).
		Where(`LOWER(exercises.exercise_name) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("exercises.exercise_name ASC").
		Pluck("exercises.exercise_name", &userNames).Error
	if err != nil {
		return nil, err
	}

	var commonNames []string
	err = s.db.Model(&models.CommonExercise{}).
		Where(`LOWER(exercise_name) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("exercise_name ASC").
		Pluck("exercise_name", &commonNames).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(userNames)+len(commonNames))
	for _, name := range append(userNames, commonNames...) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, name)
		if len(results) == searchLimit {
			break
		}
	}

	return results, nil
}

// escapeLike escapes LIKE metacharacters so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
