package services

import (
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryService struct {
	db            *gorm.DB
	countTrailing bool
}

func NewSummaryService(db *gorm.DB, countTrailing bool) *SummaryService {
	return &SummaryService{db: db, countTrailing: countTrailing}
}

type Summary struct {
	TotalMeals        int      `json:"totalMeals"`
	TotalDietMeals    int      `json:"totalDietMeals"`
	TotalNotDietMeals int      `json:"totalNotDietMeals"`
	BestDietSequence  []string `json:"bestDietSequence"`
}

// Summarize derives the adherence summary from one consistent read of the
// user's full history. Nothing is persisted.
func (s *SummaryService) Summarize(userID uuid.UUID) (*Summary, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("meal_date ASC, created_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return BuildSummary(meals, s.countTrailing), nil
}

// BuildSummary scans meals in ascending meal-time order. A diet streak is
// promoted to best only when a non-diet meal closes it and it is strictly
// longer than the best so far, so among equal-length streaks the earliest
// wins. The current run resets on every non-diet meal whether or not it was
// promoted. A run still open at the end of the history is never promoted
// unless countTrailing is set; the default reproduces the behavior of the
// API this one replaces.
func BuildSummary(meals []models.Meal, countTrailing bool) *Summary {
	summary := &Summary{BestDietSequence: []string{}}
	var current []string

	for _, meal := range meals {
		summary.TotalMeals++
		if meal.OnDiet {
			summary.TotalDietMeals++
			current = append(current, meal.Name)
			continue
		}
		summary.TotalNotDietMeals++
		if len(current) > len(summary.BestDietSequence) {
			summary.BestDietSequence = current
		}
		current = nil
	}

	if countTrailing && len(current) > len(summary.BestDietSequence) {
		summary.BestDietSequence = current
	}

	return summary
}
