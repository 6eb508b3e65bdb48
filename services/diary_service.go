package services

import (
	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/models"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"
)

type DiaryService struct {
	api *PlatformAPIService
}

func NewDiaryService(api *PlatformAPIService) *DiaryService {
	return &DiaryService{api: api}
}

type MealReport struct {
	Meal   string                `json:"meal"`
	Items  []utils.ItemNutrition `json:"items"`
	Totals utils.DailyTotals     `json:"totals"`
}

// DayReport is the full per-day view the console renders: per-item
// contributions, per-meal subtotals, the day total and the score. It is
// recomputed from the diary payload on every request; nothing here persists.
type DayReport struct {
	SubscriberID uint                 `json:"subscriber_id"`
	Date         string               `json:"date"`
	Meals        []MealReport         `json:"meals"`
	Day          utils.DailyTotals    `json:"day"`
	Goals        utils.GoalThresholds `json:"goals"`
	Score        utils.DailyScore     `json:"score"`
}

// DayReport fetches the subscriber's diary for a date, aggregates it and
// scores it against the stored goals (falling back to the goal embedded in
// the payload). Responses are cached for CacheStaleness.
func (s *DiaryService) DayReport(subscriberID uint, date string) (*DayReport, error) {
	key := CacheKey("diary", subscriberID, date)
	if cached, ok := LoadCachedResponse(key); ok {
		return cached.(*DayReport), nil
	}

	payload, err := s.api.GetDailyDiary(subscriberID, date)
	if err != nil {
		return nil, err
	}

	goals := s.resolveGoals(subscriberID, payload)

	report := &DayReport{
		SubscriberID: subscriberID,
		Date:         date,
		Goals:        goals,
	}
	for _, meal := range utils.MealOrder {
		entries, ok := payload.Meals[meal]
		if !ok {
			continue
		}
		items, totals := utils.AggregateMeal(entries)
		report.Meals = append(report.Meals, MealReport{Meal: meal, Items: items, Totals: totals})
		report.Day.TotalCalories += totals.TotalCalories
		report.Day.TotalProtein += totals.TotalProtein
		report.Day.TotalCarbs += totals.TotalCarbs
		report.Day.TotalFat += totals.TotalFat
		report.Day.TotalFiber += totals.TotalFiber
		report.Day.TotalSugar += totals.TotalSugar
	}
	report.Score = utils.ComputeDailyScore(report.Day, goals, payload.PercentageOfGoal)

	StoreCachedResponse(key, report)
	return report, nil
}

// DaySummary renders the shareable plain-text summary from the same report,
// so the detail view and the share text cannot drift.
func (s *DiaryService) DaySummary(subscriberID uint, date string) (string, error) {
	report, err := s.DayReport(subscriberID, date)
	if err != nil {
		return "", err
	}
	perMeal := make(map[string]utils.DailyTotals, len(report.Meals))
	for _, m := range report.Meals {
		perMeal[m.Meal] = m.Totals
	}
	return utils.FormatDailySummary(report.Date, perMeal, report.Day, report.Goals, report.Score), nil
}

// resolveGoals prefers the goals stored by the console over the ones the
// payload embeds. Absent rows mean "no goal set" (all zero).
func (s *DiaryService) resolveGoals(subscriberID uint, payload *DiaryPayload) utils.GoalThresholds {
	if config.DB != nil {
		var g models.NutritionGoal
		if err := config.DB.Where("subscriber_id = ?", subscriberID).First(&g).Error; err == nil {
			return utils.GoalThresholds{Calories: g.Calories, Protein: g.Protein, Carbs: g.Carbs, Fat: g.Fat}
		}
	}
	if payload.Goal != nil {
		return *payload.Goal
	}
	return utils.GoalThresholds{}
}
