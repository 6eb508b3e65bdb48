package utils

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foodSource(calories, protein, carbs, fat float64) NutrientSource {
	return NutrientSource{
		Type:          "food",
		TotalCalories: calories,
		Proteins:      protein,
		Carbohydrates: carbs,
		Fat:           fat,
	}
}

func TestNormalizeToGrams(t *testing.T) {
	tests := []struct {
		name         string
		quantity     float64
		quantityText string
		unit         string
		want         float64
	}{
		{"count of named serving", 2, "", "spoon (50g)", 100},
		{"portion with decimal weight", 1, "", "Portie (108.0g)", 108},
		{"liters", 1.5, "", "litri", 1500},
		{"milliliters map to grams", 250, "", "ml", 250},
		{"bare l unit", 2, "", "l", 2000},
		{"number with trailing unit word", 0, "130Grame", "Grame", 130},
		{"plain grams", 75, "", "g", 75},
		{"unrecognized unit passes through", 42, "", "bucata", 42},
		{"garbage text degrades to zero", 0, "abc", "g", 0},
		{"negative clamps to zero", -5, "", "g", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToGrams(tt.quantity, tt.quantityText, tt.unit))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 130.0, ParseQuantity("130Grame"))
	assert.Equal(t, 2.5, ParseQuantity("2.5 portii"))
	assert.Equal(t, 0.0, ParseQuantity("no digits here"))
	assert.Equal(t, 0.0, ParseQuantity(""))
}

func TestFoodScalingLinearity(t *testing.T) {
	src := foodSource(250, 12, 30, 8)

	base := ComputeItem(ConsumedItem{Quantity: 100, Unit: "g", Source: src})
	double := ComputeItem(ConsumedItem{Quantity: 200, Unit: "g", Source: src})

	assert.InDelta(t, 250, base.Calories, 1e-9)
	assert.InDelta(t, base.Calories*2, double.Calories, 1e-9)
	assert.InDelta(t, base.Protein*2, double.Protein, 1e-9)
	assert.InDelta(t, base.Carbs*2, double.Carbs, 1e-9)
	assert.InDelta(t, base.Fat*2, double.Fat, 1e-9)
}

func TestUnknownTypeUsesFoodRule(t *testing.T) {
	src := foodSource(200, 10, 0, 0)
	src.Type = ""

	n := ComputeItem(ConsumedItem{Quantity: 50, Unit: "g", Source: src})
	assert.InDelta(t, 100, n.Calories, 1e-9)
	assert.InDelta(t, 5, n.Protein, 1e-9)
}

func TestRecipeTotalWeightInvariance(t *testing.T) {
	// 4 servings of 150 g each: full recipe weighs 600 g.
	src := NutrientSource{
		Type:             "recipe",
		TotalCalories:    1800,
		Proteins:         90,
		NumberOfServings: 4,
		Servings:         []ServingOption{{ProfileID: 1, Name: "Portie", Amount: 150}},
	}

	full := ComputeItem(ConsumedItem{Quantity: 600, Unit: "g", Source: src})
	assert.InDelta(t, 1800, full.Calories, 1e-9)
	assert.InDelta(t, 90, full.Protein, 1e-9)

	half := ComputeItem(ConsumedItem{Quantity: 300, Unit: "g", Source: src})
	assert.InDelta(t, 900, half.Calories, 1e-9)
}

func TestRecipeWeightFallbackOrder(t *testing.T) {
	// No one-portion serving: totalQuantity wins over weightAfterCooking.
	src := NutrientSource{
		Type:               "recipe",
		TotalCalories:      1000,
		NumberOfServings:   2,
		TotalQuantity:      500,
		WeightAfterCooking: 400,
	}
	n := ComputeItem(ConsumedItem{Quantity: 500, Unit: "g", Source: src})
	assert.InDelta(t, 1000, n.Calories, 1e-9)

	src.TotalQuantity = 0
	n = ComputeItem(ConsumedItem{Quantity: 400, Unit: "g", Source: src})
	assert.InDelta(t, 1000, n.Calories, 1e-9)
}

func TestRecipeIndeterminateWeightFallsBackToServings(t *testing.T) {
	// No weight source at all: quantity is treated as a serving count.
	src := NutrientSource{
		Type:             "recipe",
		TotalCalories:    800,
		NumberOfServings: 4,
	}
	n := ComputeItem(ConsumedItem{Quantity: 2, Unit: "portii", Source: src})
	assert.InDelta(t, 400, n.Calories, 1e-9)

	// Zero servings is guarded, never divides by zero.
	src.NumberOfServings = 0
	n = ComputeItem(ConsumedItem{Quantity: 1, Unit: "portii", Source: src})
	assert.InDelta(t, 800, n.Calories, 1e-9)
}

func TestAggregationCommutativity(t *testing.T) {
	items := []ConsumedItem{
		{Quantity: 120, Unit: "g", Source: foodSource(200, 20, 10, 5)},
		{Quantity: 80, Unit: "g", Source: foodSource(350, 5, 40, 12)},
		{Quantity: 1, Unit: "Portie (108.0g)", Source: foodSource(90, 3, 15, 1)},
	}

	_, forward := AggregateMeal(items)

	rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	_, shuffled := AggregateMeal(items)

	assert.InDelta(t, forward.TotalCalories, shuffled.TotalCalories, 1e-9)
	assert.InDelta(t, forward.TotalProtein, shuffled.TotalProtein, 1e-9)
	assert.InDelta(t, forward.TotalCarbs, shuffled.TotalCarbs, 1e-9)
	assert.InDelta(t, forward.TotalFat, shuffled.TotalFat, 1e-9)
}

func TestAggregateDaySumsMeals(t *testing.T) {
	meals := map[string][]ConsumedItem{
		"breakfast": {{Quantity: 100, Unit: "g", Source: foodSource(200, 10, 20, 5)}},
		"lunch":     {{Quantity: 200, Unit: "g", Source: foodSource(150, 8, 12, 4)}},
	}
	perMeal, day := AggregateDay(meals)

	require.Len(t, perMeal, 2)
	assert.InDelta(t, 200, perMeal["breakfast"].TotalCalories, 1e-9)
	assert.InDelta(t, 300, perMeal["lunch"].TotalCalories, 1e-9)
	assert.InDelta(t, 500, day.TotalCalories, 1e-9)
	assert.InDelta(t, 26, day.TotalProtein, 1e-9)

	// Duplicate entries are distinct consumption events and both count.
	meals["breakfast"] = append(meals["breakfast"], meals["breakfast"][0])
	_, day = AggregateDay(meals)
	assert.InDelta(t, 700, day.TotalCalories, 1e-9)
}

func TestScoreZeroConsumptionWithGoals(t *testing.T) {
	goals := GoalThresholds{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}
	score := ComputeDailyScore(DailyTotals{}, goals, 0)

	assert.Equal(t, 0, score.Score)
	assert.False(t, score.ProteinCompleted)
	assert.False(t, score.CaloriesCompleted)
	assert.False(t, score.CarbsCompleted)
	assert.False(t, score.FatCompleted)
}

func TestScoreMonotonicity(t *testing.T) {
	goals := GoalThresholds{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}

	prev := -1
	for protein := 0.0; protein <= 200; protein += 10 {
		s := ComputeDailyScore(DailyTotals{TotalProtein: protein, TotalCalories: 1000}, goals, 0)
		assert.GreaterOrEqual(t, s.Score, prev, "protein=%v", protein)
		prev = s.Score
	}
}

func TestScoreCompletionBonus(t *testing.T) {
	goals := GoalThresholds{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}
	totals := DailyTotals{TotalCalories: 2000, TotalProtein: 150, TotalCarbs: 200, TotalFat: 60}

	s := ComputeDailyScore(totals, goals, 0)
	assert.True(t, s.ProteinCompleted)
	assert.True(t, s.CaloriesCompleted)
	assert.True(t, s.CarbsCompleted)
	assert.True(t, s.FatCompleted)
	// full weighted score plus the capped bonus
	assert.Equal(t, 120, s.Score)
}

func TestScoreExcludesUnsetCategories(t *testing.T) {
	// Only a protein goal: calories consumed contribute nothing.
	goals := GoalThresholds{Protein: 100}
	s := ComputeDailyScore(DailyTotals{TotalProtein: 90, TotalCalories: 3000}, goals, 0)

	// 90 >= 0.9*100 → completed, full protein weight + 5 bonus
	assert.True(t, s.ProteinCompleted)
	assert.False(t, s.CaloriesCompleted)
	assert.Equal(t, 35, s.Score)
}

func TestScoreNoGoalsFallbacks(t *testing.T) {
	none := GoalThresholds{}

	s := ComputeDailyScore(DailyTotals{}, none, 0)
	assert.Equal(t, 0, s.Score)

	s = ComputeDailyScore(DailyTotals{TotalCalories: 1000}, none, 82.4)
	assert.Equal(t, 82, s.Score)

	s = ComputeDailyScore(DailyTotals{TotalCalories: 1000}, none, 0)
	assert.Equal(t, 50, s.Score)

	// tiny consumption clamps up to the floor
	s = ComputeDailyScore(DailyTotals{TotalCalories: 10}, none, 0)
	assert.Equal(t, 5, s.Score)

	// huge consumption clamps down to 100
	s = ComputeDailyScore(DailyTotals{TotalCalories: 9000}, none, 0)
	assert.Equal(t, 100, s.Score)
}

func TestScoreEndToEndExample(t *testing.T) {
	goals := GoalThresholds{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}

	item := ConsumedItem{Quantity: 300, Unit: "g", Source: foodSource(200, 20, 0, 0)}
	_, totals := AggregateMeal([]ConsumedItem{item})

	assert.InDelta(t, 600, totals.TotalCalories, 1e-9)
	assert.InDelta(t, 60, totals.TotalProtein, 1e-9)

	s := ComputeDailyScore(totals, goals, 0)
	// calories 600/1600 → 11.25 pts, protein 60/135 → ~13.33 pts
	assert.InDelta(t, 25, float64(s.Score), 1)
	assert.False(t, s.ProteinCompleted)
	assert.False(t, s.CaloriesCompleted)
}

func TestFormatDailySummary(t *testing.T) {
	meals := map[string][]ConsumedItem{
		"breakfast": {{Quantity: 300, Unit: "g", Source: foodSource(200, 20, 0, 0)}},
	}
	perMeal, day := AggregateDay(meals)
	goals := GoalThresholds{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}
	score := ComputeDailyScore(day, goals, 0)

	out := FormatDailySummary("2024-03-18", perMeal, day, goals, score)

	assert.True(t, strings.HasPrefix(out, "Daily summary — 2024-03-18"))
	assert.Contains(t, out, "Breakfast: 600 kcal")
	assert.Contains(t, out, "Total: 600 kcal")
	assert.Contains(t, out, "Calorie goal: 2000 kcal")
	assert.Contains(t, out, "Daily score: 25")
}
