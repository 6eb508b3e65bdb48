package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Meal names in display order. The diary payload is keyed by these.
var MealOrder = []string{"breakfast", "lunch", "dinner", "snack", "water", "other"}

// ServingOption is a named unit-of-quantity for a recipe, e.g. "Portie (108.0g)".
// ProfileID 1 marks the canonical one-portion serving.
type ServingOption struct {
	ProfileID int     `json:"profileId"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"` // grams per serving
}

// NutrientSource describes what a consumed item points at. For Type "food"
// the nutrient fields are per 100 g; for Type "recipe" they cover the whole
// recipe yield (all NumberOfServings servings combined).
type NutrientSource struct {
	Type               string          `json:"type"` // "food" | "recipe"
	TotalCalories      float64         `json:"totalCalories"`
	Proteins           float64         `json:"proteinsInGrams"`
	Carbohydrates      float64         `json:"carbohydratesInGrams"`
	Fat                float64         `json:"fatInGrams"`
	Fibre              float64         `json:"fibreInGrams"`
	Sugars             float64         `json:"sugarsInGrams"`
	NumberOfServings   float64         `json:"numberOfServings"`
	TotalQuantity      float64         `json:"totalQuantity"`      // full recipe weight, g
	WeightAfterCooking float64         `json:"weightAfterCooking"` // cooked full recipe weight, g
	Servings           []ServingOption `json:"servings"`
}

// ConsumedItem is one logged diary entry. Quantity is used when the payload
// carried a number; QuantityText when it carried a string (possibly with
// trailing unit text like "130Grame").
type ConsumedItem struct {
	Name         string
	Quantity     float64
	QuantityText string
	Unit         string
	Source       NutrientSource
}

// ItemNutrition is the actual contribution of one consumed item.
type ItemNutrition struct {
	Name     string  `json:"name"`
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

type DailyTotals struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalFiber    float64 `json:"total_fiber"`
	TotalSugar    float64 `json:"total_sugar"`
}

// GoalThresholds are the subscriber's daily targets. Zero means "no goal set"
// for that category.
type GoalThresholds struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type DailyScore struct {
	Score             int  `json:"score"`
	ProteinCompleted  bool `json:"protein_completed"`
	CaloriesCompleted bool `json:"calories_completed"`
	CarbsCompleted    bool `json:"carbs_completed"`
	FatCompleted      bool `json:"fat_completed"`
}

var (
	leadingNumberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	servingWeightRe = regexp.MustCompile(`\(\s*(\d+(?:\.\d+)?)\s*[gG]\s*\)`)
)

// ParseQuantity extracts the numeric part of a raw quantity string.
// "130Grame" -> 130, "2.5" -> 2.5, garbage -> 0.
func ParseQuantity(raw string) float64 {
	m := leadingNumberRe.FindString(raw)
	if m == "" {
		return 0
	}
	var v float64
	fmt.Sscanf(m, "%f", &v)
	return v
}

// NormalizeToGrams resolves a quantity+unit pair to grams.
//
// A parenthesized weight in the unit ("Portie (108.0g)") means the quantity
// is a count of that serving. Milliliters map 1:1 to grams; liters times
// 1000. Anything else is taken as grams already. Malformed input degrades
// to 0, never errors.
func NormalizeToGrams(quantity float64, quantityText, unit string) float64 {
	if quantity == 0 && quantityText != "" {
		quantity = ParseQuantity(quantityText)
	}
	if quantity < 0 {
		quantity = 0
	}

	if m := servingWeightRe.FindStringSubmatch(unit); m != nil {
		return quantity * ParseQuantity(m[1])
	}

	lower := strings.ToLower(unit)
	switch {
	case strings.Contains(lower, "mililitri") || strings.Contains(lower, "ml"):
		return quantity // density-of-water assumption
	case strings.Contains(lower, "litri") || strings.TrimSpace(lower) == "l":
		return quantity * 1000
	default:
		return quantity
	}
}

// totalRecipeWeight resolves the full recipe weight in grams, or 0 when it
// cannot be determined from the descriptor.
func totalRecipeWeight(src NutrientSource) float64 {
	servings := src.NumberOfServings
	if servings <= 0 {
		servings = 1
	}
	for _, s := range src.Servings {
		if s.ProfileID == 1 && s.Amount > 0 {
			return s.Amount * servings
		}
	}
	if src.TotalQuantity > 0 {
		return src.TotalQuantity
	}
	if src.WeightAfterCooking > 0 {
		return src.WeightAfterCooking
	}
	for _, s := range src.Servings {
		if s.Amount > 0 {
			return s.Amount * servings
		}
	}
	return 0
}

// ComputeItem derives the actual nutrient contribution of one consumed item.
// Foods scale per 100 g; recipes scale against the full recipe weight, with
// a per-serving division as the degraded fallback when no weight resolves.
func ComputeItem(item ConsumedItem) ItemNutrition {
	grams := NormalizeToGrams(item.Quantity, item.QuantityText, item.Unit)
	src := item.Source

	var ratio float64
	switch src.Type {
	case "recipe":
		if w := totalRecipeWeight(src); w > 0 {
			ratio = grams / w
		} else {
			// Weight indeterminate: divide evenly by servings and treat the
			// quantity as a serving count.
			servings := src.NumberOfServings
			if servings <= 0 {
				servings = 1
			}
			ratio = grams / servings
		}
	default:
		// "food" and unknown types are per-100g.
		ratio = grams / 100
	}

	return ItemNutrition{
		Name:     item.Name,
		Grams:    grams,
		Calories: src.TotalCalories * ratio,
		Protein:  src.Proteins * ratio,
		Carbs:    src.Carbohydrates * ratio,
		Fat:      src.Fat * ratio,
		Fiber:    src.Fibre * ratio,
		Sugar:    src.Sugars * ratio,
	}
}

func (t *DailyTotals) add(n ItemNutrition) {
	t.TotalCalories += n.Calories
	t.TotalProtein += n.Protein
	t.TotalCarbs += n.Carbs
	t.TotalFat += n.Fat
	t.TotalFiber += n.Fiber
	t.TotalSugar += n.Sugar
}

// AggregateMeal computes per-item contributions and the meal subtotal.
func AggregateMeal(items []ConsumedItem) ([]ItemNutrition, DailyTotals) {
	out := make([]ItemNutrition, 0, len(items))
	var totals DailyTotals
	for _, it := range items {
		n := ComputeItem(it)
		totals.add(n)
		out = append(out, n)
	}
	return out, totals
}

// AggregateDay sums a meal-keyed diary into per-meal subtotals and a day
// total. Duplicate entries are distinct consumption events and sum as such.
func AggregateDay(meals map[string][]ConsumedItem) (map[string]DailyTotals, DailyTotals) {
	perMeal := make(map[string]DailyTotals, len(meals))
	var day DailyTotals
	for meal, items := range meals {
		_, t := AggregateMeal(items)
		perMeal[meal] = t
		day.TotalCalories += t.TotalCalories
		day.TotalProtein += t.TotalProtein
		day.TotalCarbs += t.TotalCarbs
		day.TotalFat += t.TotalFat
		day.TotalFiber += t.TotalFiber
		day.TotalSugar += t.TotalSugar
	}
	return perMeal, day
}

// Category completion fractions and score weights. Weights sum to 100.
const (
	proteinTargetFraction  = 0.9
	caloriesTargetFraction = 0.8
	carbsTargetFraction    = 0.9
	fatTargetFraction      = 0.9

	proteinWeight  = 30.0
	caloriesWeight = 30.0
	carbsWeight    = 20.0
	fatWeight      = 20.0

	bonusPerCategory = 5.0
	bonusCap         = 20.0
)

// ComputeDailyScore maps day totals against goals into a bounded score plus
// per-category completion flags. externalPct is the payload-supplied
// "percentage of goal" used only when no goal is set at all.
func ComputeDailyScore(t DailyTotals, g GoalThresholds, externalPct float64) DailyScore {
	type category struct {
		goal, fraction, weight, actual float64
		completed                      *bool
	}
	var score DailyScore
	cats := []category{
		{g.Protein, proteinTargetFraction, proteinWeight, t.TotalProtein, &score.ProteinCompleted},
		{g.Calories, caloriesTargetFraction, caloriesWeight, t.TotalCalories, &score.CaloriesCompleted},
		{g.Carbs, carbsTargetFraction, carbsWeight, t.TotalCarbs, &score.CarbsCompleted},
		{g.Fat, fatTargetFraction, fatWeight, t.TotalFat, &score.FatCompleted},
	}

	anyGoal := false
	weighted := 0.0
	completedCount := 0
	for _, c := range cats {
		if c.goal <= 0 {
			continue // no goal set: excluded entirely
		}
		anyGoal = true
		target := c.goal * c.fraction
		if target <= 0 {
			continue
		}
		achieved := c.actual / target
		if achieved > 1 {
			achieved = 1
		}
		weighted += achieved * c.weight
		if c.actual >= target {
			*c.completed = true
			completedCount++
		}
	}

	if !anyGoal {
		switch {
		case externalPct > 0:
			score.Score = int(math.Round(externalPct))
		case t.TotalCalories > 0 || t.TotalProtein > 0:
			score.Score = int(math.Round(clamp((t.TotalCalories/2000)*100, 5, 100)))
		}
		return score
	}

	bonus := bonusPerCategory * float64(completedCount)
	if bonus > bonusCap {
		bonus = bonusCap
	}
	if weighted == 0 && completedCount > 0 {
		score.Score = int(math.Round(bonus))
		return score
	}
	score.Score = int(math.Round(weighted + bonus))
	return score
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// FormatDailySummary renders the shareable plain-text day summary. It is the
// single formatter over the engine output, so the detail view and the share
// text cannot drift apart.
func FormatDailySummary(date string, perMeal map[string]DailyTotals, day DailyTotals, goals GoalThresholds, score DailyScore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary — %s\n", date)
	for _, meal := range MealOrder {
		t, ok := perMeal[meal]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %.0f kcal (P %.1fg / C %.1fg / F %.1fg)\n",
			strings.Title(meal), t.TotalCalories, round1(t.TotalProtein), round1(t.TotalCarbs), round1(t.TotalFat))
	}
	fmt.Fprintf(&b, "Total: %.0f kcal, protein %.1fg, carbs %.1fg, fat %.1fg, fiber %.1fg, sugar %.1fg\n",
		day.TotalCalories, round1(day.TotalProtein), round1(day.TotalCarbs), round1(day.TotalFat),
		round1(day.TotalFiber), round1(day.TotalSugar))
	if goals.Calories > 0 {
		fmt.Fprintf(&b, "Calorie goal: %.0f kcal\n", goals.Calories)
	}
	fmt.Fprintf(&b, "Daily score: %d\n", score.Score)
	return b.String()
}
