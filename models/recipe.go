package models

import "gorm.io/gorm"

// Recipe nutrient fields describe the whole recipe yield, i.e. all
// NumberOfServings servings combined — not per 100 g.
type Recipe struct {
	gorm.Model
	Name               string `gorm:"not null"`
	Description        string `gorm:"type:text"`
	ImageURL           string
	Language           string  `gorm:"size:8;default:'ro'"`
	NumberOfServings   float64 `gorm:"default:1"`
	TotalQuantity      float64 // raw weight of the full recipe, g
	WeightAfterCooking float64 // cooked weight of the full recipe, g
	TotalCalories      float64
	Proteins           float64
	Carbohydrates      float64
	Fat                float64
	Fibre              float64
	Sugars             float64
	Approved           bool
	Servings           []RecipeServing
}

// RecipeServing is a named unit-of-quantity option, e.g. "Portie (108.0g)".
// ProfileID 1 marks the canonical one-portion serving.
type RecipeServing struct {
	gorm.Model
	RecipeID  uint `gorm:"index;not null"`
	ProfileID int
	Name      string
	Amount    float64 // grams per one serving
}
