package models

import "gorm.io/gorm"

// MenuTemplate is a reusable multi-day meal plan assembled from recipes.
type MenuTemplate struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Language    string `gorm:"size:8;default:'ro'"`
	Days        int    `gorm:"default:7"`
	Published   bool
	Items       []MenuTemplateItem
}

type MenuTemplateItem struct {
	gorm.Model
	MenuTemplateID uint   `gorm:"index;not null"`
	Day            int    `gorm:"not null"` // 1-based day within the template
	Meal           string `gorm:"size:16;not null"`
	RecipeID       uint   `gorm:"not null"`
	Recipe         Recipe
	Position       int
}
