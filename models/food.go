package models

import "gorm.io/gorm"

// Food is a catalog entry with nutrient values per 100 g. Rows are created
// directly by editors or promoted from the moderation queue.
type Food struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Brand         string
	Barcode       string `gorm:"index"`
	ImageURL      string
	TotalCalories float64 // per 100 g
	Proteins      float64
	Carbohydrates float64
	Fat           float64
	Fibre         float64
	Sugars        float64
	SourceItemID  uint // moderation queue row this was promoted from, if any
}
