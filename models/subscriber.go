package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a platform end user managed from the console.
type Subscriber struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	FullName       string
	Phone          string `gorm:"size:32"`
	Language       string `gorm:"size:8;default:'ro'"`
	Plan           string `gorm:"size:32"` // "free" | "premium" | "coaching"
	SubscribedAt   time.Time
	ExpiresAt      time.Time
	ProfilePicture string
	Disabled       bool
}

// NutritionGoal holds a subscriber's daily targets. A zero value means
// "no goal set" for that category.
type NutritionGoal struct {
	gorm.Model
	SubscriberID uint    `gorm:"uniqueIndex;not null"`
	Calories     float64 // kcal
	Protein      float64 // g
	Carbs        float64 // g
	Fat          float64 // g
}
