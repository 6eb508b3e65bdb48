package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
)

// UnapprovedItem is a subscriber-submitted food waiting for review.
// Nutrient fields are per 100 g, as submitted.
type UnapprovedItem struct {
	gorm.Model
	SubscriberID  uint   `gorm:"index"`
	Name          string `gorm:"not null"`
	Brand         string
	Barcode       string
	ImageURL      string
	TotalCalories float64
	Proteins      float64
	Carbohydrates float64
	Fat           float64
	Fibre         float64
	Sugars        float64
	Status        string `gorm:"size:16;index;default:'pending'"`
	ScreenLabels  string `gorm:"type:text"` // comma-separated Rekognition labels
	ScreenFlagged bool
	ReviewedBy    uint
	ReviewedAt    time.Time
	RejectReason  string `gorm:"type:text"`
}
