package models

import "time"

type SubscriberDevice struct {
	ID           uint   `gorm:"primaryKey"`
	SubscriberID uint   `gorm:"index"`
	Platform     string `gorm:"size:16"` // "android" | "ios"
	TokenHash    string `gorm:"size:64"`
	EndpointARN  string `gorm:"size:256"`
	Enabled      bool   `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
