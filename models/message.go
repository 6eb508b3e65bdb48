package models

import "time"

// Message is one console-to-subscriber notice. Channel records how it was
// delivered in addition to the stored copy.
type Message struct {
	ID           uint   `gorm:"primaryKey"`
	PublicID     string `gorm:"size:36;uniqueIndex"`
	SubscriberID uint   `gorm:"index"`
	AdminID      uint   `gorm:"index"`
	Title        string
	Body         string `gorm:"type:text"`
	Channel      string `gorm:"size:16"` // "push" | "email" | "inapp"
	CreatedAt    time.Time
	ReadAt       *time.Time
}
