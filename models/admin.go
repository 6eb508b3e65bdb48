package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser is a back-office console account, not a platform subscriber.
type AdminUser struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	Role          string `gorm:"size:32;default:'editor'"` // "editor" | "moderator" | "owner"
	Disabled      bool
	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
