package models

import (
	"time"

	"gorm.io/gorm"
)

// Target status values a user can carry. Set to Ongoing at registration,
// flipped by an admin from the dashboard.
const (
	TargetOngoing   = "Ongoing"
	TargetCompleted = "Completed"
)

type User struct {
	gorm.Model
	FullName     string `json:"full_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	TargetStatus string `gorm:"default:Ongoing" json:"target_status"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
