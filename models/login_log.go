package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginLog is the audit trail of successful logins. UserID is nil for admin
// logins, which are identified by IsAdmin instead.
type LoginLog struct {
	gorm.Model
	UserID    *uint     `json:"user_id"`
	IsAdmin   bool      `json:"is_admin"`
	LoginTime time.Time `gorm:"index" json:"login_time"`
}
