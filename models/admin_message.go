package models

import (
	"gorm.io/gorm"
)

// AdminMessage is one-directional, admin to user, append-only.
type AdminMessage struct {
	gorm.Model
	AdminID uint   `gorm:"not null" json:"admin_id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `json:"is_read"`
}
