package models

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	FullName string `json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}
