package models

import (
	"time"

	"gorm.io/gorm"
)

// MotivationalQuote rotates daily: exactly one quote is pinned per calendar
// date via UsedDate. A nil UsedDate means the quote has not been shown yet.
type MotivationalQuote struct {
	gorm.Model
	Text     string     `gorm:"not null" json:"text"`
	Author   string     `json:"author"`
	UsedDate *time.Time `gorm:"index" json:"used_date,omitempty"`
}
