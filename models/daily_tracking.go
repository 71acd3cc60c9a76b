package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyTracking holds the four habit flags for one user and one calendar day.
// The composite unique index is what makes the lazy first-visit create safe
// against two concurrent requests racing to insert the same day.
type DailyTracking struct {
	gorm.Model
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_track_date" json:"user_id"`
	TrackDate time.Time `gorm:"not null;uniqueIndex:idx_user_track_date" json:"track_date"`

	WaterCompleted     bool `json:"water_completed"`
	FoodCompleted      bool `json:"food_completed"`
	WorkoutCompleted   bool `json:"workout_completed"`
	ChallengeCompleted bool `json:"challenge_completed"`

	ProgressPercent int `json:"progress_percent"`
}
