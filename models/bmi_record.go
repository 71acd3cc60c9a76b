package models

import (
	"gorm.io/gorm"
)

// BMIRecord is an append-only log of weigh-ins. The latest two records per
// user drive the improved/worsened/stable comparison.
type BMIRecord struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	BMIValue float64 `json:"bmi_value"`
	Category string  `json:"category"`
}
