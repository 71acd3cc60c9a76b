package services

import (
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type BMIService struct {
	db *gorm.DB
}

func NewBMIService(db *gorm.DB) *BMIService {
	return &BMIService{db: db}
}

// RecordBMI validates the measurement, computes BMI and category, and appends
// the record. Invalid input returns utils.ErrInvalidMeasurement and writes
// nothing.
func (s *BMIService) RecordBMI(userID uint, heightCm, weightKg float64) (*models.BMIRecord, error) {
	bmi, err := utils.CalculateBMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}

	record := models.BMIRecord{
		UserID:   userID,
		HeightCM: heightCm,
		WeightKG: weightKg,
		BMIValue: bmi,
		Category: utils.BMICategory(bmi),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
