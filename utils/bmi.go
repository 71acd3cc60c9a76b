package utils

import (
	"errors"
	"math"
)

// BMI category names, ordered from least to most severe.
const (
	CategoryUnderweight   = "Underweight"
	CategoryNormal        = "Normal"
	CategoryOverweight    = "Overweight"
	CategoryObese         = "Obese"
	CategorySeverelyObese = "Severely Obese"
)

var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns the BMI rounded to two decimals. Non-positive input is rejected so
// the caller can refuse the submission before anything is persisted.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, ErrInvalidMeasurement
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100, nil
}

// BMICategory maps a BMI value onto closed-open bands: [0,18.5) Underweight,
// [18.5,25) Normal, [25,30) Overweight, [30,35) Obese, [35,∞) Severely Obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25.0:
		return CategoryNormal
	case bmi < 30.0:
		return CategoryOverweight
	case bmi < 35.0:
		return CategoryObese
	default:
		return CategorySeverelyObese
	}
}
