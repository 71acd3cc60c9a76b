package services

import (
	"backend/models"

	"gorm.io/gorm"
)

// Improvement status values derived from the two most recent BMI records.
const (
	StatusImproved = "improved"
	StatusWorsened = "worsened"
	StatusStable   = "stable"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// LatestRecords returns up to limit BMI records for a user, newest first.
func (s *AnalyticsService) LatestRecords(userID uint, limit int) ([]models.BMIRecord, error) {
	var records []models.BMIRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// ImprovementStatus compares the latest BMI against the previous one.
// Lower is improved, higher is worsened, equal is stable. With fewer than two
// records there is no status and the empty string is returned.
func (s *AnalyticsService) ImprovementStatus(userID uint) (string, error) {
	records, err := s.LatestRecords(userID, 2)
	if err != nil {
		return "", err
	}
	return CompareBMIRecords(records), nil
}

// CompareBMIRecords is the pure comparison over records ordered newest first.
func CompareBMIRecords(records []models.BMIRecord) string {
	if len(records) < 2 {
		return ""
	}
	switch {
	case records[0].BMIValue < records[1].BMIValue:
		return StatusImproved
	case records[0].BMIValue > records[1].BMIValue:
		return StatusWorsened
	default:
		return StatusStable
	}
}

// ImprovementMessage maps a status onto its canned message; empty status
// (fewer than two records) yields no message.
func ImprovementMessage(status string) string {
	switch status {
	case StatusImproved:
		return "Your BMI has improved compared to your last record. Fantastic progress!"
	case StatusWorsened:
		return "Your BMI has increased compared to your last record. Consider tightening your food plan and staying more consistent with workouts."
	case StatusStable:
		return "Your BMI is stable. Keep following your plan to see gradual improvements."
	default:
		return ""
	}
}

// MotivationalMessage picks the dashboard banner keyed on target status.
func MotivationalMessage(targetStatus string) string {
	if targetStatus == models.TargetCompleted {
		return "Amazing job completing your target! Keep up the great work and maintain your healthy habits."
	}
	return "You are on your journey. Stay consistent today - even a small step counts."
}

// UserBMIOverview is one admin-dashboard row: a user together with their most
// recent BMI record, if any.
type UserBMIOverview struct {
	ID           uint     `json:"id"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	TargetStatus string   `json:"target_status"`
	HeightCM     *float64 `json:"height_cm,omitempty"`
	WeightKG     *float64 `json:"weight_kg,omitempty"`
	BMIValue     *float64 `json:"bmi_value,omitempty"`
	Category     *string  `json:"category,omitempty"`
}

// UserBMIOverviews lists every user with their latest BMI record. Users who
// never submitted a measurement appear with nil BMI fields.
func (s *AnalyticsService) UserBMIOverviews() ([]UserBMIOverview, error) {
	var rows []UserBMIOverview
	err := s.db.Model(&models.User{}).
		Select(`users.id, users.full_name, users.email, users.target_status,
			br.height_cm, br.weight_kg, br.bmi_value, br.category`).
		Joins(`LEFT JOIN bmi_records br ON br.id = (
			SELECT id FROM bmi_records
			WHERE user_id = users.id
			ORDER BY created_at DESC LIMIT 1)`).
		Order("users.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

// RecentLoginLog is a login audit row joined with the user's identity.
type RecentLoginLog struct {
	models.LoginLog
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (s *AnalyticsService) RecentLogins(limit int) ([]RecentLoginLog, error) {
	var rows []RecentLoginLog
	err := s.db.Model(&models.LoginLog{}).
		Select("login_logs.*, users.full_name, users.email").
		Joins("LEFT JOIN users ON users.id = login_logs.user_id").
		Order("login_logs.login_time DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (s *AnalyticsService) TotalUsers() (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
