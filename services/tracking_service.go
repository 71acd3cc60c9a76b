package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

// dayStart truncates t to local midnight, the granularity of all tracking rows.
func dayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// GetDailyTracking fetches the row for (user, day), creating a blank one on
// first access. The unique index on (user_id, track_date) makes the create
// race-safe: a loser of the race falls back to reading the winner's row.
func (s *TrackingService) GetDailyTracking(userID uint, on time.Time) (*models.DailyTracking, error) {
	day := dayStart(on)

	var t models.DailyTracking
	err := s.db.
		Where("user_id = ? AND track_date = ?", userID, day).
		FirstOrCreate(&t, models.DailyTracking{UserID: userID, TrackDate: day}).Error
	if err != nil {
		// Lost the first-visit race: the row exists now, read it.
		var again models.DailyTracking
		if err2 := s.db.Where("user_id = ? AND track_date = ?", userID, day).First(&again).Error; err2 == nil {
			return &again, nil
		}
		return nil, err
	}
	return &t, nil
}

// UpdateDailyTracking overwrites all four flags for the day and returns the
// recomputed progress percentage. Last write wins; repeated identical calls
// are idempotent and never create a second row.
func (s *TrackingService) UpdateDailyTracking(userID uint, on time.Time, water, food, workout, challenge bool) (int, error) {
	t, err := s.GetDailyTracking(userID, on)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, done := range []bool{water, food, workout, challenge} {
		if done {
			completed++
		}
	}
	progress := completed * 100 / 4

	updates := map[string]interface{}{
		"water_completed":     water,
		"food_completed":      food,
		"workout_completed":   workout,
		"challenge_completed": challenge,
		"progress_percent":    progress,
	}
	if err := s.db.Model(&models.DailyTracking{}).Where("id = ?", t.ID).Updates(updates).Error; err != nil {
		return 0, err
	}
	return progress, nil
}

// EncouragementFor picks the canned message for a progress percentage.
func EncouragementFor(progress int) string {
	switch {
	case progress == 100:
		return "Congratulations! You have completed all your health goals for today."
	case progress >= 50:
		return "Great job. You're more than halfway there - keep going!"
	default:
		return "Good start! Make a small healthy choice right now to move closer to your goal."
	}
}

// TodayTrackingForAllUsers lists every user's tracking row for the current
// day, joined with the user's name, for the admin dashboard.
type UserTracking struct {
	models.DailyTracking
	FullName string `json:"full_name"`
}

func (s *TrackingService) TodayTrackingForAllUsers() ([]UserTracking, error) {
	day := dayStart(time.Now())

	var rows []UserTracking
	err := s.db.Model(&models.DailyTracking{}).
		Select("daily_trackings.*, users.full_name").
		Joins("JOIN users ON users.id = daily_trackings.user_id").
		Where("daily_trackings.track_date = ?", day).
		Order("users.full_name ASC").
		Scan(&rows).Error
	return rows, err
}
