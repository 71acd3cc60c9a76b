package services

import (
	"testing"
	"time"

	"backend/models"
)

/* ─── Fetch-or-create tests ──────────────────────────────────────────── */

// TestGetDailyTracking_CreatesBlankRow verifies the lazy first-visit create:
// a blank row with zero progress appears for the requested day.
func TestGetDailyTracking_CreatesBlankRow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewTrackingService(db)

	tr, err := svc.GetDailyTracking(user.ID, time.Now())
	if err != nil {
		t.Fatalf("GetDailyTracking failed: %v", err)
	}
	if tr.ProgressPercent != 0 {
		t.Errorf("new row progress = %d, want 0", tr.ProgressPercent)
	}
	if tr.WaterCompleted || tr.FoodCompleted || tr.WorkoutCompleted || tr.ChallengeCompleted {
		t.Error("new row should have all flags false")
	}
}

// TestGetDailyTracking_Idempotent verifies repeated access for the same day
// returns the same row instead of creating another.
func TestGetDailyTracking_Idempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewTrackingService(db)

	first, err := svc.GetDailyTracking(user.ID, time.Now())
	if err != nil {
		t.Fatalf("first access failed: %v", err)
	}
	second, err := svc.GetDailyTracking(user.ID, time.Now())
	if err != nil {
		t.Fatalf("second access failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same row, got ids %d and %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.DailyTracking{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

/* ─── Progress computation tests ─────────────────────────────────────── */

// TestUpdateDailyTracking_Progress pins the percentage for representative
// flag combinations.
func TestUpdateDailyTracking_Progress(t *testing.T) {
	cases := []struct {
		name                            string
		water, food, workout, challenge bool
		want                            int
	}{
		{"all false", false, false, false, false, 0},
		{"one flag", true, false, false, false, 25},
		{"two flags", true, true, false, false, 50},
		{"three flags", true, true, true, false, 75},
		{"all true", true, true, true, true, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			user := createTestUser(t, db, "alice@example.com")
			svc := NewTrackingService(db)

			got, err := svc.UpdateDailyTracking(user.ID, time.Now(), tc.water, tc.food, tc.workout, tc.challenge)
			if err != nil {
				t.Fatalf("UpdateDailyTracking failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("progress = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestUpdateDailyTracking_IdempotentRepeatedCalls verifies that two identical
// updates yield the same progress and leave exactly one row behind.
func TestUpdateDailyTracking_IdempotentRepeatedCalls(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewTrackingService(db)

	first, err := svc.UpdateDailyTracking(user.ID, time.Now(), true, true, false, false)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.UpdateDailyTracking(user.ID, time.Now(), true, true, false, false)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if first != second || first != 50 {
		t.Errorf("progress = %d then %d, want 50 both times", first, second)
	}

	var count int64
	db.Model(&models.DailyTracking{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

// TestUpdateDailyTracking_LastWriteWins verifies flags are overwritten
// wholesale rather than merged.
func TestUpdateDailyTracking_LastWriteWins(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewTrackingService(db)

	if _, err := svc.UpdateDailyTracking(user.ID, time.Now(), true, true, true, true); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	got, err := svc.UpdateDailyTracking(user.ID, time.Now(), false, false, true, false)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if got != 25 {
		t.Errorf("progress after overwrite = %d, want 25", got)
	}

	tr, err := svc.GetDailyTracking(user.ID, time.Now())
	if err != nil {
		t.Fatalf("GetDailyTracking failed: %v", err)
	}
	if tr.WaterCompleted || tr.FoodCompleted || !tr.WorkoutCompleted || tr.ChallengeCompleted {
		t.Errorf("flags not overwritten wholesale: %+v", tr)
	}
}

// TestUpdateDailyTracking_SeparateDays verifies different days get distinct rows.
func TestUpdateDailyTracking_SeparateDays(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	svc := NewTrackingService(db)

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	if _, err := svc.UpdateDailyTracking(user.ID, yesterday, true, true, true, true); err != nil {
		t.Fatalf("yesterday update failed: %v", err)
	}
	if _, err := svc.UpdateDailyTracking(user.ID, today, true, false, false, false); err != nil {
		t.Fatalf("today update failed: %v", err)
	}

	var count int64
	db.Model(&models.DailyTracking{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 2 {
		t.Errorf("row count = %d, want 2", count)
	}
}

/* ─── Encouragement message tests ────────────────────────────────────── */

// TestEncouragementFor verifies the fixed thresholds: 100 gets the all-goals
// message, >=50 the halfway message, below that the small-choice nudge.
func TestEncouragementFor(t *testing.T) {
	cases := []struct {
		progress int
		want     string
	}{
		{100, "Congratulations! You have completed all your health goals for today."},
		{75, "Great job. You're more than halfway there - keep going!"},
		{50, "Great job. You're more than halfway there - keep going!"},
		{25, "Good start! Make a small healthy choice right now to move closer to your goal."},
		{0, "Good start! Make a small healthy choice right now to move closer to your goal."},
	}

	for _, tc := range cases {
		if got := EncouragementFor(tc.progress); got != tc.want {
			t.Errorf("EncouragementFor(%d) = %q, want %q", tc.progress, got, tc.want)
		}
	}
}
