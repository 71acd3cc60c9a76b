package controllers

import (
	"net/http"
	"time"

	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrackingController struct {
	Tracking *services.TrackingService
}

func NewTrackingController(tracking *services.TrackingService) *TrackingController {
	return &TrackingController{Tracking: tracking}
}

type TrackingInput struct {
	WaterCompleted     bool `json:"water_completed"`
	FoodCompleted      bool `json:"food_completed"`
	WorkoutCompleted   bool `json:"workout_completed"`
	ChallengeCompleted bool `json:"challenge_completed"`
}

// UpdateTracking overwrites today's four habit flags and answers with the
// recomputed progress and an encouragement message. Missing flags default to
// false, matching the checkbox semantics of the client.
func (tc *TrackingController) UpdateTracking(c *gin.Context) {
	userID := middlewares.SubjectID(c)

	var input TrackingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	progress, err := tc.Tracking.UpdateDailyTracking(
		userID, time.Now(),
		input.WaterCompleted, input.FoodCompleted,
		input.WorkoutCompleted, input.ChallengeCompleted,
	)
	if err != nil {
		utils.Logger.Error("tracking_update_failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update tracking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"progress": progress,
		"message":  services.EncouragementFor(progress),
	})
}
