package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/cache"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const adminDashboardCacheKey = "admin:dashboard"

type AdminController struct {
	Analytics *services.AnalyticsService
	Tracking  *services.TrackingService
	Messages  *services.MessageService
}

func NewAdminController(
	analytics *services.AnalyticsService,
	tracking *services.TrackingService,
	messages *services.MessageService,
) *AdminController {
	return &AdminController{Analytics: analytics, Tracking: tracking, Messages: messages}
}

type adminDashboard struct {
	TotalUsers     int64                        `json:"total_users"`
	LoginLogs      []services.RecentLoginLog    `json:"login_logs"`
	UserBMIRecords []services.UserBMIOverview   `json:"user_bmi_records"`
	DailyTracking  []services.UserTracking      `json:"daily_tracking"`
}

// Dashboard aggregates the monitoring view: user count, recent logins, each
// user's latest BMI, and today's tracking. Cached briefly in Redis since it
// joins several tables; mutations below invalidate it.
func (ac *AdminController) Dashboard(c *gin.Context) {
	var cached adminDashboard
	if err := cache.Get(adminDashboardCacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	total, err := ac.Analytics.TotalUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	logins, err := ac.Analytics.RecentLogins(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load login logs"})
		return
	}

	overviews, err := ac.Analytics.UserBMIOverviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load BMI overview"})
		return
	}

	tracking, err := ac.Tracking.TodayTrackingForAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tracking"})
		return
	}

	dash := adminDashboard{
		TotalUsers:     total,
		LoginLogs:      logins,
		UserBMIRecords: overviews,
		DailyTracking:  tracking,
	}

	if err := cache.Set(adminDashboardCacheKey, dash, 30*time.Second); err != nil && !errors.Is(err, cache.ErrUnavailable) {
		utils.Logger.Warn("admin_dashboard_cache_failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, dash)
}

type MessageInput struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SendMessage persists an admin-to-user message. Both fields are required;
// nothing is written on a partial request.
func (ac *AdminController) SendMessage(c *gin.Context) {
	adminID := middlewares.SubjectID(c)

	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User and message are required."})
		return
	}
	if err := middlewares.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User and message are required."})
		return
	}

	msg, err := ac.Messages.SendMessage(adminID, input.UserID, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	_ = cache.Delete(adminDashboardCacheKey)

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent to user.", "sent": msg})
}

type TargetInput struct {
	UserID       uint   `json:"user_id" validate:"required"`
	TargetStatus string `json:"target_status" validate:"required,oneof=Ongoing Completed"`
}

// UpdateTarget sets a user's target status. Two admins racing on the same
// user resolve as last write wins.
func (ac *AdminController) UpdateTarget(c *gin.Context) {
	var input TargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User and target status are required."})
		return
	}
	if err := middlewares.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User and target status are required."})
		return
	}

	if err := ac.Messages.UpdateTargetStatus(input.UserID, input.TargetStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update target status"})
		return
	}

	_ = cache.Delete(adminDashboardCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "User target status updated."})
}
