package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/middlewares"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB        *gorm.DB
	BMI       *services.BMIService
	Analytics *services.AnalyticsService
	Tracking  *services.TrackingService
	Messages  *services.MessageService
	Quotes    *services.QuoteService
}

func NewDashboardController(
	db *gorm.DB,
	bmi *services.BMIService,
	analytics *services.AnalyticsService,
	tracking *services.TrackingService,
	messages *services.MessageService,
	quotes *services.QuoteService,
) *DashboardController {
	return &DashboardController{
		DB:        db,
		BMI:       bmi,
		Analytics: analytics,
		Tracking:  tracking,
		Messages:  messages,
		Quotes:    quotes,
	}
}

type BMIInput struct {
	HeightCM float64 `json:"height_cm" binding:"required"`
	WeightKG float64 `json:"weight_kg" binding:"required"`
}

// SubmitBMI records a new measurement and answers with the computed BMI,
// category and matching plan. Invalid input writes nothing.
func (dc *DashboardController) SubmitBMI(c *gin.Context) {
	userID := middlewares.SubjectID(c)

	var input BMIInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid height and weight."})
		return
	}

	record, err := dc.BMI.RecordBMI(userID, input.HeightCM, input.WeightKG)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidMeasurement) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid height and weight."})
			return
		}
		utils.Logger.Error("bmi_record_failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bmi":             record.BMIValue,
		"category":        record.Category,
		"recommendations": services.RecommendationsFor(record.Category),
	})
}

// Dashboard assembles the user's whole coaching view: latest BMI and plan,
// improvement status, today's tracking, the message inbox and the quote.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	userID := middlewares.SubjectID(c)

	var user models.User
	if err := dc.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	records, err := dc.Analytics.LatestRecords(userID, 2)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load records"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":            user.ID,
			"full_name":     user.FullName,
			"email":         user.Email,
			"target_status": user.TargetStatus,
		},
		"motivational_message": services.MotivationalMessage(user.TargetStatus),
	}

	if len(records) > 0 {
		latest := records[0]
		status := services.CompareBMIRecords(records)

		resp["bmi_result"] = latest.BMIValue
		resp["bmi_category"] = latest.Category
		resp["recommendations"] = services.RecommendationsFor(latest.Category)
		if status != "" {
			resp["improvement_status"] = status
			resp["improvement_message"] = services.ImprovementMessage(status)
		}
	}

	tracking, err := dc.Tracking.GetDailyTracking(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tracking"})
		return
	}
	resp["tracking"] = tracking

	messages, err := dc.Messages.RecentMessages(userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	resp["admin_messages"] = messages

	quote, err := dc.Quotes.QuoteOfDay(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}
	resp["quote"] = quote

	c.JSON(http.StatusOK, resp)
}

// MarkMessagesRead flips the user's whole inbox to read, called once the
// client has shown the messages.
func (dc *DashboardController) MarkMessagesRead(c *gin.Context) {
	userID := middlewares.SubjectID(c)

	if err := dc.Messages.MarkRead(userID); err != nil {
		utils.Logger.Error("mark_read_failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read."})
}
