package routes

import (
	"net/http"
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter wires services, controllers and middleware into the HTTP
// surface. The notification hub is shared between the websocket endpoint and
// the admin message path so sends reach connected users immediately.
func SetupRouter(db *gorm.DB) *gin.Engine {
	hub := services.NewNotificationHub()

	authSvc := services.NewAuthService(db)
	bmiSvc := services.NewBMIService(db)
	analyticsSvc := services.NewAnalyticsService(db)
	trackingSvc := services.NewTrackingService(db)
	messageSvc := services.NewMessageService(db, hub)
	quoteSvc := services.NewQuoteService(db, utils.Logger)

	home := controllers.NewHomeController(quoteSvc)
	auth := controllers.NewAuthController(authSvc)
	dashboard := controllers.NewDashboardController(db, bmiSvc, analyticsSvc, trackingSvc, messageSvc, quoteSvc)
	tracking := controllers.NewTrackingController(trackingSvc)
	admin := controllers.NewAdminController(analyticsSvc, trackingSvc, messageSvc)
	realtime := controllers.NewRealtimeController(hub)

	r := gin.New()
	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public
	r.GET("/", home.Home)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.POST("/user/register", auth.Register)
	r.POST("/user/login", auth.Login)
	r.POST("/user/forgot-password", auth.ForgotPassword)
	r.POST("/user/reset-password", auth.ResetPassword)
	r.POST("/admin/login", auth.AdminLogin)

	// User surface
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(utils.RoleUser))
	{
		user.GET("/dashboard", dashboard.Dashboard)
		user.POST("/dashboard", dashboard.SubmitBMI)
		user.POST("/daily-tracking", tracking.UpdateTracking)
		user.POST("/messages/read", dashboard.MarkMessagesRead)
		user.GET("/ws", realtime.MessagesWS)
	}

	// Admin surface
	adm := r.Group("/admin")
	adm.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(utils.RoleAdmin))
	{
		adm.GET("/dashboard", admin.Dashboard)
		adm.POST("/message", admin.SendMessage)
		adm.POST("/update_target", admin.UpdateTarget)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
