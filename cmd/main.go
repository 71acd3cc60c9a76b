package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend/cache"
	"backend/config"
	"backend/models"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	utils.Logger.Info("starting_application")

	config.InitDB()

	// Cache is best-effort; the app serves from the DB without it.
	_ = cache.InitRedis(utils.Logger)
	defer cache.Close()

	seedQuotes()
	seedAdmin()

	gin.SetMode(gin.ReleaseMode)
	r := routes.SetupRouter(config.DB)

	startServer(r)
}

// seedQuotes loads the initial quote pool when the table is empty.
func seedQuotes() {
	var count int64
	config.DB.Model(&models.MotivationalQuote{}).Count(&count)
	if count > 0 {
		return
	}

	quotes := []models.MotivationalQuote{
		{Text: "Your health is an investment, not an expense.", Author: "Unknown"},
		{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
		{Text: "Small daily improvements are the key to staggering long-term results.", Author: "Unknown"},
		{Text: "The groundwork for all happiness is good health.", Author: "Leigh Hunt"},
		{Text: "It is health that is real wealth and not pieces of gold and silver.", Author: "Mahatma Gandhi"},
		{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun"},
	}
	if err := config.DB.Create(&quotes).Error; err != nil {
		utils.Logger.Warn("quote_seed_failed", zap.Error(err))
		return
	}
	utils.Logger.Info("quotes_seeded", zap.Int("count", len(quotes)))
}

// seedAdmin creates the default admin account on first boot, using
// ADMIN_EMAIL/ADMIN_PASSWORD when set.
func seedAdmin() {
	var count int64
	config.DB.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-now"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.Logger.Warn("admin_seed_failed", zap.Error(err))
		return
	}

	admin := models.Admin{FullName: "Administrator", Email: email, Password: hashed}
	if err := config.DB.Create(&admin).Error; err != nil {
		utils.Logger.Warn("admin_seed_failed", zap.Error(err))
		return
	}
	utils.Logger.Info("admin_seeded", zap.String("email", email))
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.Logger.Info("starting_http_server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
}
