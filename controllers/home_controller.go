package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

const consistencyMessage = "Consistency beats intensity: small healthy choices every day lead to big changes."

// Static reminders shown on every visit; simulated nudges, not scheduled ones.
var reminders = []string{
	"Drink a glass of water now.",
	"Take a 5-minute walk or stretch break.",
	"Review your meal plan for today.",
}

type HomeController struct {
	Quotes *services.QuoteService
}

func NewHomeController(quotes *services.QuoteService) *HomeController {
	return &HomeController{Quotes: quotes}
}

// Home serves the public landing payload: the daily quote plus the standing
// consistency message and reminders.
func (hc *HomeController) Home(c *gin.Context) {
	quote, err := hc.Quotes.QuoteOfDay(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote":               quote,
		"consistency_message": consistencyMessage,
		"reminders":           reminders,
	})
}
