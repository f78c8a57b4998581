package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"truck_companion/internal/config"
	"truck_companion/internal/models"
)

type fineInput struct {
	Type   string  `json:"type" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date"` // RFC 3339, defaults to now
}

// CreateFine records a manually entered fine, for offences the telemetry
// plugin missed.
func CreateFine(c *gin.Context) {
	var input fineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
			return
		}
		date = parsed
	}

	fine := models.Fine{
		UserEmail: currentEmail(c),
		Type:      input.Type,
		Amount:    input.Amount,
		Date:      date,
	}
	if err := config.DB.Create(&fine).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save fine: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fine": fine})
}

// ListFines returns the caller's fines newest first, plus the running total.
func ListFines(c *gin.Context) {
	var fines []models.Fine
	if err := config.DB.
		Where("user_email = ?", currentEmail(c)).
		Order("date DESC, id DESC").
		Find(&fines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load fines: " + err.Error()})
		return
	}

	var total float64
	for _, f := range fines {
		total += f.Amount
	}

	c.JSON(http.StatusOK, gin.H{"data": fines, "total": total})
}
