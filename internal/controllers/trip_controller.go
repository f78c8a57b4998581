package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"truck_companion/internal/config"
	"truck_companion/internal/models"
)

type tripInput struct {
	Source      string  `json:"source" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Distance    int     `json:"distance" binding:"required"`
	Cargo       string  `json:"cargo"`
	Income      float64 `json:"income"`
	Date        string  `json:"date"` // RFC 3339, defaults to now
}

// CreateTrip records a manually entered delivery for the authenticated
// driver. Telemetry-detected trips go through the poller instead.
func CreateTrip(c *gin.Context) {
	var input tripInput
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

	trip := models.Trip{
		UserEmail:   currentEmail(c),
		Source:      input.Source,
		Destination: input.Destination,
		DistanceKM:  input.Distance,
		Cargo:       input.Cargo,
		Income:      input.Income,
		Date:        date,
	}
	if err := config.DB.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save trip: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// ListTrips returns the caller's trips, newest first.
func ListTrips(c *gin.Context) {
	var trips []models.Trip
	if err := config.DB.
		Where("user_email = ?", currentEmail(c)).
		Order("date DESC, id DESC").
		Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load trips: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips})
}

// ClearTrips wipes the caller's trip history. Fines are kept.
func ClearTrips(c *gin.Context) {
	res := config.DB.Where("user_email = ?", currentEmail(c)).Delete(&models.Trip{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear history: " + res.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "history cleared", "deleted": res.RowsAffected})
}
