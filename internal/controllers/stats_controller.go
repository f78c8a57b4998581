package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"truck_companion/internal/config"
	"truck_companion/internal/models"
	"truck_companion/internal/stats"
)

// GetOverview returns the caller's career totals, level and quota progress.
func GetOverview(c *gin.Context) {
	email := currentEmail(c)

	trips, fines, err := loadRecords(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load records: " + err.Error()})
		return
	}

	totals := stats.PeriodTotals(trips, fines, email, "")
	pref := loadPreference(email)

	c.JSON(http.StatusOK, gin.H{
		"totals": totals,
		"level":  stats.Level(totals.DistanceKM),
		"quota":  stats.Quota(totals.DistanceKM, pref.GoalKM),
	})
}

// GetMonthlyStats returns the caller's month-by-month history, most recent
// month first.
func GetMonthlyStats(c *gin.Context) {
	email := currentEmail(c)

	trips, _, err := loadRecords(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats.MonthlyBreakdown(trips)})
}

// GetLeaderboard ranks every driver for the requested month (defaults to
// the current one, like the drivers page always did).
func GetLeaderboard(c *gin.Context) {
	month := c.DefaultQuery("month", stats.MonthKey(time.Now()))

	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load users: " + err.Error()})
		return
	}

	trips, fines, err := loadRecords("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month": month,
		"data":  stats.Leaderboard(users, trips, fines, month),
	})
}

// loadRecords fetches trips and fines, for one driver or, with an empty
// email, for everyone.
func loadRecords(email string) ([]models.Trip, []models.Fine, error) {
	tripQuery := config.DB.Order("id")
	fineQuery := config.DB.Order("id")
	if email != "" {
		tripQuery = tripQuery.Where("user_email = ?", email)
		fineQuery = fineQuery.Where("user_email = ?", email)
	}

	var trips []models.Trip
	if err := tripQuery.Find(&trips).Error; err != nil {
		return nil, nil, err
	}
	var fines []models.Fine
	if err := fineQuery.Find(&fines).Error; err != nil {
		return nil, nil, err
	}
	return trips, fines, nil
}
