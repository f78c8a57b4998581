package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"truck_companion/internal/config"
	"truck_companion/internal/models"
)

// ListPendingUsers returns accounts waiting for approval. Registration
// activates accounts immediately, so rows only show up here when an admin
// or a seed script created them as pending — the surface still has to work
// on whatever appears.
func ListPendingUsers(c *gin.Context) {
	var pending []models.User
	if err := config.DB.Where("status = ?", "pending").Find(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list pending users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pending})
}

// ListUsers returns every registered account.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// ApproveUser flips a pending account to active.
func ApproveUser(c *gin.Context) {
	email := c.Param("email")

	res := config.DB.Model(&models.User{}).
		Where("email = ?", email).
		Update("status", "active")
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not approve user: " + res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	logrus.WithField("email", email).Info("user approved")
	c.JSON(http.StatusOK, gin.H{"message": "user approved"})
}

// RejectUser deletes an account and cascades over its trips, fines and
// preferences. Used both for rejecting pending registrations and for
// removing drivers from the board.
func RejectUser(c *gin.Context) {
	email := c.Param("email")
	if email == currentEmail(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account here"})
		return
	}

	if err := deleteUserCascade(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user: " + err.Error()})
		return
	}

	logrus.WithField("email", email).Info("user rejected and removed")
	c.JSON(http.StatusOK, gin.H{"message": "user removed"})
}
