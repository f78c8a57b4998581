package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"truck_companion/internal/config"
	"truck_companion/internal/models"
)

// maxAvatarBytes caps uploaded avatars. The value covers a 2MB image after
// base64 expansion.
const maxAvatarBytes = 3 * 1024 * 1024

type updateProfileInput struct {
	Name     string  `json:"name" binding:"required"`
	Password *string `json:"password"` // optional, only changed when present
}

// GetProfile returns the caller's account and preferences.
func GetProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("email = ?", currentEmail(c)).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	pref := loadPreference(user.Email)

	c.JSON(http.StatusOK, gin.H{"user": user, "preferences": pref})
}

// UpdateProfile changes the caller's display name and, optionally, password.
func UpdateProfile(c *gin.Context) {
	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", currentEmail(c)).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	user.Name = input.Name
	if input.Password != nil && *input.Password != "" {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateAvatar stores a base64-encoded avatar image on the caller's account.
func UpdateAvatar(c *gin.Context) {
	var input struct {
		Avatar string `json:"avatar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Avatar) > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large, choose one under 2MB"})
		return
	}

	res := config.DB.Model(&models.User{}).
		Where("email = ?", currentEmail(c)).
		Update("avatar", input.Avatar)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save avatar: " + res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "avatar updated"})
}

// UpdateGoal sets the caller's distance target. Non-positive goals are
// rejected, same as the original quota form.
func UpdateGoal(c *gin.Context) {
	var input struct {
		Goal int `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Goal <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal must be a positive distance"})
		return
	}

	pref := models.Preference{UserEmail: currentEmail(c), GoalKM: input.Goal}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"goal_km"}),
	}).Create(&pref).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goal: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": pref})
}

// DeleteAccount removes the caller and everything keyed to their email.
func DeleteAccount(c *gin.Context) {
	email := currentEmail(c)
	if err := deleteUserCascade(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete account: " + err.Error()})
		return
	}

	logrus.WithField("email", email).Info("account deleted")
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// deleteUserCascade removes a user together with their trips, fines and
// preferences in one transaction. Other users' records are untouched.
// Deletes are Unscoped: a soft-deleted row would keep holding the unique
// email/user_email indexes and block the address from ever registering
// again.
func deleteUserCascade(email string) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Where("email = ?", email).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Unscoped().Where("user_email = ?", email).Delete(&models.Trip{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_email = ?", email).Delete(&models.Fine{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("user_email = ?", email).Delete(&models.Preference{}).Error
	})
}

// loadPreference returns the stored preference row or the defaults when the
// user never saved one.
func loadPreference(email string) models.Preference {
	var pref models.Preference
	err := config.DB.Where("user_email = ?", email).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Preference{UserEmail: email, GoalKM: models.DefaultGoalKM}
	}
	return pref
}
