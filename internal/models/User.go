package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Status   string `json:"status" gorm:"default:active"`      // "active", "pending"
	Role     string `json:"role" gorm:"default:driver"`        // "driver", "admin"
	Avatar   string `json:"avatar,omitempty" gorm:"type:text"` // base64 data URL uploaded from the profile page
}
