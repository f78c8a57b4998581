// internal/models/preference.go
package models

import "gorm.io/gorm"

// Preference holds per-driver settings, keyed by email like trips and fines.
type Preference struct {
	gorm.Model
	UserEmail string `json:"user_email" gorm:"unique"`
	GoalKM    int    `json:"goal" gorm:"default:10000"` // monthly distance target
}

// DefaultGoalKM is used whenever a driver never set a goal of their own.
const DefaultGoalKM = 10000
