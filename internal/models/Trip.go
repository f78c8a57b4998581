// internal/models/trip.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Trip is one completed delivery. Rows are immutable after creation; they
// only disappear through "clear history" or a cascading user delete.
type Trip struct {
	gorm.Model
	UserEmail   string    `json:"user_email" gorm:"index"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	DistanceKM  int       `json:"distance"`
	Cargo       string    `json:"cargo"`
	Income      float64   `json:"income"`
	Date        time.Time `json:"date"`
}
