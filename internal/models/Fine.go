// internal/models/fine.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Fine is one penalty event, recorded manually or by the telemetry poller.
type Fine struct {
	gorm.Model
	UserEmail string    `json:"user_email" gorm:"index"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}
