// Package stats computes derived driver statistics. Everything here is a
// pure function over records already loaded from the database: handlers pass
// slices in, nothing is cached, and results are recomputed on every request.
package stats

import (
	"sort"
	"strings"
	"time"

	"truck_companion/internal/models"
)

// Level buckets a career distance into the fixed rank ladder.
func Level(km int) string {
	if km < 1000 {
		return "Beginner"
	}
	if km < 5000 {
		return "Amateur"
	}
	if km < 10000 {
		return "Trucker"
	}
	if km < 50000 {
		return "Road King"
	}
	return "Legend"
}

// MonthKey renders the YYYY-MM grouping key used for all period filters.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// inMonth reports whether a record date falls in the given period. An empty
// month means "all time".
func inMonth(t time.Time, month string) bool {
	if month == "" {
		return true
	}
	return strings.HasPrefix(t.Format("2006-01-02"), month)
}

// Totals are one driver's aggregates for a period.
type Totals struct {
	DistanceKM int     `json:"total_km"`
	Trips      int     `json:"trips_count"`
	NetIncome  float64 `json:"net_income"` // trip income minus fine amounts
	Fines      int     `json:"fines_count"`
}

// PeriodTotals sums a single driver's trips and fines, optionally filtered
// to a YYYY-MM month.
func PeriodTotals(trips []models.Trip, fines []models.Fine, email string, month string) Totals {
	var t Totals
	for _, trip := range trips {
		if trip.UserEmail != email || !inMonth(trip.Date, month) {
			continue
		}
		t.DistanceKM += trip.DistanceKM
		t.NetIncome += trip.Income
		t.Trips++
	}
	for _, fine := range fines {
		if fine.UserEmail != email || !inMonth(fine.Date, month) {
			continue
		}
		t.NetIncome -= fine.Amount
		t.Fines++
	}
	return t
}

// LeaderboardEntry is one ranked driver on the drivers board.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Level  string `json:"level"`
	Totals
}

// Leaderboard ranks every driver by period distance, highest first. The sort
// is stable so drivers with equal distance keep their original order.
func Leaderboard(users []models.User, trips []models.Trip, fines []models.Fine, month string) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		t := PeriodTotals(trips, fines, u.Email, month)
		entries = append(entries, LeaderboardEntry{
			Name:   u.Name,
			Email:  u.Email,
			Avatar: u.Avatar,
			Level:  Level(t.DistanceKM),
			Totals: t,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DistanceKM > entries[j].DistanceKM
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// MonthTotals is one row of a driver's month-by-month history.
type MonthTotals struct {
	Month      string `json:"month"` // YYYY-MM
	DistanceKM int    `json:"total_km"`
	Loads      int    `json:"loads"`
}

// MonthlyBreakdown groups trips by calendar month, most recent month first.
func MonthlyBreakdown(trips []models.Trip) []MonthTotals {
	byMonth := make(map[string]*MonthTotals)
	for _, trip := range trips {
		key := MonthKey(trip.Date)
		row, ok := byMonth[key]
		if !ok {
			row = &MonthTotals{Month: key}
			byMonth[key] = row
		}
		row.DistanceKM += trip.DistanceKM
		row.Loads++
	}

	out := make([]MonthTotals, 0, len(byMonth))
	for _, row := range byMonth {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month > out[j].Month
	})
	return out
}

// QuotaProgress reports how far a driver is toward their distance goal.
type QuotaProgress struct {
	GoalKM      int     `json:"goal_km"`
	DrivenKM    int     `json:"driven_km"`
	RemainingKM int     `json:"remaining_km"`
	Percent     float64 `json:"percent"`
}

// Quota clamps remaining distance at zero and progress at 100%. A zero or
// negative goal falls back to the default so the division is always safe.
func Quota(drivenKM, goalKM int) QuotaProgress {
	if goalKM <= 0 {
		goalKM = models.DefaultGoalKM
	}

	remaining := goalKM - drivenKM
	if remaining < 0 {
		remaining = 0
	}

	percent := float64(drivenKM) / float64(goalKM) * 100
	if percent > 100 {
		percent = 100
	}

	return QuotaProgress{
		GoalKM:      goalKM,
		DrivenKM:    drivenKM,
		RemainingKM: remaining,
		Percent:     percent,
	}
}
