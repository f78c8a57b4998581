package stats

import (
	"testing"
	"time"

	"truck_companion/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLevel(t *testing.T) {
	cases := []struct {
		km   int
		want string
	}{
		{0, "Beginner"},
		{999, "Beginner"},
		{1000, "Amateur"},
		{4999, "Amateur"},
		{5000, "Trucker"},
		{9999, "Trucker"},
		{10000, "Road King"},
		{49999, "Road King"},
		{50000, "Legend"},
		{1000000, "Legend"},
	}
	for _, c := range cases {
		if got := Level(c.km); got != c.want {
			t.Errorf("Level(%d) = %q, want %q", c.km, got, c.want)
		}
	}
}

func TestQuota(t *testing.T) {
	cases := []struct {
		driven, goal  int
		wantRemaining int
		wantPercent   float64
	}{
		{0, 10000, 10000, 0},
		{10000, 10000, 0, 100},
		{15000, 10000, 0, 100}, // clamped
		{2500, 10000, 7500, 25},
		{500, 0, 9500, 5}, // unset goal falls back to the default
	}
	for _, c := range cases {
		got := Quota(c.driven, c.goal)
		if got.RemainingKM != c.wantRemaining {
			t.Errorf("Quota(%d, %d).RemainingKM = %d, want %d", c.driven, c.goal, got.RemainingKM, c.wantRemaining)
		}
		if got.Percent != c.wantPercent {
			t.Errorf("Quota(%d, %d).Percent = %v, want %v", c.driven, c.goal, got.Percent, c.wantPercent)
		}
	}
}

func TestPeriodTotals(t *testing.T) {
	trips := []models.Trip{
		{UserEmail: "a@x.com", DistanceKM: 100, Income: 500, Date: date("2024-01-05")},
		{UserEmail: "a@x.com", DistanceKM: 200, Income: 900, Date: date("2024-02-10")},
		{UserEmail: "b@x.com", DistanceKM: 999, Income: 9999, Date: date("2024-01-05")},
	}
	fines := []models.Fine{
		{UserEmail: "a@x.com", Amount: 150, Date: date("2024-01-06")},
		{UserEmail: "a@x.com", Amount: 50, Date: date("2024-03-01")},
	}

	all := PeriodTotals(trips, fines, "a@x.com", "")
	if all.DistanceKM != 300 || all.Trips != 2 || all.Fines != 2 {
		t.Fatalf("all-time totals wrong: %+v", all)
	}
	if all.NetIncome != 500+900-150-50 {
		t.Errorf("all-time net income = %v", all.NetIncome)
	}

	jan := PeriodTotals(trips, fines, "a@x.com", "2024-01")
	if jan.DistanceKM != 100 || jan.Trips != 1 || jan.Fines != 1 {
		t.Fatalf("january totals wrong: %+v", jan)
	}
	if jan.NetIncome != 500-150 {
		t.Errorf("january net income = %v", jan.NetIncome)
	}
}

func TestLeaderboardOrderAndStability(t *testing.T) {
	users := []models.User{
		{Name: "Ana", Email: "ana@x.com"},
		{Name: "Bea", Email: "bea@x.com"},
		{Name: "Caio", Email: "caio@x.com"},
	}
	trips := []models.Trip{
		{UserEmail: "bea@x.com", DistanceKM: 300, Date: date("2024-01-10")},
		{UserEmail: "ana@x.com", DistanceKM: 100, Date: date("2024-01-11")},
		{UserEmail: "caio@x.com", DistanceKM: 100, Date: date("2024-01-12")},
	}

	board := Leaderboard(users, trips, nil, "2024-01")
	if len(board) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(board))
	}
	if board[0].Email != "bea@x.com" || board[0].Rank != 1 {
		t.Errorf("expected bea first, got %+v", board[0])
	}
	// Ana and Caio tie on 100 km; Ana was inserted first and must stay ahead.
	if board[1].Email != "ana@x.com" || board[2].Email != "caio@x.com" {
		t.Errorf("tie not stable: %q then %q", board[1].Email, board[2].Email)
	}
	if board[2].Rank != 3 {
		t.Errorf("rank = %d, want 3", board[2].Rank)
	}
}

func TestLeaderboardMonthFilter(t *testing.T) {
	users := []models.User{{Name: "Ana", Email: "ana@x.com"}}
	trips := []models.Trip{
		{UserEmail: "ana@x.com", DistanceKM: 100, Date: date("2024-01-10")},
		{UserEmail: "ana@x.com", DistanceKM: 999, Date: date("2024-02-10")},
	}
	board := Leaderboard(users, trips, nil, "2024-01")
	if board[0].DistanceKM != 100 {
		t.Errorf("month filter leaked: got %d km", board[0].DistanceKM)
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	trips := []models.Trip{
		{DistanceKM: 80, Date: date("2024-01-05")},
		{DistanceKM: 20, Date: date("2024-01-20")},
		{DistanceKM: 10, Date: date("2024-02-01")},
	}

	got := MonthlyBreakdown(trips)
	want := []MonthTotals{
		{Month: "2024-02", DistanceKM: 10, Loads: 1},
		{Month: "2024-01", DistanceKM: 100, Loads: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMonthlyBreakdownEmpty(t *testing.T) {
	if got := MonthlyBreakdown(nil); len(got) != 0 {
		t.Errorf("expected no rows, got %+v", got)
	}
}
