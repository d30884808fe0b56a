package tournament

import (
	"testing"
	"time"
)

func TestLeaderboard(t *testing.T) {
	players := []Player{
		{ID: "a", Name: "Ann", TotalScore: -4},
		{ID: "b", Name: "Ben", TotalScore: 12},
		{ID: "c", Name: "Cat", TotalScore: 0},
		{ID: "d", Name: "Dan", TotalScore: 12},
	}
	standings := Leaderboard(players)

	wantOrder := []string{"b", "d", "c", "a"}
	for i, standing := range standings {
		if standing.ID != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i], standing.ID)
		}
		if standing.Rank != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, standing.Rank)
		}
	}
	if players[0].ID != "a" {
		t.Fatalf("expected input slice untouched")
	}
}

func TestTimerReadings(t *testing.T) {
	start := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	started := start.UnixMilli()
	turn := 60 * time.Second

	cases := []struct {
		name      string
		startedAt *int64
		now       time.Time
		remaining int
		clock     string
		level     string
	}{
		{"stopped", nil, start, 60, "1:00", TimerOK},
		{"fresh", &started, start, 60, "1:00", TimerOK},
		{"partial second", &started, start.Add(1500 * time.Millisecond), 59, "0:59", TimerOK},
		{"warning", &started, start.Add(31 * time.Second), 29, "0:29", TimerWarning},
		{"critical", &started, start.Add(50 * time.Second), 10, "0:10", TimerCritical},
		{"expired", &started, start.Add(5 * time.Minute), 0, "0:00", TimerExpired},
		{"clock skew", &started, start.Add(-10 * time.Second), 60, "1:00", TimerOK},
	}
	for _, tc := range cases {
		reading := ReadTimer(Table{TimerStartedAt: tc.startedAt}, turn, tc.now)
		if reading.RemainingSeconds != tc.remaining || reading.Clock != tc.clock || reading.Level != tc.level {
			t.Fatalf("%s: unexpected reading %#v", tc.name, reading)
		}
		if reading.Running != (tc.startedAt != nil) {
			t.Fatalf("%s: unexpected running flag", tc.name)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{0: "0:00", 5: "0:05", 65: "1:05", 600: "10:00", -3: "0:00"}
	for seconds, want := range cases {
		if got := FormatClock(seconds); got != want {
			t.Fatalf("FormatClock(%d): expected %s, got %s", seconds, want, got)
		}
	}
}
