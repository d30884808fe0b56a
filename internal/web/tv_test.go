package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTVRendersStandings(t *testing.T) {
	state := DisplayState{
		Date: "2026-03-14",
		Standings: []StandingRow{
			{Rank: 1, Name: "Bob", Initial: "BO", Score: 10},
			{Rank: 2, Name: "<Alice>", Initial: "<A", Score: -10},
		},
		Tables: []TableRow{
			{ID: "t1", Players: []string{"Alice", "Bob"}, CurrentName: "Alice", CurrentRound: 2, Status: "playing", Clock: "0:42", TimerLevel: "ok"},
		},
		RoundsPlayed: 1,
	}
	var buf bytes.Buffer
	if err := TV(state).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"+10", "-10", "medal-gold", "&lt;Alice&gt;", "0:42", "Round 2", `content="5"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
	if strings.Contains(html, "<Alice>") {
		t.Fatalf("expected names to be escaped")
	}
}

func TestTVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := TV(DisplayState{Date: "2026-03-14", RefreshSecond: 3}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No players yet.") || !strings.Contains(buf.String(), `content="3"`) {
		t.Fatalf("unexpected empty page:\n%s", buf.String())
	}
}
