package tournament

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeScores(t *testing.T) {
	got, err := ComputeScores("w", map[string]int{"a": 10, "b": 0, "c": 25})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	want := map[string]int{"w": 35, "a": -10, "b": 0, "c": -25}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected scores (-want +got):\n%s", diff)
	}
}

func TestComputeScoresIgnoresWinnerTiles(t *testing.T) {
	got, err := ComputeScores("w", map[string]int{"w": 9, "a": 4})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got["w"] != 4 || got["a"] != -4 {
		t.Fatalf("unexpected scores %v", got)
	}
}

func TestComputeScoresRejectsBadInput(t *testing.T) {
	if _, err := ComputeScores("", map[string]int{"a": 1}); !IsValidation(err) {
		t.Fatalf("expected validation error for missing winner, got %v", err)
	}
	if _, err := ComputeScores("w", map[string]int{"a": -1}); !IsValidation(err) {
		t.Fatalf("expected validation error for negative tiles, got %v", err)
	}
}

func TestCheckScores(t *testing.T) {
	table := Table{ID: "t1", Players: []string{"a", "b", "c"}}
	cases := []struct {
		name    string
		winner  string
		scores  map[string]int
		wantErr bool
	}{
		{"valid", "a", map[string]int{"a": 8, "b": -5, "c": -3}, false},
		{"all zero", "a", map[string]int{"a": 0, "b": 0, "c": 0}, false},
		{"winner not seated", "z", map[string]int{"a": 8, "b": -5, "c": -3}, true},
		{"missing seat", "a", map[string]int{"a": 5, "b": -5}, true},
		{"stranger", "a", map[string]int{"a": 5, "b": -5, "z": 0}, true},
		{"loser gains", "a", map[string]int{"a": -2, "b": 5, "c": -3}, true},
		{"not zero sum", "a", map[string]int{"a": 9, "b": -5, "c": -3}, true},
	}
	for _, tc := range cases {
		err := CheckScores(table, tc.winner, tc.scores)
		if tc.wantErr && !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
	}
}

func TestComputedScoresPassCheck(t *testing.T) {
	table := Table{ID: "t1", Players: []string{"a", "b", "c", "d"}}
	scores, err := ComputeScores("c", map[string]int{"a": 3, "b": 17, "d": 1})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if err := CheckScores(table, "c", scores); err != nil {
		t.Fatalf("expected computed scores to be valid, got %v", err)
	}
}
