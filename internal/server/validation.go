package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"rummi-tournament/internal/tournament"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxNameLength = 20

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("playername", func(fl validator.FieldLevel) bool {
			_, err := validateName(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("tournamentdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(tournament.DateFormat, fl.Field().String())
			return err == nil
		})
	})
}

func validateName(name string) (string, error) {
	return validateText("name", name, maxNameLength)
}

func validateText(label, text string, maxLen int) (string, error) {
	trimmed := normalizeText(text)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", fmt.Errorf("%s must be %d characters or fewer", label, maxLen)
	}
	if !isSafeText(trimmed) {
		return "", fmt.Errorf("%s contains unsupported characters", label)
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

// isSafeText accepts letters and digits in any script plus a little punctuation.
func isSafeText(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ' ', '-', '_', '\'', '.', '&', '(', ')':
			continue
		default:
			return false
		}
	}
	return true
}

func normalizeNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		clean, err := validateName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, clean)
	}
	return out, nil
}

// checkPermutation reports whether order holds exactly the seats of current.
func checkPermutation(current, order []string) error {
	if len(order) != len(current) {
		return errors.New("players must be a reordering of the table's players")
	}
	seats := make(map[string]int, len(current))
	for _, id := range current {
		seats[id]++
	}
	for _, id := range order {
		if seats[id] == 0 {
			return errors.New("players must be a reordering of the table's players")
		}
		seats[id]--
	}
	return nil
}

// checkTables requires every table in doc to hold 2-4 distinct registered players,
// a seat index inside them, a round of at least 1 and a known status.
func checkTables(doc *tournament.Document) error {
	ids := make(map[string]struct{}, len(doc.Tables))
	for _, table := range doc.Tables {
		if table.ID == "" {
			return &tournament.ValidationError{Message: "table id is required"}
		}
		if _, dup := ids[table.ID]; dup {
			return &tournament.ValidationError{Message: "table " + table.ID + " appears twice"}
		}
		ids[table.ID] = struct{}{}
		if n := len(table.Players); n < tournament.MinTablePlayers || n > tournament.MaxTablePlayers {
			return &tournament.ValidationError{Message: fmt.Sprintf("table %s: Must have %d-%d players", table.ID, tournament.MinTablePlayers, tournament.MaxTablePlayers)}
		}
		if err := checkSeats(doc, table.Players); err != nil {
			return &tournament.ValidationError{Message: "table " + table.ID + ": " + err.Error()}
		}
		if table.CurrentPlayerIndex < 0 || table.CurrentPlayerIndex >= len(table.Players) {
			return &tournament.ValidationError{Message: fmt.Sprintf("table %s: currentPlayerIndex %d out of range", table.ID, table.CurrentPlayerIndex)}
		}
		if table.CurrentRound < 1 {
			return &tournament.ValidationError{Message: "table " + table.ID + ": currentRound must be at least 1"}
		}
		if !table.Status.Valid() {
			return &tournament.ValidationError{Message: fmt.Sprintf("table %s: unknown status %q", table.ID, table.Status)}
		}
	}
	return nil
}
