package tournament

import (
	"strings"
	"time"
)

// CreateTable seats the named players at a new table, registering any name not yet
// seen today. Names match existing players case-insensitively.
func CreateTable(doc *Document, names []string) (Table, error) {
	if len(names) < MinTablePlayers || len(names) > MaxTablePlayers {
		return Table{}, invalid("Must have %d-%d players", MinTablePlayers, MaxTablePlayers)
	}
	distinct := make(map[string]struct{}, len(names))
	for _, name := range names {
		distinct[strings.ToLower(name)] = struct{}{}
	}
	if len(distinct) < MinTablePlayers {
		return Table{}, invalid("Must have %d-%d distinct players", MinTablePlayers, MaxTablePlayers)
	}

	ids := make([]string, 0, len(names))
	seated := make(map[string]struct{}, len(names))
	for _, name := range names {
		player := findPlayerByName(doc, name)
		if player == nil {
			doc.Players = append(doc.Players, NewPlayer(name))
			player = &doc.Players[len(doc.Players)-1]
		}
		if _, ok := seated[player.ID]; ok {
			continue
		}
		seated[player.ID] = struct{}{}
		ids = append(ids, player.ID)
	}
	table := Table{
		ID:                 GenerateID(),
		Players:            ids,
		CurrentPlayerIndex: 0,
		CurrentRound:       1,
		Status:             StatusPlaying,
	}
	doc.Tables = append(doc.Tables, table)
	return table, nil
}

func findPlayerByName(doc *Document, name string) *Player {
	for i := range doc.Players {
		if strings.EqualFold(doc.Players[i].Name, name) {
			return &doc.Players[i]
		}
	}
	return nil
}

// AdvanceTurn passes the turn to the next seat and restarts the turn timer.
func AdvanceTurn(doc *Document, tableID string, now time.Time) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	if n := len(table.Players); n > 0 {
		table.CurrentPlayerIndex = (table.CurrentPlayerIndex + 1) % n
	} else {
		table.CurrentPlayerIndex = 0
	}
	table.TimerStartedAt = millis(now)
	return table, nil
}

// StartTimer starts the current turn's timer without moving the turn.
func StartTimer(doc *Document, tableID string, now time.Time) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	table.TimerStartedAt = millis(now)
	return table, nil
}

// BeginScoring stops the timer and moves the table to settlement. The current
// status is not checked.
func BeginScoring(doc *Document, tableID string) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	table.Status = StatusScoring
	table.TimerStartedAt = nil
	return table, nil
}

// CancelScoring returns the table to play. The timer is left untouched; clients
// restart it when they see a playing table with a stopped timer.
func CancelScoring(doc *Document, tableID string) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	table.Status = StatusPlaying
	return table, nil
}

// ReorderPlayers replaces the seat order and gives the first seat the turn. The
// new order is not checked against the current seats.
func ReorderPlayers(doc *Document, tableID string, order []string) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	table.Players = append([]string{}, order...)
	table.CurrentPlayerIndex = 0
	return table, nil
}

// DeleteTable removes the table if present. Rounds and players are kept.
func DeleteTable(doc *Document, tableID string) {
	kept := doc.Tables[:0]
	for _, table := range doc.Tables {
		if table.ID != tableID {
			kept = append(kept, table)
		}
	}
	doc.Tables = kept
}

// ResetAll returns an empty document for date.
func ResetAll(date string) Document {
	return NewDocument(date)
}
