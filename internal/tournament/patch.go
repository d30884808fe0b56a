package tournament

// TablePatch is a partial table update. Nil fields are left unchanged. A set
// ClearTimer stops the timer and takes precedence over TimerStartedAt.
type TablePatch struct {
	Players            []string
	CurrentPlayerIndex *int
	Status             *Status
	TimerStartedAt     *int64
	ClearTimer         bool
}

// PatchTable applies a partial update to a table.
func PatchTable(doc *Document, tableID string, patch TablePatch) (*Table, error) {
	table, ok := doc.FindTable(tableID)
	if !ok {
		return nil, tableNotFound(tableID)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, invalid("unknown status %q", *patch.Status)
	}
	players := table.Players
	if patch.Players != nil {
		if len(patch.Players) < MinTablePlayers || len(patch.Players) > MaxTablePlayers {
			return nil, invalid("Must have %d-%d players", MinTablePlayers, MaxTablePlayers)
		}
		players = patch.Players
	}
	if patch.CurrentPlayerIndex != nil {
		if idx := *patch.CurrentPlayerIndex; idx < 0 || idx >= len(players) {
			return nil, invalid("currentPlayerIndex %d out of range", idx)
		}
	}

	if patch.Players != nil {
		table.Players = append([]string{}, patch.Players...)
		if table.CurrentPlayerIndex >= len(table.Players) {
			table.CurrentPlayerIndex = 0
		}
	}
	if patch.CurrentPlayerIndex != nil {
		table.CurrentPlayerIndex = *patch.CurrentPlayerIndex
	}
	if patch.Status != nil {
		table.Status = *patch.Status
	}
	switch {
	case patch.ClearTimer:
		table.TimerStartedAt = nil
	case patch.TimerStartedAt != nil:
		started := *patch.TimerStartedAt
		table.TimerStartedAt = &started
	}
	return table, nil
}

// DocumentPatch replaces whole top-level fields of a document. Nil fields are kept.
type DocumentPatch struct {
	Date    *string
	Players []Player
	Tables  []Table
	Rounds  []Round
}

// MergeDocument shallow-merges patch into doc.
func MergeDocument(doc *Document, patch DocumentPatch) {
	if patch.Date != nil {
		doc.Date = *patch.Date
	}
	if patch.Players != nil {
		doc.Players = patch.Players
	}
	if patch.Tables != nil {
		doc.Tables = patch.Tables
	}
	if patch.Rounds != nil {
		doc.Rounds = patch.Rounds
	}
}
