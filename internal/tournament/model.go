package tournament

import "time"

// Status is the lifecycle state of a table.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusScoring  Status = "scoring"
	StatusFinished Status = "finished"
)

const (
	MinTablePlayers = 2
	MaxTablePlayers = 4
)

// Valid reports whether s is one of the known table states.
func (s Status) Valid() bool {
	switch s {
	case StatusPlaying, StatusScoring, StatusFinished:
		return true
	default:
		return false
	}
}

type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initial    string `json:"initial"`
	TotalScore int    `json:"totalScore"`
}

type Table struct {
	ID                 string   `json:"id"`
	Players            []string `json:"players"`
	CurrentPlayerIndex int      `json:"currentPlayerIndex"`
	CurrentRound       int      `json:"currentRound"`
	Status             Status   `json:"status"`
	// TimerStartedAt is epoch milliseconds, nil while the timer is stopped.
	TimerStartedAt *int64 `json:"timerStartedAt"`
}

type Round struct {
	ID          string         `json:"id"`
	TableID     string         `json:"tableId"`
	RoundNumber int            `json:"roundNumber"`
	WinnerID    string         `json:"winnerId"`
	Scores      map[string]int `json:"scores"`
	Timestamp   int64          `json:"timestamp"`
}

// Document is the tournament state for a single calendar day.
type Document struct {
	Date    string   `json:"date"`
	Players []Player `json:"players"`
	Tables  []Table  `json:"tables"`
	Rounds  []Round  `json:"rounds"`
}

// DateFormat is the layout of Document.Date.
const DateFormat = "2006-01-02"

// DateOf returns the document date string for t in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateFormat)
}

// NewDocument returns an empty document for date.
func NewDocument(date string) Document {
	return Document{
		Date:    date,
		Players: []Player{},
		Tables:  []Table{},
		Rounds:  []Round{},
	}
}

// Normalize replaces nil collections with empty ones so documents always encode
// as arrays.
func (d *Document) Normalize() {
	if d.Players == nil {
		d.Players = []Player{}
	}
	if d.Tables == nil {
		d.Tables = []Table{}
	}
	if d.Rounds == nil {
		d.Rounds = []Round{}
	}
}

func (d *Document) FindTable(id string) (*Table, bool) {
	for i := range d.Tables {
		if d.Tables[i].ID == id {
			return &d.Tables[i], true
		}
	}
	return nil, false
}

func (d *Document) FindPlayer(id string) (*Player, bool) {
	for i := range d.Players {
		if d.Players[i].ID == id {
			return &d.Players[i], true
		}
	}
	return nil, false
}

// TablePlayers resolves a table's seats to players in seat order. Unknown ids are skipped.
func (d *Document) TablePlayers(table Table) []Player {
	players := make([]Player, 0, len(table.Players))
	for _, id := range table.Players {
		if player, ok := d.FindPlayer(id); ok {
			players = append(players, *player)
		}
	}
	return players
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{
		Date:    d.Date,
		Players: append([]Player{}, d.Players...),
		Tables:  make([]Table, len(d.Tables)),
		Rounds:  make([]Round, len(d.Rounds)),
	}
	for i, table := range d.Tables {
		table.Players = append([]string{}, table.Players...)
		if table.TimerStartedAt != nil {
			started := *table.TimerStartedAt
			table.TimerStartedAt = &started
		}
		out.Tables[i] = table
	}
	for i, round := range d.Rounds {
		scores := make(map[string]int, len(round.Scores))
		for id, score := range round.Scores {
			scores[id] = score
		}
		round.Scores = scores
		out.Rounds[i] = round
	}
	return out
}

func millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}
