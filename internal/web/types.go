package web

type StandingRow struct {
	Rank    int
	Name    string
	Initial string
	Score   int
}

type TableRow struct {
	ID           string
	Players      []string
	CurrentName  string
	CurrentRound int
	Status       string
	Clock        string
	TimerLevel   string
}

// DisplayState is everything the TV page renders for one refresh.
type DisplayState struct {
	Date          string
	Standings     []StandingRow
	Tables        []TableRow
	RoundsPlayed  int
	RefreshSecond int
}
