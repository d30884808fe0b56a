package tournament

import "sort"

type Standing struct {
	Rank int `json:"rank"`
	Player
}

// Leaderboard ranks players by total score, highest first. Equal totals keep their
// registration order.
func Leaderboard(players []Player) []Standing {
	sorted := append([]Player{}, players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})
	standings := make([]Standing, len(sorted))
	for i, player := range sorted {
		standings[i] = Standing{Rank: i + 1, Player: player}
	}
	return standings
}
