package tournament

import "time"

// RoundInput is a round outcome as submitted by a table.
type RoundInput struct {
	TableID     string
	WinnerID    string
	Scores      map[string]int
	RoundNumber int
}

// SettleRound records a finished round, folds its deltas into player totals and
// readies the table for the next round.
//
// The scores are applied as given: zero-sum and seat coverage are the caller's
// responsibility. Deltas for unknown player ids are dropped.
func SettleRound(doc *Document, in RoundInput, now time.Time) (Round, error) {
	table, ok := doc.FindTable(in.TableID)
	if !ok {
		return Round{}, tableNotFound(in.TableID)
	}
	scores := make(map[string]int, len(in.Scores))
	for id, delta := range in.Scores {
		scores[id] = delta
	}
	round := Round{
		ID:          GenerateID(),
		TableID:     in.TableID,
		RoundNumber: in.RoundNumber,
		WinnerID:    in.WinnerID,
		Scores:      scores,
		Timestamp:   now.UnixMilli(),
	}
	doc.Rounds = append(doc.Rounds, round)

	for id, delta := range scores {
		if player, ok := doc.FindPlayer(id); ok {
			player.TotalScore += delta
		}
	}

	table.CurrentRound++
	table.Status = StatusPlaying
	table.CurrentPlayerIndex = 0
	table.TimerStartedAt = nil
	return round, nil
}

// ComputeScores converts the losers' remaining tile counts into round deltas: each
// loser pays their count and the winner collects the total.
func ComputeScores(winnerID string, loserTiles map[string]int) (map[string]int, error) {
	if winnerID == "" {
		return nil, invalid("winnerId is required")
	}
	scores := make(map[string]int, len(loserTiles)+1)
	total := 0
	for id, tiles := range loserTiles {
		if id == winnerID {
			continue
		}
		if tiles < 0 {
			return nil, invalid("tile count for %s must not be negative", id)
		}
		scores[id] = -tiles
		total += tiles
	}
	scores[winnerID] = total
	return scores, nil
}

// CheckScores reports whether scores cover exactly the table's seats, include the
// winner, charge no loser a positive amount and sum to zero.
func CheckScores(table Table, winnerID string, scores map[string]int) error {
	seated := make(map[string]struct{}, len(table.Players))
	for _, id := range table.Players {
		seated[id] = struct{}{}
	}
	if _, ok := seated[winnerID]; !ok {
		return invalid("winner %s is not seated at table %s", winnerID, table.ID)
	}
	if len(scores) != len(seated) {
		return invalid("scores must contain an entry for every player at the table")
	}
	sum := 0
	for id, delta := range scores {
		if _, ok := seated[id]; !ok {
			return invalid("player %s is not seated at table %s", id, table.ID)
		}
		if id != winnerID && delta > 0 {
			return invalid("loser %s cannot gain points", id)
		}
		sum += delta
	}
	if sum != 0 {
		return invalid("scores must sum to zero, got %d", sum)
	}
	return nil
}
