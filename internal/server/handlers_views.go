package server

import (
	"time"

	"rummi-tournament/internal/tournament"
	"rummi-tournament/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

const tvRefreshSeconds = 5

func (s *Server) handleTV(c *gin.Context) {
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTournament, err)
		return
	}
	state := displayState(doc, s.cfg.TurnDuration(), s.store.Now())
	templ.Handler(web.TV(state)).ServeHTTP(c.Writer, c.Request)
}

func displayState(doc tournament.Document, turn time.Duration, now time.Time) web.DisplayState {
	state := web.DisplayState{
		Date:          doc.Date,
		RoundsPlayed:  len(doc.Rounds),
		RefreshSecond: tvRefreshSeconds,
	}
	for _, standing := range tournament.Leaderboard(doc.Players) {
		state.Standings = append(state.Standings, web.StandingRow{
			Rank:    standing.Rank,
			Name:    standing.Name,
			Initial: standing.Initial,
			Score:   standing.TotalScore,
		})
	}
	for _, table := range doc.Tables {
		players := doc.TablePlayers(table)
		row := web.TableRow{
			ID:           table.ID,
			CurrentRound: table.CurrentRound,
			Status:       string(table.Status),
		}
		for _, player := range players {
			row.Players = append(row.Players, player.Name)
		}
		if idx := table.CurrentPlayerIndex; idx >= 0 && idx < len(players) {
			row.CurrentName = players[idx].Name
		}
		reading := tournament.ReadTimer(table, turn, now)
		row.Clock = reading.Clock
		row.TimerLevel = reading.Level
		state.Tables = append(state.Tables, row)
	}
	return state
}
