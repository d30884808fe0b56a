package server

import (
	"net/http"

	"rummi-tournament/internal/tournament"

	"github.com/gin-gonic/gin"
)

// createRoundRequest carries either final score deltas or the losers' remaining
// tile counts. Exactly one of Scores and Tiles must be set.
type createRoundRequest struct {
	TableID  string         `json:"tableId" binding:"required"`
	WinnerID string         `json:"winnerId" binding:"required"`
	Scores   map[string]int `json:"scores"`
	Tiles    map[string]int `json:"tiles"`
}

var createRoundMessages = bindMessages{
	"TableID": {
		"required": "tableId is required",
	},
	"WinnerID": {
		"required": "winnerId is required",
	},
}

func (s *Server) handleCreateRound(c *gin.Context) {
	var req createRoundRequest
	if !bindJSON(c, &req, createRoundMessages, "Invalid round data") {
		return
	}
	if (req.Scores == nil) == (req.Tiles == nil) {
		writeError(c, http.StatusBadRequest, "Provide either scores or tiles")
		return
	}

	now := s.store.Now()
	var round tournament.Round
	doc, err := s.store.Update(c.Request.Context(), func(doc *tournament.Document) error {
		table, ok := doc.FindTable(req.TableID)
		if !ok {
			return &tournament.NotFoundError{Kind: "table", ID: req.TableID}
		}
		scores := req.Scores
		if req.Tiles != nil {
			computed, err := tournament.ComputeScores(req.WinnerID, req.Tiles)
			if err != nil {
				return err
			}
			scores = computed
		}
		if err := tournament.CheckScores(*table, req.WinnerID, scores); err != nil {
			return err
		}
		settled, err := tournament.SettleRound(doc, tournament.RoundInput{
			TableID:     req.TableID,
			WinnerID:    req.WinnerID,
			Scores:      scores,
			RoundNumber: table.CurrentRound,
		}, now)
		if err != nil {
			return err
		}
		round = settled
		return nil
	})
	if err != nil {
		s.respondError(c, opCreateRound, err)
		return
	}
	s.succeeded(opCreateRound)
	s.logger.InfoContext(c.Request.Context(), "round settled",
		"table_id", round.TableID,
		"round_id", round.ID,
		"round_number", round.RoundNumber,
		"winner_id", round.WinnerID,
	)
	c.JSON(http.StatusCreated, gin.H{
		"round":      round,
		"tournament": doc,
	})
}
