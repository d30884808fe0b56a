package server

import (
	"net/http"

	"rummi-tournament/internal/tournament"

	"github.com/gin-gonic/gin"
)

type mergeTournamentRequest struct {
	Date    *string             `json:"date" binding:"omitempty,tournamentdate"`
	Players []tournament.Player `json:"players"`
	Tables  []tournament.Table  `json:"tables"`
	Rounds  []tournament.Round  `json:"rounds"`
}

var mergeTournamentMessages = bindMessages{
	"Date": {
		"tournamentdate": "date must be YYYY-MM-DD",
	},
}

func (s *Server) handleGetTournament(c *gin.Context) {
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTournament, err)
		return
	}
	s.succeeded(opGetTournament)
	c.JSON(http.StatusOK, doc)
}

// handleMergeTournament replaces whichever top-level fields the body carries. The
// merged tables must still seat registered players.
func (s *Server) handleMergeTournament(c *gin.Context) {
	var req mergeTournamentRequest
	if !bindJSON(c, &req, mergeTournamentMessages, "Invalid tournament data") {
		return
	}
	patch := tournament.DocumentPatch{
		Date:    req.Date,
		Players: req.Players,
		Tables:  req.Tables,
		Rounds:  req.Rounds,
	}
	doc, err := s.store.Update(c.Request.Context(), func(doc *tournament.Document) error {
		tournament.MergeDocument(doc, patch)
		if patch.Players != nil || patch.Tables != nil {
			return checkTables(doc)
		}
		return nil
	})
	if err != nil {
		s.respondError(c, opMergeTournament, err)
		return
	}
	s.succeeded(opMergeTournament)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleResetTournament(c *gin.Context) {
	doc, err := s.store.Reset(c.Request.Context())
	if err != nil {
		s.respondError(c, opResetTournament, err)
		return
	}
	s.succeeded(opResetTournament)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTournament, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      doc.Date,
		"standings": tournament.Leaderboard(doc.Players),
	})
}
