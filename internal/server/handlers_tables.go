package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rummi-tournament/internal/tournament"

	"github.com/gin-gonic/gin"
)

type tableURI struct {
	ID string `uri:"id" binding:"required"`
}

type createTableRequest struct {
	PlayerNames []string `json:"playerNames" binding:"required,min=2,max=4,dive,required,playername"`
}

var createTableMessages = bindMessages{
	"PlayerNames": {
		"required":   "Must have 2-4 players",
		"min":        "Must have 2-4 players",
		"max":        "Must have 2-4 players",
		"playername": "Player names must be 1-20 letters, digits or simple punctuation",
	},
}

type updateTableRequest struct {
	Players            []string `json:"players" binding:"omitempty,max=4"`
	CurrentPlayerIndex *int     `json:"currentPlayerIndex" binding:"omitempty,min=0,max=3"`
	Status             *string  `json:"status" binding:"omitempty,oneof=playing scoring finished"`
	// TimerStartedAt distinguishes an absent field from an explicit null.
	TimerStartedAt json.RawMessage `json:"timerStartedAt"`
}

var updateTableMessages = bindMessages{
	"Players": {
		"max": "Must have 2-4 players",
	},
	"CurrentPlayerIndex": {
		"min": "currentPlayerIndex out of range",
		"max": "currentPlayerIndex out of range",
	},
	"Status": {
		"oneof": "status must be playing, scoring or finished",
	},
}

type reorderPlayersRequest struct {
	Players []string `json:"players" binding:"required,min=2,max=4,dive,required"`
}

var reorderPlayersMessages = bindMessages{
	"Players": {
		"required": "players is required",
		"min":      "Must have 2-4 players",
		"max":      "Must have 2-4 players",
	},
}

func (s *Server) handleListTables(c *gin.Context) {
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTable, err)
		return
	}
	c.JSON(http.StatusOK, doc.Tables)
}

func (s *Server) handleCreateTable(c *gin.Context) {
	var req createTableRequest
	if !bindJSON(c, &req, createTableMessages, "Invalid table data") {
		return
	}
	names, err := normalizeNames(req.PlayerNames)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var (
		table   tournament.Table
		players []tournament.Player
	)
	_, err = s.store.Update(c.Request.Context(), func(doc *tournament.Document) error {
		created, err := tournament.CreateTable(doc, names)
		if err != nil {
			return err
		}
		table = created
		players = doc.Players
		return nil
	})
	if err != nil {
		s.respondError(c, opCreateTable, err)
		return
	}
	s.succeeded(opCreateTable)
	s.logger.InfoContext(c.Request.Context(), "table created", "table_id", table.ID, "players", len(table.Players))
	c.JSON(http.StatusCreated, gin.H{
		"table":   table,
		"players": players,
	})
}

func (s *Server) handleGetTable(c *gin.Context) {
	var uri tableURI
	if !bindURI(c, &uri) {
		return
	}
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTable, err)
		return
	}
	table, ok := doc.FindTable(uri.ID)
	if !ok {
		s.respondError(c, opGetTable, &tournament.NotFoundError{Kind: "table", ID: uri.ID})
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleTableTimer(c *gin.Context) {
	var uri tableURI
	if !bindURI(c, &uri) {
		return
	}
	doc, err := s.store.Load(c.Request.Context())
	if err != nil {
		s.respondError(c, opGetTable, err)
		return
	}
	table, ok := doc.FindTable(uri.ID)
	if !ok {
		s.respondError(c, opGetTable, &tournament.NotFoundError{Kind: "table", ID: uri.ID})
		return
	}
	c.JSON(http.StatusOK, tournament.ReadTimer(*table, s.cfg.TurnDuration(), s.store.Now()))
}

func (s *Server) handlePatchTable(c *gin.Context) {
	var req updateTableRequest
	if !bindJSON(c, &req, updateTableMessages, "Invalid table data") {
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	s.updateTable(c, opPatchTable, func(doc *tournament.Document, id string) (*tournament.Table, error) {
		if patch.Players != nil {
			if err := checkSeats(doc, patch.Players); err != nil {
				return nil, err
			}
		}
		return tournament.PatchTable(doc, id, patch)
	})
}

func (req updateTableRequest) toPatch() (tournament.TablePatch, error) {
	patch := tournament.TablePatch{
		Players:            req.Players,
		CurrentPlayerIndex: req.CurrentPlayerIndex,
	}
	if req.Status != nil {
		status := tournament.Status(*req.Status)
		patch.Status = &status
	}
	switch raw := string(req.TimerStartedAt); raw {
	case "":
	case "null":
		patch.ClearTimer = true
	default:
		started, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return tournament.TablePatch{}, &tournament.ValidationError{Message: "timerStartedAt must be epoch milliseconds or null"}
		}
		patch.TimerStartedAt = &started
	}
	return patch, nil
}

// checkSeats requires every seat to be a distinct registered player.
func checkSeats(doc *tournament.Document, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := doc.FindPlayer(id); !ok {
			return &tournament.ValidationError{Message: "unknown player " + id}
		}
		if _, dup := seen[id]; dup {
			return &tournament.ValidationError{Message: "player " + id + " is seated twice"}
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *Server) handleDeleteTable(c *gin.Context) {
	var uri tableURI
	if !bindURI(c, &uri) {
		return
	}
	_, err := s.store.Update(c.Request.Context(), func(doc *tournament.Document) error {
		tournament.DeleteTable(doc, uri.ID)
		return nil
	})
	if err != nil {
		s.respondError(c, opDeleteTable, err)
		return
	}
	s.succeeded(opDeleteTable)
	s.logger.InfoContext(c.Request.Context(), "table deleted", "table_id", uri.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleAdvanceTurn(c *gin.Context) {
	now := s.store.Now()
	s.updateTable(c, opAdvanceTurn, func(doc *tournament.Document, id string) (*tournament.Table, error) {
		return tournament.AdvanceTurn(doc, id, now)
	})
}

func (s *Server) handleStartTimer(c *gin.Context) {
	now := s.store.Now()
	s.updateTable(c, opStartTimer, func(doc *tournament.Document, id string) (*tournament.Table, error) {
		return tournament.StartTimer(doc, id, now)
	})
}

func (s *Server) handleBeginScoring(c *gin.Context) {
	s.updateTable(c, opBeginScoring, tournament.BeginScoring)
}

func (s *Server) handleCancelScoring(c *gin.Context) {
	s.updateTable(c, opCancelScoring, tournament.CancelScoring)
}

func (s *Server) handleReorderPlayers(c *gin.Context) {
	var req reorderPlayersRequest
	if !bindJSON(c, &req, reorderPlayersMessages, "Invalid player order") {
		return
	}
	s.updateTable(c, opReorderPlayers, func(doc *tournament.Document, id string) (*tournament.Table, error) {
		table, ok := doc.FindTable(id)
		if !ok {
			return nil, &tournament.NotFoundError{Kind: "table", ID: id}
		}
		if err := checkPermutation(table.Players, req.Players); err != nil {
			return nil, &tournament.ValidationError{Message: err.Error()}
		}
		return tournament.ReorderPlayers(doc, id, req.Players)
	})
}

// updateTable runs apply against today's document and responds with the
// resulting table.
func (s *Server) updateTable(c *gin.Context, op string, apply func(doc *tournament.Document, id string) (*tournament.Table, error)) {
	var uri tableURI
	if !bindURI(c, &uri) {
		return
	}
	var updated tournament.Table
	_, err := s.store.Update(c.Request.Context(), func(doc *tournament.Document) error {
		table, err := apply(doc, uri.ID)
		if err != nil {
			return err
		}
		updated = *table
		return nil
	})
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	s.succeeded(op)
	s.logger.DebugContext(c.Request.Context(), "table updated", "operation", op, "table_id", updated.ID)
	c.JSON(http.StatusOK, updated)
}
