package server

import (
	"errors"
	"net/http"

	"rummi-tournament/internal/tournament"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
	})
}

// respondError maps an operation error onto a status and JSON body and counts
// the failure against op.
func (s *Server) respondError(c *gin.Context, op string, err error) {
	var (
		validation *tournament.ValidationError
		notFound   *tournament.NotFoundError
		storage    *tournament.StorageError
	)
	switch {
	case errors.As(err, &validation):
		s.metrics.Operation(op, "invalid")
		writeError(c, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		s.metrics.Operation(op, "not_found")
		message := "Not found"
		if notFound.Kind == "table" {
			message = "Table not found"
		}
		writeError(c, http.StatusNotFound, message)
	case errors.As(err, &storage):
		s.metrics.Operation(op, "storage_error")
		s.logger.ErrorContext(c.Request.Context(), "store failure", "operation", op, "error", err)
		writeError(c, http.StatusInternalServerError, "Tournament storage unavailable")
	default:
		s.metrics.Operation(op, "error")
		s.logger.ErrorContext(c.Request.Context(), "operation failed", "operation", op, "error", err)
		writeError(c, http.StatusInternalServerError, "Failed to "+describe(op))
	}
}

func (s *Server) succeeded(op string) {
	s.metrics.Operation(op, "ok")
}

func describe(op string) string {
	switch op {
	case opGetTournament:
		return "fetch tournament data"
	case opMergeTournament:
		return "save tournament data"
	case opResetTournament:
		return "reset tournament"
	case opCreateTable:
		return "create table"
	case opDeleteTable:
		return "delete table"
	case opCreateRound:
		return "create round"
	default:
		return "update table"
	}
}

const (
	opGetTournament   = "get_tournament"
	opMergeTournament = "merge_tournament"
	opResetTournament = "reset_tournament"
	opCreateTable     = "create_table"
	opGetTable        = "get_table"
	opPatchTable      = "patch_table"
	opDeleteTable     = "delete_table"
	opAdvanceTurn     = "advance_turn"
	opStartTimer      = "start_timer"
	opBeginScoring    = "begin_scoring"
	opCancelScoring   = "cancel_scoring"
	opReorderPlayers  = "reorder_players"
	opCreateRound     = "create_round"
)
