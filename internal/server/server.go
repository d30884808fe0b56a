package server

import (
	"log/slog"
	"net/http"

	"rummi-tournament/internal/config"
	"rummi-tournament/internal/metrics"
	"rummi-tournament/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store   *store.Store
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	limiter *ipRateLimiter
}

func New(st *store.Store, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	registerValidators()
	return &Server{
		store:   st,
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		limiter: newIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
}

func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": s.store.BackendName()})
	})
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	router.GET("/tv", s.handleTV)

	api := router.Group("/api")
	write := s.rateLimit()

	api.GET("/tournament", s.handleGetTournament)
	api.POST("/tournament", write, s.handleMergeTournament)
	api.DELETE("/tournament", write, s.handleResetTournament)
	api.GET("/leaderboard", s.handleLeaderboard)

	api.GET("/tables", s.handleListTables)
	api.POST("/tables", write, s.handleCreateTable)
	api.GET("/tables/:id", s.handleGetTable)
	api.PUT("/tables/:id", write, s.handlePatchTable)
	api.DELETE("/tables/:id", write, s.handleDeleteTable)
	api.GET("/tables/:id/timer", s.handleTableTimer)
	api.POST("/tables/:id/timer", write, s.handleStartTimer)
	api.POST("/tables/:id/advance", write, s.handleAdvanceTurn)
	api.POST("/tables/:id/scoring", write, s.handleBeginScoring)
	api.DELETE("/tables/:id/scoring", write, s.handleCancelScoring)
	api.PUT("/tables/:id/players", write, s.handleReorderPlayers)

	api.POST("/rounds", write, s.handleCreateRound)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "not found")
	})
	return router
}
