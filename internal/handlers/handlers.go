// Package handlers is the HTTP adapter over the scoring engine. It owns
// request parsing and the zero-population guard; all scoring math lives in
// internal/scoring and internal/temporal.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/metrics"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scoring"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/store"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/temporal"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/api/rarebird"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/logging"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/middleware"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// Handlers holds the scoring endpoints' dependencies.
type Handlers struct {
	store        store.PostStore
	orchestrator *temporal.Orchestrator
	logger       logging.Logger
	metrics      *metrics.Metrics
}

// New creates the handler set with its dependencies injected.
func New(s store.PostStore, o *temporal.Orchestrator, logger logging.Logger, m *metrics.Metrics) *Handlers {
	return &Handlers{store: s, orchestrator: o, logger: logger, metrics: m}
}

// ScoreOnce scores a freshly created post against its scope's live
// population. POST /v1/score
func (h *Handlers) ScoreOnce(c *gin.Context) {
	start := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.ScoreDuration.WithLabelValues("score_once").Observe(time.Since(start).Seconds())
		}
	}()
	h.countRequest("score_once", "requested")

	var req rarebird.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countRequest("score_once", "error")
		c.JSON(http.StatusBadRequest, rarebird.ErrorResponse{Error: "Invalid request body"})
		return
	}

	matchCount := req.MatchCount
	total := req.TotalInScope

	// A fingerprint means the caller wants us to count live instead of
	// passing counts it already holds.
	if req.Fingerprint != "" {
		pred := scope.ResolvePredicate(models.ScopeSelector{Scope: req.Scope, Location: req.Location})

		var err error
		total, err = h.store.CountInScope(c.Request.Context(), pred)
		if err == nil {
			matchCount, err = h.store.CountMatching(c.Request.Context(), pred, req.Fingerprint)
		}
		if err != nil {
			// Fail open like the temporal windows: a dead store scores the
			// post as the first of its kind rather than erroring.
			middleware.GetContextLogger(c, h.logger).WithError(err).
				WithField("fingerprint", req.Fingerprint).
				Warn("Live count failed, scoring as first post")
			h.countRequest("score_once", "fallback")
			matchCount, total = 1, 1
		}
	}

	// Zero-population guard: the calculator's domain starts at total >= 1.
	// A fresh scope means the scored post is the first one.
	if total < 1 {
		matchCount, total = 1, 1
	}
	if matchCount < 1 {
		// The scored post is always part of the population it is scored in.
		matchCount = 1
	}

	result := scoring.ScoreOnce(matchCount, total)
	h.countRequest("score_once", "success")
	c.JSON(http.StatusOK, rarebird.ScoreResponse{
		Result: result,
		Colors: scoring.Colors(result.Tier),
	})
}

// ScoreTemporal returns the four-window comparison for a fingerprint.
// POST /v1/score/temporal
func (h *Handlers) ScoreTemporal(c *gin.Context) {
	start := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.ScoreDuration.WithLabelValues("score_temporal").Observe(time.Since(start).Seconds())
		}
	}()
	h.countRequest("score_temporal", "requested")

	var req rarebird.TemporalScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.countRequest("score_temporal", "error")
		c.JSON(http.StatusBadRequest, rarebird.ErrorResponse{Error: "fingerprint is required"})
		return
	}

	sel := models.ScopeSelector{Scope: req.Scope, Location: req.Location}
	if sel.Scope == "" {
		sel.Scope = models.ScopeWorld
	}

	result := h.orchestrator.ScoreTemporal(c.Request.Context(), req.Fingerprint, sel)
	h.countRequest("score_temporal", "success")
	c.JSON(http.StatusOK, result)
}

func (h *Handlers) countRequest(operation, status string) {
	if h.metrics != nil {
		h.metrics.ScoringRequests.WithLabelValues(operation, status).Inc()
	}
}
