package temporal

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/metrics"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/store"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/logging"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// Orchestrator fans a scoring request out over the four canonical windows,
// derives the trend, and renders the insight. It is stateless per request;
// the injected store is the only dependency with I/O.
type Orchestrator struct {
	store         store.PostStore
	logger        logging.Logger
	metrics       *metrics.Metrics
	settleDelay   time.Duration
	windowTimeout time.Duration
	now           func() time.Time
}

// Config configures an Orchestrator.
type Config struct {
	Store   store.PostStore
	Logger  logging.Logger
	Metrics *metrics.Metrics

	// SettleDelay tolerates read-after-write lag in the store: the scored
	// post must already be visible in the population before the windows are
	// queried, since the rarity formula subtracts self from the match count.
	SettleDelay time.Duration

	// WindowTimeout bounds each window query. A window that misses it
	// degrades to the zero-population default.
	WindowTimeout time.Duration

	// Now is the clock; injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewOrchestrator creates an orchestrator with sane defaults.
func NewOrchestrator(cfg Config) *Orchestrator {
	timeout := cfg.WindowTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		store:         cfg.Store,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		settleDelay:   cfg.SettleDelay,
		windowTimeout: timeout,
		now:           now,
	}
}

// ScoreTemporal is the service entry point for the "how has this changed over
// time" view.
func (o *Orchestrator) ScoreTemporal(ctx context.Context, fingerprint string, sel models.ScopeSelector) models.TemporalResult {
	return o.ComputeTemporalUniqueness(ctx, fingerprint, sel)
}

// ComputeTemporalUniqueness scores a fingerprint across all four windows.
// It never fails: a window whose query errors or times out degrades to the
// zero-population default so partial results still yield a usable trend.
func (o *Orchestrator) ComputeTemporalUniqueness(ctx context.Context, fingerprint string, sel models.ScopeSelector) models.TemporalResult {
	pred := scope.ResolvePredicate(sel)

	if o.settleDelay > 0 {
		select {
		case <-time.After(o.settleDelay):
		case <-ctx.Done():
		}
	}

	windows := PlanWindows(o.now())
	ordered := []Window{windows.Today, windows.ThisWeek, windows.ThisMonth, windows.AllTime}

	// The four queries are independent; issue them concurrently.
	results := make([]models.WindowResult, len(ordered))
	var wg sync.WaitGroup
	for i, w := range ordered {
		wg.Add(1)
		go func(i int, w Window) {
			defer wg.Done()
			results[i] = o.scoreWindow(ctx, pred, fingerprint, w)
		}(i, w)
	}
	wg.Wait()

	result := models.TemporalResult{
		Today:     results[0],
		ThisWeek:  results[1],
		ThisMonth: results[2],
		AllTime:   results[3],
	}
	result.Trend = classifyTrend(result.Today.MatchCount, result.ThisWeek.MatchCount, result.ThisMonth.MatchCount)
	result.Insight = generateInsight(result)

	return result
}

// scoreWindow bulk-fetches the window's population and applies the rarity
// formula. MatchCount excludes the scored post itself, which is assumed to be
// persisted and therefore present in the fetch.
func (o *Orchestrator) scoreWindow(ctx context.Context, pred scope.Predicate, fingerprint string, w Window) models.WindowResult {
	start := time.Now()
	queryCtx, cancel := context.WithTimeout(ctx, o.windowTimeout)
	defer cancel()

	fingerprints, err := o.store.FetchFingerprints(queryCtx, pred, w.LowerBound)
	if o.metrics != nil {
		o.metrics.WindowQueryDuration.WithLabelValues(w.Label).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		// Fail open: a dead store window is treated as "no data" rather than
		// aborting the whole computation.
		o.logger.WithError(err).WithFields(logging.Fields{
			"window":      w.Label,
			"fingerprint": fingerprint,
		}).Warn("Window query failed, degrading to zero-population default")
		if o.metrics != nil {
			o.metrics.StoreFallbacks.WithLabelValues(w.Label).Inc()
		}
		return models.WindowResult{Uniqueness: 100}
	}

	totalPosts := len(fingerprints)
	if totalPosts == 0 {
		// First-ever action is maximally unique by definition.
		return models.WindowResult{Uniqueness: 100}
	}

	totalMatches := 0
	for _, fp := range fingerprints {
		if fp == fingerprint {
			totalMatches++
		}
	}
	matchCount := totalMatches - 1
	if matchCount < 0 {
		matchCount = 0
	}

	uniqueness := 100
	if totalPosts > 1 {
		uniqueness = int(math.Round(float64(totalPosts-matchCount) / float64(totalPosts) * 100))
	}

	return models.WindowResult{
		Uniqueness: uniqueness,
		MatchCount: matchCount,
		TotalPosts: totalPosts,
	}
}
