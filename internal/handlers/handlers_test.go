package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/store"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/temporal"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/api/rarebird"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/logging"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/middleware"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/testutil"
)

func setupRouter(s store.PostStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logging.NewNopLogger()
	o := temporal.NewOrchestrator(temporal.Config{Store: s, Logger: logger})
	h := New(s, o, logger, nil)

	r := gin.New()
	r.POST("/v1/score", h.ScoreOnce)
	r.POST("/v1/score/temporal", h.ScoreTemporal)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScoreOnce_WithCounts(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := doJSON(t, r, "/v1/score", rarebird.ScoreRequest{MatchCount: 600, TotalInScope: 1000})
	require.Equal(t, http.StatusOK, w.Code)

	var resp rarebird.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.TierPopular, resp.Result.Tier)
	assert.Equal(t, "Join 600 others", resp.Result.DisplayText)
	assert.NotEmpty(t, resp.Colors.Primary)
}

func TestScoreOnce_ZeroPopulationGuard(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := doJSON(t, r, "/v1/score", rarebird.ScoreRequest{MatchCount: 0, TotalInScope: 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp rarebird.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.TierElite, resp.Result.Tier)
	assert.Equal(t, "Only you!", resp.Result.DisplayText)
}

func TestScoreOnce_LiveCountsFromStore(t *testing.T) {
	fixtures := testutil.NewPostFixtures(time.Now())
	s := store.NewMemoryStore(fixtures.Repeat("drank-coffee", 12, time.Hour)...)
	s.Add(fixtures.Repeat("walked-dog", 8, time.Hour)...)
	r := setupRouter(s)

	w := doJSON(t, r, "/v1/score", rarebird.ScoreRequest{
		Fingerprint: "drank-coffee",
		Scope:       models.ScopeWorld,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp rarebird.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 12 of 20: 60% -> popular.
	assert.Equal(t, models.TierPopular, resp.Result.Tier)
	assert.Equal(t, "12 of 20", resp.Result.Comparison)
}

func TestScoreOnce_StoreFailureFailsOpen(t *testing.T) {
	r := setupRouter(unavailableStore{})

	w := doJSON(t, r, "/v1/score", rarebird.ScoreRequest{Fingerprint: "drank-coffee"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp rarebird.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.TierElite, resp.Result.Tier)
}

func TestScoreOnce_StoreFailureLogsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	s := unavailableStore{}
	o := temporal.NewOrchestrator(temporal.Config{Store: s, Logger: logging.NewNopLogger()})
	h := New(s, o, logger, nil)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.POST("/v1/score", h.ScoreOnce)

	w := doJSON(t, r, "/v1/score", rarebird.ScoreRequest{Fingerprint: "drank-coffee"})
	require.Equal(t, http.StatusOK, w.Code)

	// The fallback warning carries the request context, not just the error.
	logged := buf.String()
	assert.Contains(t, logged, `"path":"/v1/score"`)
	assert.Contains(t, logged, `"fingerprint":"drank-coffee"`)
	assert.Contains(t, logged, `"request_id"`)
}

func TestScoreOnce_RejectsMalformedBody(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	req := httptest.NewRequest("POST", "/v1/score", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreTemporal_EmptyStore(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := doJSON(t, r, "/v1/score/temporal", rarebird.TemporalScoreRequest{Fingerprint: "walked-on-stilts"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TemporalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Today.Uniqueness)
	assert.Equal(t, 100, resp.AllTime.Uniqueness)
	assert.Equal(t, models.TrendStable, resp.Trend)
	assert.NotEmpty(t, resp.Insight)
}

func TestScoreTemporal_RequiresFingerprint(t *testing.T) {
	r := setupRouter(store.NewMemoryStore())

	w := doJSON(t, r, "/v1/score/temporal", map[string]string{"scope": "world"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreTemporal_DefaultsToWorldScope(t *testing.T) {
	fixtures := testutil.NewPostFixtures(time.Now())
	s := store.NewMemoryStore(
		fixtures.LocatedPost("ran-5k", "Austin", "Texas", "USA", time.Hour),
		fixtures.Post("ran-5k", time.Hour),
	)
	r := setupRouter(s)

	w := doJSON(t, r, "/v1/score/temporal", map[string]string{"fingerprint": "ran-5k"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TemporalResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Today.TotalPosts)
}

// unavailableStore simulates the shared posts database being down.
type unavailableStore struct{}

func (unavailableStore) FetchFingerprints(context.Context, scope.Predicate, *time.Time) ([]string, error) {
	return nil, store.ErrStoreUnavailable
}

func (unavailableStore) CountInScope(context.Context, scope.Predicate) (int, error) {
	return 0, store.ErrStoreUnavailable
}

func (unavailableStore) CountMatching(context.Context, scope.Predicate, string) (int, error) {
	return 0, store.ErrStoreUnavailable
}
