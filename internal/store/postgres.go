package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/metrics"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/database"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/logging"
)

// PostgresStore reads the posts table over a shared connection pool.
type PostgresStore struct {
	db      database.PostgresConn
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewPostgresStore creates a store backed by the shared posts database.
// metrics may be nil (tests, local tooling); queries then go unobserved.
func NewPostgresStore(db database.PostgresConn, logger logging.Logger, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, logger: logger, metrics: m}
}

// FetchFingerprints bulk-fetches fingerprints rather than a pre-aggregated
// count: the rarity formula needs the population and the match count from one
// consistent snapshot.
func (s *PostgresStore) FetchFingerprints(ctx context.Context, pred scope.Predicate, since *time.Time) (fingerprints []string, err error) {
	defer s.observe("fetch_fingerprints", time.Now(), &err)

	query := `SELECT content_fingerprint FROM posts WHERE 1=1`
	args := []interface{}{}

	query, args = appendScopeFilter(query, args, pred)

	if since != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", len(args)+1)
		args = append(args, *since)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch fingerprints: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			s.logger.WithError(err).Error("Failed to scan post fingerprint")
			continue
		}
		fingerprints = append(fingerprints, fp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetch fingerprints: %v", ErrStoreUnavailable, err)
	}

	return fingerprints, nil
}

// CountInScope returns the live population size for a predicate.
func (s *PostgresStore) CountInScope(ctx context.Context, pred scope.Predicate) (total int, err error) {
	defer s.observe("count_in_scope", time.Now(), &err)

	query := `SELECT COUNT(*) FROM posts WHERE 1=1`
	args := []interface{}{}
	query, args = appendScopeFilter(query, args, pred)

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: count in scope: %v", ErrStoreUnavailable, err)
	}
	return total, nil
}

// CountMatching returns how many posts in scope share a fingerprint.
func (s *PostgresStore) CountMatching(ctx context.Context, pred scope.Predicate, fingerprint string) (matches int, err error) {
	defer s.observe("count_matching", time.Now(), &err)

	query := `SELECT COUNT(*) FROM posts WHERE content_fingerprint = $1`
	args := []interface{}{fingerprint}
	query, args = appendScopeFilter(query, args, pred)

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&matches); err != nil {
		return 0, fmt.Errorf("%w: count matching: %v", ErrStoreUnavailable, err)
	}
	return matches, nil
}

// observe records per-query database metrics and refreshes the pool gauge.
func (s *PostgresStore) observe(queryType string, start time.Time, err *error) {
	if s.metrics == nil || s.metrics.DBQueries == nil {
		return
	}
	status := "success"
	if *err != nil {
		status = "error"
	}
	s.metrics.DBQueries.WithLabelValues(queryType, status).Inc()
	s.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
	s.metrics.DBConnections.WithLabelValues("posts").Set(float64(s.db.Stats().OpenConnections))
}

// appendScopeFilter extends a query with the location filter a predicate
// resolved to. An unfiltered predicate appends nothing.
func appendScopeFilter(query string, args []interface{}, pred scope.Predicate) (string, []interface{}) {
	if pred.City != nil {
		query += fmt.Sprintf(" AND scope_city = $%d", len(args)+1)
		args = append(args, *pred.City)
	}
	if pred.State != nil {
		query += fmt.Sprintf(" AND scope_state = $%d", len(args)+1)
		args = append(args, *pred.State)
	}
	if pred.Country != nil {
		query += fmt.Sprintf(" AND scope_country = $%d", len(args)+1)
		args = append(args, *pred.Country)
	}
	return query, args
}
