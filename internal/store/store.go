// Package store adapts the shared posts table for the scoring engine. The
// engine only ever reads fingerprints and counts; post creation lives in the
// CRUD service.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
)

// ErrStoreUnavailable wraps query failures and timeouts. The orchestrator
// converts it to the zero-population fallback; it is never surfaced to
// callers.
var ErrStoreUnavailable = errors.New("post store unavailable")

// PostStore is the read capability the scoring engine depends on. The
// orchestrator receives it by injection so tests can run store-free.
type PostStore interface {
	// FetchFingerprints returns the fingerprint of every post matching the
	// predicate with created_at >= since. A nil since means unbounded
	// (the all-time window).
	FetchFingerprints(ctx context.Context, pred scope.Predicate, since *time.Time) ([]string, error)

	// CountInScope returns the live total population for a predicate.
	CountInScope(ctx context.Context, pred scope.Predicate) (int, error)

	// CountMatching returns how many posts in scope carry the fingerprint,
	// including the post being scored if it is already persisted.
	CountMatching(ctx context.Context, pred scope.Predicate, fingerprint string) (int, error)
}
