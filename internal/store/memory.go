package store

import (
	"context"
	"sync"
	"time"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/internal/scope"
	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// MemoryStore is an in-memory PostStore used by unit tests and local
// development. It applies the same predicate semantics as the Postgres
// adapter.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []models.Post
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(posts ...models.Post) *MemoryStore {
	return &MemoryStore{posts: posts}
}

// Add appends posts to the store.
func (m *MemoryStore) Add(posts ...models.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, posts...)
}

// FetchFingerprints implements PostStore.
func (m *MemoryStore) FetchFingerprints(_ context.Context, pred scope.Predicate, since *time.Time) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var fingerprints []string
	for _, p := range m.posts {
		if !matches(p, pred) {
			continue
		}
		if since != nil && p.CreatedAt.Before(*since) {
			continue
		}
		fingerprints = append(fingerprints, p.ContentFingerprint)
	}
	return fingerprints, nil
}

// CountInScope implements PostStore.
func (m *MemoryStore) CountInScope(_ context.Context, pred scope.Predicate) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, p := range m.posts {
		if matches(p, pred) {
			total++
		}
	}
	return total, nil
}

// CountMatching implements PostStore.
func (m *MemoryStore) CountMatching(_ context.Context, pred scope.Predicate, fingerprint string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, p := range m.posts {
		if matches(p, pred) && p.ContentFingerprint == fingerprint {
			count++
		}
	}
	return count, nil
}

func matches(p models.Post, pred scope.Predicate) bool {
	if pred.City != nil && (p.ScopeCity == nil || *p.ScopeCity != *pred.City) {
		return false
	}
	if pred.State != nil && (p.ScopeState == nil || *p.ScopeState != *pred.State) {
		return false
	}
	if pred.Country != nil && (p.ScopeCountry == nil || *p.ScopeCountry != *pred.Country) {
		return false
	}
	return true
}
