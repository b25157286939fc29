// Package testutil provides shared fixtures for scoring tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// PostFixtures builds posts for store and orchestrator tests.
type PostFixtures struct {
	Now time.Time
}

// NewPostFixtures anchors fixtures to a reference instant.
func NewPostFixtures(now time.Time) *PostFixtures {
	return &PostFixtures{Now: now}
}

// Post creates a world-scoped post with the given fingerprint and age.
func (f *PostFixtures) Post(fingerprint string, age time.Duration) models.Post {
	return models.Post{
		ID:                 uuid.NewString(),
		ContentFingerprint: fingerprint,
		CreatedAt:          f.Now.Add(-age),
	}
}

// LocatedPost creates a post with full location scope fields.
func (f *PostFixtures) LocatedPost(fingerprint, city, state, country string, age time.Duration) models.Post {
	p := f.Post(fingerprint, age)
	if city != "" {
		p.ScopeCity = &city
	}
	if state != "" {
		p.ScopeState = &state
	}
	if country != "" {
		p.ScopeCountry = &country
	}
	return p
}

// Repeat creates n identical-fingerprint posts of the same age.
func (f *PostFixtures) Repeat(fingerprint string, n int, age time.Duration) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, f.Post(fingerprint, age))
	}
	return posts
}
