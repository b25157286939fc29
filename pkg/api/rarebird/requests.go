// Package rarebird defines the request and response types of the scoring
// service's HTTP API. The CRUD service and the web client are the consumers.
package rarebird

import "github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"

// ScoreRequest scores a single action against its scope's live population.
// Callers either pass the counts they already hold (match_count including the
// scored post, plus the scope total) or pass a fingerprint and let the
// service count live.
type ScoreRequest struct {
	MatchCount   int    `json:"match_count"`
	TotalInScope int    `json:"total_in_scope"`
	Fingerprint  string `json:"fingerprint,omitempty"`

	Scope    models.Scope    `json:"scope,omitempty"`
	Location models.Location `json:"location,omitempty"`
}

// TemporalScoreRequest asks for the multi-window comparison of a fingerprint.
type TemporalScoreRequest struct {
	Fingerprint string          `json:"fingerprint" binding:"required"`
	Scope       models.Scope    `json:"scope,omitempty"`
	Location    models.Location `json:"location,omitempty"`
}
