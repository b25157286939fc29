package rarebird

import "github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ScoreResponse wraps a percentile result with its display palette.
type ScoreResponse struct {
	Result models.PercentileResult `json:"result"`
	Colors models.TierColors       `json:"colors"`
}

// TemporalScoreResponse is the multi-window comparison view.
type TemporalScoreResponse = models.TemporalResult
