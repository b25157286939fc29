package models

import "time"

// Scope is the geographic granularity over which population counts are computed.
type Scope string

const (
	ScopeCity    Scope = "city"
	ScopeState   Scope = "state"
	ScopeCountry Scope = "country"
	ScopeWorld   Scope = "world"
)

// Location holds the detected location of a poster. Any field may be empty
// when upstream location detection failed or was declined.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// ScopeSelector pairs a requested scope with the location it should be
// evaluated against.
type ScopeSelector struct {
	Scope    Scope    `json:"scope"`
	Location Location `json:"location"`
}

// Post is a row from the shared posts store. The scoring service only ever
// reads posts; creation and moderation live in other services.
type Post struct {
	ID                 string    `json:"id"`
	ContentFingerprint string    `json:"content_fingerprint"`
	ScopeCity          *string   `json:"scope_city,omitempty"`
	ScopeState         *string   `json:"scope_state,omitempty"`
	ScopeCountry       *string   `json:"scope_country,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
