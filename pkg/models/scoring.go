package models

// Tier is a discrete rarity bucket. Ordered from rarest to most common:
// elite > rare > unique > notable > common > popular.
type Tier string

const (
	TierElite   Tier = "elite"
	TierRare    Tier = "rare"
	TierUnique  Tier = "unique"
	TierNotable Tier = "notable"
	TierCommon  Tier = "common"
	TierPopular Tier = "popular"
)

// PercentileResult is the calibrated rarity of a single action within its
// scope's live population.
type PercentileResult struct {
	Percentile  float64 `json:"percentile"`
	Tier        Tier    `json:"tier"`
	DisplayText string  `json:"display_text"`
	Badge       string  `json:"badge"`
	Message     string  `json:"message"`
	Comparison  string  `json:"comparison"`
}

// TierColors is the presentation palette for a tier. Purely cosmetic; the
// mobile and web clients render badges with it.
type TierColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Glow      string `json:"glow"`
}

// Trend classifies how an action's frequency is moving across windows.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// WindowResult is the rarity of an action within one lookback window.
// MatchCount excludes the post being scored itself.
type WindowResult struct {
	Uniqueness int `json:"uniqueness"`
	MatchCount int `json:"match_count"`
	TotalPosts int `json:"total_posts"`
}

// TemporalResult is the full multi-window comparison for one fingerprint.
// Built once per scoring request and never mutated or persisted.
type TemporalResult struct {
	Today     WindowResult `json:"today"`
	ThisWeek  WindowResult `json:"this_week"`
	ThisMonth WindowResult `json:"this_month"`
	AllTime   WindowResult `json:"all_time"`
	Trend     Trend        `json:"trend"`
	Insight   string       `json:"insight"`
}
