package temporal

import (
	"fmt"
	"math"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// insightRule pairs a predicate with its message template. Rules are
// evaluated in declaration order and the first match wins: several predicates
// can match the same result, and the order is what breaks the tie (the
// first-ever rule must beat the consistently-unique rule, for instance).
type insightRule struct {
	name    string
	matches func(r models.TemporalResult) bool
	render  func(r models.TemporalResult) string
}

var insightRules = []insightRule{
	{
		name: "first_ever",
		matches: func(r models.TemporalResult) bool {
			return r.Today.Uniqueness == 100 && r.AllTime.Uniqueness == 100
		},
		render: func(r models.TemporalResult) string {
			return "You're the first person ever to do this. A true original! 🏆"
		},
	},
	{
		name: "trendsetter",
		matches: func(r models.TemporalResult) bool {
			return r.Today.Uniqueness >= 90 && r.AllTime.Uniqueness <= 50
		},
		render: func(r models.TemporalResult) string {
			return "Trendsetter alert: this used to be everywhere, but today it's all yours."
		},
	},
	{
		name: "late_to_the_party",
		matches: func(r models.TemporalResult) bool {
			return r.Today.Uniqueness <= 50 && r.AllTime.Uniqueness >= 90
		},
		render: func(r models.TemporalResult) string {
			return "Late to the party: this was a rare find once, but today everyone's on it."
		},
	},
	{
		name: "rising",
		matches: func(r models.TemporalResult) bool {
			return r.Trend == models.TrendRising
		},
		render: func(r models.TemporalResult) string {
			people := r.AllTime.MatchCount + 1
			return fmt.Sprintf("This is catching on! %d people (%d%% of all posts) have done it, and it's trending up.",
				people, shareOfTotal(people, r.AllTime.TotalPosts))
		},
	},
	{
		name: "falling",
		matches: func(r models.TemporalResult) bool {
			return r.Trend == models.TrendFalling
		},
		render: func(r models.TemporalResult) string {
			return "This used to be common, but it's fading out. You're keeping it alive!"
		},
	},
	{
		name: "consistently_unique",
		matches: func(r models.TemporalResult) bool {
			return r.Today.Uniqueness >= 80 && r.AllTime.Uniqueness >= 80
		},
		render: func(r models.TemporalResult) string {
			return "Consistently unique: rare today, rare always. You march to your own beat."
		},
	},
	{
		name: "timeless_classic",
		matches: func(r models.TemporalResult) bool {
			return r.Today.Uniqueness <= 30 && r.AllTime.Uniqueness <= 30
		},
		render: func(r models.TemporalResult) string {
			people := r.AllTime.MatchCount + 1
			return fmt.Sprintf("A timeless classic: %d people (%d%% of all posts) share this one with you.",
				people, shareOfTotal(people, r.AllTime.TotalPosts))
		},
	},
	{
		name:    "default",
		matches: func(r models.TemporalResult) bool { return true },
		render: func(r models.TemporalResult) string {
			return fmt.Sprintf("Your action is %d%% unique today. Keep being you!", r.Today.Uniqueness)
		},
	},
}

// generateInsight walks the cascade in order and renders the first match.
func generateInsight(r models.TemporalResult) string {
	for _, rule := range insightRules {
		if rule.matches(r) {
			return rule.render(r)
		}
	}
	// Unreachable: the default rule always matches.
	return ""
}

// selectedInsightRule reports which rule fires for a result. Exposed inside
// the package so tests can assert on branch selection rather than copy.
func selectedInsightRule(r models.TemporalResult) string {
	for _, rule := range insightRules {
		if rule.matches(r) {
			return rule.name
		}
	}
	return ""
}

// shareOfTotal renders people as a rounded percentage of total, with the
// zero-denominator guard collapsing to 0%.
func shareOfTotal(people, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(people) / float64(total) * 100))
}
