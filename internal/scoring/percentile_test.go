package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

func TestCalculatePercentile_SmallPopulation(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		total       int
		wantTier    models.Tier
		wantDisplay string
	}{
		{"only poster in scope", 1, 1, models.TierElite, "Only you!"},
		{"single match tiny population", 1, 9, models.TierElite, "Only you!"},
		{"one of five is elite only-you", 1, 5, models.TierElite, "Only you!"},
		{"two of ten is not small population", 2, 10, models.TierNotable, "Top 20%"},
		{"forty percent tiers notable not unique", 2, 5, models.TierNotable, "2 of 5"},
		{"sixty percent stays common", 3, 5, models.TierCommon, "3 of 5"},
		{"above sixty percent is popular", 4, 5, models.TierPopular, "4 of 5"},
		{"count of one beats the twenty percent bucket", 1, 5, models.TierElite, "Only you!"},
		{"two of nine is notable", 2, 9, models.TierNotable, "2 of 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePercentile(tt.count, tt.total)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantDisplay, got.DisplayText)
			assert.GreaterOrEqual(t, got.Percentile, 0.0)
			assert.LessOrEqual(t, got.Percentile, 100.0)
		})
	}
}

func TestCalculatePercentile_SmallPopulationUniqueBucket(t *testing.T) {
	// 20% with a count above one: the absolute-count rule keeps it out of
	// elite but the percentile rule puts it in unique.
	got := CalculatePercentile(2, 10)
	assert.NotEqual(t, models.TierElite, got.Tier)
}

func TestCalculatePercentile_NormalPopulation(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		total       int
		wantTier    models.Tier
		wantDisplay string
	}{
		{"sub 0.1 percent is elite only-you", 1, 2000, models.TierElite, "Only you!"},
		{"0.1 percent is elite top fraction", 1, 1000, models.TierElite, "Top 0.1%"},
		{"half percent renders one decimal", 5, 1000, models.TierElite, "Top 0.5%"},
		{"two percent is rare", 20, 1000, models.TierRare, "Top 2%"},
		{"seven percent is unique", 70, 1000, models.TierUnique, "Top 7%"},
		{"fifteen percent is notable", 150, 1000, models.TierNotable, "Top 15%"},
		{"forty percent is common", 400, 1000, models.TierCommon, "Top 40%"},
		{"sixty percent is popular", 600, 1000, models.TierPopular, "Join 600 others"},
		{"exactly fifty percent is popular", 500, 1000, models.TierPopular, "Join 500 others"},
		{"one percent boundary is rare", 10, 1000, models.TierRare, "Top 1%"},
		{"five percent boundary is unique", 50, 1000, models.TierUnique, "Top 5%"},
		{"ten percent boundary is notable", 100, 1000, models.TierNotable, "Top 10%"},
		{"twenty five percent boundary is common", 250, 1000, models.TierCommon, "Top 25%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePercentile(tt.count, tt.total)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantDisplay, got.DisplayText)
		})
	}
}

func TestCalculatePercentile_Comparison(t *testing.T) {
	got := CalculatePercentile(1, 1)
	assert.Equal(t, "Only you out of 1", got.Comparison)

	got = CalculatePercentile(1, 1000)
	assert.Equal(t, "1 of 1000", got.Comparison)

	got = CalculatePercentile(600, 1000)
	assert.Equal(t, "600 of 1000", got.Comparison)

	// The sub-0.1% shortcut also claims "only you" when the count really is one.
	got = CalculatePercentile(1, 5000)
	assert.Equal(t, "Only you out of 5000", got.Comparison)
}

func TestCalculatePercentile_PercentileRange(t *testing.T) {
	for _, total := range []int{1, 3, 9, 10, 50, 1000} {
		for count := 1; count <= total; count++ {
			got := CalculatePercentile(count, total)
			assert.GreaterOrEqual(t, got.Percentile, 0.0, fmt.Sprintf("count=%d total=%d", count, total))
			assert.LessOrEqual(t, got.Percentile, 100.0, fmt.Sprintf("count=%d total=%d", count, total))
			assert.NotEmpty(t, got.Tier)
			assert.NotEmpty(t, got.DisplayText)
			assert.NotEmpty(t, got.Badge)
		}
	}
}

func TestScoreOnce_DelegatesToCalculator(t *testing.T) {
	assert.Equal(t, CalculatePercentile(3, 40), ScoreOnce(3, 40))
}

func TestColors_Deterministic(t *testing.T) {
	tiers := []models.Tier{
		models.TierElite, models.TierRare, models.TierUnique,
		models.TierNotable, models.TierCommon, models.TierPopular,
	}
	seen := map[string]bool{}
	for _, tier := range tiers {
		c := Colors(tier)
		assert.NotEmpty(t, c.Primary)
		assert.NotEmpty(t, c.Secondary)
		assert.NotEmpty(t, c.Glow)
		assert.False(t, seen[c.Primary], "palette should differ per tier")
		seen[c.Primary] = true
		assert.Equal(t, c, Colors(tier))
	}

	// Unknown tiers fall back to the common palette.
	assert.Equal(t, Colors(models.TierCommon), Colors(models.Tier("mystery")))
}
