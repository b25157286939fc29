// Package scoring converts raw match counts into calibrated rarity
// percentiles with human-readable tiers. It is pure computation: no I/O, no
// clock, no store access, which keeps it trivially testable and callable from
// both the post-creation path and the temporal orchestrator.
package scoring

import (
	"fmt"
	"math"

	"github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"
)

// Below this population size percentiles are statistically unstable, so
// tiering falls back to absolute counts.
const smallPopulation = 10

// CalculatePercentile scores how rare an action is within its scope.
// peopleWhoDidThis and totalPostsInScope must both be >= 1; a zero population
// has no defined percentile and callers guard it before calling (the
// temporal orchestrator returns its first-ever default instead).
func CalculatePercentile(peopleWhoDidThis, totalPostsInScope int) models.PercentileResult {
	percentile := float64(peopleWhoDidThis) / float64(totalPostsInScope) * 100

	if totalPostsInScope < smallPopulation {
		return smallPopulationResult(peopleWhoDidThis, totalPostsInScope, percentile)
	}

	result := models.PercentileResult{
		Percentile: percentile,
		Comparison: fmt.Sprintf("%d of %d", peopleWhoDidThis, totalPostsInScope),
	}

	switch {
	case percentile < 0.1:
		// Effectively nobody else, even in a large population.
		result.Tier = models.TierElite
		result.DisplayText = "Only you!"
		result.Badge = badgeFor(models.TierElite)
		result.Message = "You're literally one of a kind"
		if peopleWhoDidThis == 1 {
			result.Comparison = fmt.Sprintf("Only you out of %d", totalPostsInScope)
		}
	case percentile < 1:
		result.Tier = models.TierElite
		result.DisplayText = fmt.Sprintf("Top %s%%", formatPercentile(percentile))
		result.Badge = badgeFor(models.TierElite)
		result.Message = "You're in the rarest of company"
	case percentile < 5:
		result.Tier = models.TierRare
		result.DisplayText = fmt.Sprintf("Top %s%%", formatPercentile(percentile))
		result.Badge = badgeFor(models.TierRare)
		result.Message = "Hardly anyone else did this"
	case percentile < 10:
		result.Tier = models.TierUnique
		result.DisplayText = fmt.Sprintf("Top %s%%", formatPercentile(percentile))
		result.Badge = badgeFor(models.TierUnique)
		result.Message = "You walk your own path"
	case percentile < 25:
		result.Tier = models.TierNotable
		result.DisplayText = fmt.Sprintf("Top %s%%", formatPercentile(percentile))
		result.Badge = badgeFor(models.TierNotable)
		result.Message = "Not many can say the same"
	case percentile < 50:
		result.Tier = models.TierCommon
		result.DisplayText = fmt.Sprintf("Top %s%%", formatPercentile(percentile))
		result.Badge = badgeFor(models.TierCommon)
		result.Message = "You're in good company"
	default:
		result.Tier = models.TierPopular
		result.DisplayText = fmt.Sprintf("Join %d others", peopleWhoDidThis)
		result.Badge = badgeFor(models.TierPopular)
		result.Message = "Everyone's doing it today"
	}

	return result
}

// ScoreOnce is the post-creation entry point. The caller passes the live
// match count (including the just-created post) and the scope's live total.
func ScoreOnce(matchCountIncludingSelf, totalInScope int) models.PercentileResult {
	return CalculatePercentile(matchCountIncludingSelf, totalInScope)
}

// smallPopulationResult tiers by absolute count rather than percentile.
func smallPopulationResult(count, total int, percentile float64) models.PercentileResult {
	result := models.PercentileResult{
		Percentile: percentile,
		Comparison: fmt.Sprintf("%d of %d", count, total),
	}

	if count == 1 {
		result.Tier = models.TierElite
		result.DisplayText = "Only you!"
		result.Badge = badgeFor(models.TierElite)
		result.Message = "You're literally one of a kind"
		result.Comparison = fmt.Sprintf("Only you out of %d", total)
		return result
	}

	result.DisplayText = fmt.Sprintf("%d of %d", count, total)
	switch {
	case percentile <= 20:
		result.Tier = models.TierUnique
		result.Message = "You walk your own path"
	case percentile <= 40:
		result.Tier = models.TierNotable
		result.Message = "Not many can say the same"
	case percentile <= 60:
		result.Tier = models.TierCommon
		result.Message = "You're in good company"
	default:
		result.Tier = models.TierPopular
		result.Message = "Everyone's doing it today"
	}
	result.Badge = badgeFor(result.Tier)

	return result
}

// formatPercentile renders sub-1% values to one decimal place and everything
// else as a rounded integer, matching the product's display rules.
func formatPercentile(percentile float64) string {
	if percentile < 1 {
		return fmt.Sprintf("%.1f", percentile)
	}
	return fmt.Sprintf("%d", int(math.Round(percentile)))
}

func badgeFor(tier models.Tier) string {
	switch tier {
	case models.TierElite:
		return "🦄"
	case models.TierRare:
		return "💎"
	case models.TierUnique:
		return "🌟"
	case models.TierNotable:
		return "⭐"
	case models.TierCommon:
		return "👥"
	default:
		return "🔥"
	}
}
