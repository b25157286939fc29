package temporal

import "github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"

// Trend thresholds. Ordering matters: 0.5 < 1 < 1.5 keeps the
// rising/falling bands disjoint with a stable band between them.
const (
	risingTodayFactor  = 1.5
	risingWeekFactor   = 1.3
	fallingTodayFactor = 0.5
	fallingWeekFactor  = 0.7
)

// classifyTrend compares per-day match rates across windows. The today
// window is already a daily rate; week and month are averaged down.
// When monthRate is zero any positive recent activity reads as rising:
// activity after total silence is a rising signal.
func classifyTrend(todayMatches, weekMatches, monthMatches int) models.Trend {
	todayRate := float64(todayMatches)
	weekRate := float64(weekMatches) / 7
	monthRate := float64(monthMatches) / 30

	switch {
	case todayRate > monthRate*risingTodayFactor || weekRate > monthRate*risingWeekFactor:
		return models.TrendRising
	case todayRate < monthRate*fallingTodayFactor || weekRate < monthRate*fallingWeekFactor:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}
