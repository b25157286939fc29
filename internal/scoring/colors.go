package scoring

import "github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"

var tierPalette = map[models.Tier]models.TierColors{
	models.TierElite:   {Primary: "#FFD700", Secondary: "#FFF8DC", Glow: "#FFE55C"},
	models.TierRare:    {Primary: "#9B5DE5", Secondary: "#F3E8FF", Glow: "#C084FC"},
	models.TierUnique:  {Primary: "#00BBF9", Secondary: "#E0F7FF", Glow: "#67E8F9"},
	models.TierNotable: {Primary: "#00F5D4", Secondary: "#E6FFF9", Glow: "#5EEAD4"},
	models.TierCommon:  {Primary: "#94A3B8", Secondary: "#F1F5F9", Glow: "#CBD5E1"},
	models.TierPopular: {Primary: "#FB5607", Secondary: "#FFF0E6", Glow: "#FDBA74"},
}

// Colors returns the display palette for a tier. Unknown tiers get the
// common palette so clients always have something renderable.
func Colors(tier models.Tier) models.TierColors {
	if c, ok := tierPalette[tier]; ok {
		return c
	}
	return tierPalette[models.TierCommon]
}
