package insights

import (
	"fmt"
	"strings"

	"rift-scout/internal/constants"
	"rift-scout/internal/riot"
)

// BestRank prefers solo queue, then flex, then arena, then whatever came first.
func BestRank(ranks []riot.LeagueEntry) (riot.LeagueEntry, bool) {
	if len(ranks) == 0 {
		return riot.LeagueEntry{}, false
	}
	for _, queue := range []string{constants.SoloQueue, constants.FlexQueue, constants.ArenaQueue} {
		for _, r := range ranks {
			if r.QueueType == queue {
				return r, true
			}
		}
	}
	return ranks[0], true
}

func QueueLabel(queueType string) string {
	switch queueType {
	case constants.SoloQueue:
		return "Ranked Solo"
	case constants.FlexQueue:
		return "Ranked Flex"
	case constants.ArenaQueue:
		return "Arena"
	}
	return strings.ReplaceAll(queueType, "_", " ")
}

// WinRate returns a percentage, 0 when no games were played.
func WinRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses) * 100
}

func FormatPoints(points int) string {
	switch {
	case points > 1_000_000:
		return fmt.Sprintf("%.1fM", float64(points)/1_000_000)
	case points > 1_000:
		return fmt.Sprintf("%.0fk", float64(points)/1_000)
	}
	return fmt.Sprintf("%d", points)
}

func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
