package insights

import (
	"math"

	"rift-scout/internal/riot"
)

type DurationBucket struct {
	Label   string `json:"name"`
	Wins    int    `json:"wins"`
	Total   int    `json:"count"`
	WinRate int    `json:"winrate"`
}

// WinRateByDuration buckets matches into early (<25m), mid (25-35m) and late games.
func WinRateByDuration(matches []*riot.Match, puuid string) []DurationBucket {
	buckets := []DurationBucket{
		{Label: "0-25m"},
		{Label: "25-35m"},
		{Label: "35m+"},
	}

	for _, m := range matches {
		minutes := Minutes(m)
		idx := 0
		switch {
		case minutes >= 35:
			idx = 2
		case minutes >= 25:
			idx = 1
		}

		buckets[idx].Total++
		if p, ok := FindParticipant(m, puuid); ok && p.Win {
			buckets[idx].Wins++
		}
	}

	for i := range buckets {
		if buckets[i].Total > 0 {
			buckets[i].WinRate = int(math.Round(float64(buckets[i].Wins) / float64(buckets[i].Total) * 100))
		}
	}
	return buckets
}
