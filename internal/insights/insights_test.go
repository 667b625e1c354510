package insights

import (
	"fmt"
	"testing"

	"rift-scout/internal/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var positions = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// newMatch builds a ten-player match; participants 1-5 are team 100, 6-10 team 200.
func newMatch(durationSeconds int64, blueWins bool) *riot.Match {
	m := &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "NA1_1"},
		Info:     riot.MatchInfo{GameDuration: durationSeconds},
	}
	for i := 1; i <= 10; i++ {
		team := 100
		win := blueWins
		if i > 5 {
			team = 200
			win = !blueWins
		}
		m.Info.Participants = append(m.Info.Participants, riot.Participant{
			Puuid:                       fmt.Sprintf("p-%d", i),
			ParticipantID:               i,
			TeamID:                      team,
			ChampionName:                fmt.Sprintf("Champ%d", i),
			IndividualPosition:          positions[(i-1)%5],
			Kills:                       2,
			Deaths:                      3,
			Assists:                     4,
			VisionScore:                 10,
			TotalMinionsKilled:          100,
			TotalDamageDealtToChampions: 10000,
			Win:                         win,
		})
	}
	return m
}

func TestPerformanceScore(t *testing.T) {
	p := riot.Participant{Kills: 10, Assists: 5, Deaths: 2, VisionScore: 20, TotalMinionsKilled: 155}
	assert.InDelta(t, 30+10-4+20+15.5, PerformanceScore(p), 1e-9)
}

func TestBadgesMVPOnLosingTeam(t *testing.T) {
	m := newMatch(30*60, false)
	m.Info.Participants[0].Kills = 20

	badges := Badges(m, "p-1")
	assert.Contains(t, badges, BadgeMVP)
	assert.NotContains(t, badges, BadgeACE)
}

func TestBadgesACE(t *testing.T) {
	m := newMatch(30*60, false)
	m.Info.Participants[6].Kills = 30 // winner, overall MVP
	m.Info.Participants[1].Kills = 10 // best on the losing side

	assert.Contains(t, Badges(m, "p-2"), BadgeACE)
	assert.Contains(t, Badges(m, "p-7"), BadgeMVP)
	assert.NotContains(t, Badges(m, "p-3"), BadgeACE)
}

func TestBadgePredicates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *riot.Match)
		badge  Badge
		want   bool
	}{
		{
			name:   "stomper on quick win",
			mutate: func(m *riot.Match) { m.Info.GameDuration = 19 * 60 },
			badge:  BadgeStomper,
			want:   true,
		},
		{
			name:   "no stomper at twenty minutes",
			mutate: func(m *riot.Match) { m.Info.GameDuration = 20 * 60 },
			badge:  BadgeStomper,
			want:   false,
		},
		{
			name:   "carry above thirty percent",
			mutate: func(m *riot.Match) { m.Info.Participants[0].TotalDamageDealtToChampions = 20000 },
			badge:  BadgeCarry,
			want:   true,
		},
		{
			name:   "no carry at even share",
			mutate: func(m *riot.Match) {},
			badge:  BadgeCarry,
			want:   false,
		},
		{
			name:   "visionary",
			mutate: func(m *riot.Match) { m.Info.Participants[0].VisionScore = 46 },
			badge:  BadgeVisionary,
			want:   true,
		},
		{
			name:   "visionary boundary",
			mutate: func(m *riot.Match) { m.Info.Participants[0].VisionScore = 45 },
			badge:  BadgeVisionary,
			want:   false,
		},
		{
			name:   "immortal",
			mutate: func(m *riot.Match) { m.Info.Participants[0].Deaths = 1 },
			badge:  BadgeImmortal,
			want:   true,
		},
		{
			name: "immortal needs a long game",
			mutate: func(m *riot.Match) {
				m.Info.Participants[0].Deaths = 0
				m.Info.GameDuration = 15 * 60
			},
			badge: BadgeImmortal,
			want:  false,
		},
		{
			name:   "breach",
			mutate: func(m *riot.Match) { m.Info.Participants[0].DamageDealtToTurrets = 5001 },
			badge:  BadgeBreach,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(30*60, true)
			tt.mutate(m)
			assert.Equal(t, tt.want, contains(Badges(m, "p-1"), tt.badge))
		})
	}
}

func TestBadgesUnknownPlayer(t *testing.T) {
	assert.Nil(t, Badges(newMatch(1800, true), "missing"))
}

func contains(badges []Badge, b Badge) bool {
	for _, x := range badges {
		if x == b {
			return true
		}
	}
	return false
}

func frame(gold map[int][2]int, events ...riot.Event) riot.Frame {
	f := riot.Frame{ParticipantFrames: map[string]riot.ParticipantFrame{}, Events: events}
	for id, gx := range gold {
		f.ParticipantFrames[fmt.Sprint(id)] = riot.ParticipantFrame{ParticipantID: id, TotalGold: gx[0], XP: gx[1]}
	}
	return f
}

func TestLaneOpponent(t *testing.T) {
	m := newMatch(1800, true)

	opp, ok := LaneOpponent(m.Info.Participants, 3)
	require.True(t, ok)
	assert.Equal(t, 8, opp.ParticipantID)

	m.Info.Participants[2].IndividualPosition = "Invalid"
	m.Info.Participants[7].IndividualPosition = "Invalid"
	_, ok = LaneOpponent(m.Info.Participants, 3)
	assert.False(t, ok)
}

func TestLaneDiff(t *testing.T) {
	m := newMatch(1800, true)
	tl := &riot.Timeline{Info: riot.TimelineInfo{Frames: []riot.Frame{
		frame(map[int][2]int{1: {500, 0}, 6: {500, 0}}),
		frame(map[int][2]int{1: {1800, 400}, 6: {1500, 500}}),
		frame(map[int][2]int{1: {3000, 900}}),
	}}}

	points := LaneDiff(tl, m.Info.Participants, 1)
	require.Len(t, points, 3)
	assert.Equal(t, DiffPoint{Minute: 0}, points[0])
	assert.Equal(t, DiffPoint{Minute: 1, GoldDiff: 300, XPDiff: -100}, points[1])
	assert.Equal(t, DiffPoint{Minute: 2}, points[2])
}

func TestDeathPositions(t *testing.T) {
	tl := &riot.Timeline{Info: riot.TimelineInfo{Frames: []riot.Frame{
		frame(nil,
			riot.Event{Type: "CHAMPION_KILL", VictimID: 1, KillerID: 6, Position: &riot.Position{X: 100, Y: 200}},
			riot.Event{Type: "CHAMPION_KILL", VictimID: 2, KillerID: 6, Position: &riot.Position{X: 1, Y: 1}},
		),
		frame(nil,
			riot.Event{Type: "WARD_PLACED", ParticipantID: 1},
			riot.Event{Type: "CHAMPION_KILL", VictimID: 1, KillerID: 7, Position: &riot.Position{X: 7000, Y: 7000}},
		),
	}}}

	assert.Equal(t, []riot.Position{{X: 100, Y: 200}, {X: 7000, Y: 7000}}, DeathPositions(tl, 1))
	assert.Empty(t, DeathPositions(tl, 5))
}

func TestWinRateByDuration(t *testing.T) {
	matches := []*riot.Match{
		newMatch(20*60, true),
		newMatch(24*60, false),
		newMatch(25*60, true),
		newMatch(40*60, true),
	}

	buckets := WinRateByDuration(matches, "p-1")
	require.Len(t, buckets, 3)
	assert.Equal(t, DurationBucket{Label: "0-25m", Wins: 1, Total: 2, WinRate: 50}, buckets[0])
	assert.Equal(t, DurationBucket{Label: "25-35m", Wins: 1, Total: 1, WinRate: 100}, buckets[1])
	assert.Equal(t, DurationBucket{Label: "35m+", Wins: 1, Total: 1, WinRate: 100}, buckets[2])
}

func TestBestRank(t *testing.T) {
	_, ok := BestRank(nil)
	assert.False(t, ok)

	ranks := []riot.LeagueEntry{
		{QueueType: "CHERRY", Tier: "GOLD"},
		{QueueType: "RANKED_FLEX_SR", Tier: "SILVER"},
	}
	best, ok := BestRank(ranks)
	require.True(t, ok)
	assert.Equal(t, "SILVER", best.Tier)

	ranks = append(ranks, riot.LeagueEntry{QueueType: "RANKED_SOLO_5x5", Tier: "MASTER"})
	best, _ = BestRank(ranks)
	assert.Equal(t, "MASTER", best.Tier)

	best, _ = BestRank([]riot.LeagueEntry{{QueueType: "RANKED_TFT", Tier: "IRON"}})
	assert.Equal(t, "IRON", best.Tier)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "Ranked Solo", QueueLabel("RANKED_SOLO_5x5"))
	assert.Equal(t, "RANKED TFT", QueueLabel("RANKED_TFT"))
	assert.Equal(t, "1.5M", FormatPoints(1_500_000))
	assert.Equal(t, "530k", FormatPoints(530_000))
	assert.Equal(t, "999", FormatPoints(999))
	assert.Equal(t, "31m 5s", FormatDuration(31*60+5))
	assert.Equal(t, 75.0, WinRate(3, 1))
	assert.Equal(t, 0.0, WinRate(0, 0))
	assert.Equal(t, "", Tip("Teemo", "Nasus"))
	assert.NotEmpty(t, Tip("Nasus", "Teemo"))
}
