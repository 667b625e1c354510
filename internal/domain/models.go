package domain

import (
	"encoding/json"
	"time"

	"rift-scout/internal/insights"
	"rift-scout/internal/riot"
)

type PlayerProfile struct {
	Account  riot.Account           `json:"account"`
	Summoner riot.Summoner          `json:"summoner"`
	Ranks    []riot.LeagueEntry     `json:"ranks"`
	Mastery  []riot.ChampionMastery `json:"mastery"`
}

// LiveGame is the active game with each participant enriched. It encodes as
// the upstream game object with its participants replaced.
type LiveGame struct {
	riot.ActiveGame
	Participants []LiveParticipant `json:"participants"`
}

func (g LiveGame) MarshalJSON() ([]byte, error) {
	return riot.MergeJSON(g.ActiveGame, map[string]any{"participants": g.Participants})
}

func (g *LiveGame) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &g.ActiveGame); err != nil {
		return err
	}
	var enriched struct {
		Participants []LiveParticipant `json:"participants"`
	}
	if err := json.Unmarshal(b, &enriched); err != nil {
		return err
	}
	g.Participants = enriched.Participants
	return nil
}

// LiveParticipant is the upstream participant object plus rank, tags and mastery.
type LiveParticipant struct {
	riot.ActiveParticipant
	Rank    string   `json:"rank"`
	Tags    []string `json:"tags"`
	Mastery int      `json:"mastery"`
}

func (p LiveParticipant) MarshalJSON() ([]byte, error) {
	return riot.MergeJSON(p.ActiveParticipant, map[string]any{
		"rank":    p.Rank,
		"tags":    p.Tags,
		"mastery": p.Mastery,
	})
}

func (p *LiveParticipant) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &p.ActiveParticipant); err != nil {
		return err
	}
	var extra struct {
		Rank    string   `json:"rank"`
		Tags    []string `json:"tags"`
		Mastery int      `json:"mastery"`
	}
	if err := json.Unmarshal(b, &extra); err != nil {
		return err
	}
	p.Rank, p.Tags, p.Mastery = extra.Rank, extra.Tags, extra.Mastery
	return nil
}

type PlatformStatus struct {
	Status   *riot.PlatformStatus `json:"status"`
	Rotation []int                `json:"rotation"`
}

type LeaderboardEntry struct {
	riot.LeagueItem
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type LobbyResult struct {
	Name  string         `json:"name"`
	Data  *PlayerProfile `json:"data,omitempty"`
	Error string         `json:"error,omitempty"`
}

type MatchAnalysis struct {
	MatchID  string               `json:"matchId"`
	Puuid    string               `json:"puuid"`
	Champion string               `json:"champion"`
	Win      bool                 `json:"win"`
	Score    float64              `json:"score"`
	Badges   []insights.Badge     `json:"badges"`
	Opponent string               `json:"opponent,omitempty"`
	LaneDiff []insights.DiffPoint `json:"laneDiff"`
	Deaths   []riot.Position      `json:"deaths"`
	Tip      string               `json:"tip,omitempty"`
}

type MatchSummary struct {
	Puuid    string                    `json:"puuid"`
	Matches  []MatchBadges             `json:"matches"`
	WinRates []insights.DurationBucket `json:"winRates"`
}

type MatchBadges struct {
	MatchID  string           `json:"matchId"`
	Champion string           `json:"champion"`
	Win      bool             `json:"win"`
	Duration string           `json:"duration"`
	KDA      string           `json:"kda"`
	Badges   []insights.Badge `json:"badges"`
}

// RecentSearch is one entry of the client-side search history.
type RecentSearch struct {
	ID         string
	Name       string
	Tag        string
	Region     string
	IconID     int
	SearchedAt time.Time
}
