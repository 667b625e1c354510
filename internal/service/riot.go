package service

import (
	"context"

	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
)

// RiotAPI is the part of the Riot client the services call.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, continental, name, tag string) (*riot.Account, error)
	AccountByPuuid(ctx context.Context, continental, puuid string) (*riot.Account, error)
	SummonerByPuuid(ctx context.Context, platform, puuid string) (*riot.Summoner, error)
	SummonerByID(ctx context.Context, platform, summonerID string) (*riot.Summoner, error)
	TFTSummonerByPuuid(ctx context.Context, platform, puuid string) (*riot.Summoner, error)
	ClashPlayersByPuuid(ctx context.Context, platform, puuid string) ([]riot.ClashPlayer, error)
	LeagueEntriesBySummoner(ctx context.Context, platform, summonerID string) ([]riot.LeagueEntry, error)
	LeagueEntriesByPuuid(ctx context.Context, platform, puuid string) ([]riot.LeagueEntry, error)
	MasteriesByPuuid(ctx context.Context, platform, puuid string) ([]riot.ChampionMastery, error)
	MasteryByChampion(ctx context.Context, platform, puuid string, championID int64) (*riot.ChampionMastery, error)
	MatchIDs(ctx context.Context, continental, puuid string, start, count int) ([]string, error)
	Match(ctx context.Context, continental, matchID string) (*riot.Match, error)
	Timeline(ctx context.Context, continental, matchID string) (*riot.Timeline, error)
	ActiveGame(ctx context.Context, platform, puuid string) (*riot.ActiveGame, error)
	PlatformStatus(ctx context.Context, platform string) (*riot.PlatformStatus, error)
	ChampionRotation(ctx context.Context, platform string) (*riot.ChampionRotation, error)
	ChallengerLeague(ctx context.Context, platform, queue string) (*riot.LeagueList, error)
}

var _ RiotAPI = (*riot.Client)(nil)

// logFor prefers the request-scoped logger installed by the middleware.
func logFor(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &fallback
}
