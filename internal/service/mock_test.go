package service

import (
	"context"

	"rift-scout/internal/riot"

	"github.com/stretchr/testify/mock"
)

type MockRiotAPI struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (T, error) {
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}

func (m *MockRiotAPI) AccountByRiotID(ctx context.Context, continental, name, tag string) (*riot.Account, error) {
	return result[*riot.Account](m.Called(ctx, continental, name, tag))
}

func (m *MockRiotAPI) AccountByPuuid(ctx context.Context, continental, puuid string) (*riot.Account, error) {
	return result[*riot.Account](m.Called(ctx, continental, puuid))
}

func (m *MockRiotAPI) SummonerByPuuid(ctx context.Context, platform, puuid string) (*riot.Summoner, error) {
	return result[*riot.Summoner](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) SummonerByID(ctx context.Context, platform, summonerID string) (*riot.Summoner, error) {
	return result[*riot.Summoner](m.Called(ctx, platform, summonerID))
}

func (m *MockRiotAPI) TFTSummonerByPuuid(ctx context.Context, platform, puuid string) (*riot.Summoner, error) {
	return result[*riot.Summoner](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) ClashPlayersByPuuid(ctx context.Context, platform, puuid string) ([]riot.ClashPlayer, error) {
	return result[[]riot.ClashPlayer](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) LeagueEntriesBySummoner(ctx context.Context, platform, summonerID string) ([]riot.LeagueEntry, error) {
	return result[[]riot.LeagueEntry](m.Called(ctx, platform, summonerID))
}

func (m *MockRiotAPI) LeagueEntriesByPuuid(ctx context.Context, platform, puuid string) ([]riot.LeagueEntry, error) {
	return result[[]riot.LeagueEntry](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) MasteriesByPuuid(ctx context.Context, platform, puuid string) ([]riot.ChampionMastery, error) {
	return result[[]riot.ChampionMastery](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) MasteryByChampion(ctx context.Context, platform, puuid string, championID int64) (*riot.ChampionMastery, error) {
	return result[*riot.ChampionMastery](m.Called(ctx, platform, puuid, championID))
}

func (m *MockRiotAPI) MatchIDs(ctx context.Context, continental, puuid string, start, count int) ([]string, error) {
	return result[[]string](m.Called(ctx, continental, puuid, start, count))
}

func (m *MockRiotAPI) Match(ctx context.Context, continental, matchID string) (*riot.Match, error) {
	return result[*riot.Match](m.Called(ctx, continental, matchID))
}

func (m *MockRiotAPI) Timeline(ctx context.Context, continental, matchID string) (*riot.Timeline, error) {
	return result[*riot.Timeline](m.Called(ctx, continental, matchID))
}

func (m *MockRiotAPI) ActiveGame(ctx context.Context, platform, puuid string) (*riot.ActiveGame, error) {
	return result[*riot.ActiveGame](m.Called(ctx, platform, puuid))
}

func (m *MockRiotAPI) PlatformStatus(ctx context.Context, platform string) (*riot.PlatformStatus, error) {
	return result[*riot.PlatformStatus](m.Called(ctx, platform))
}

func (m *MockRiotAPI) ChampionRotation(ctx context.Context, platform string) (*riot.ChampionRotation, error) {
	return result[*riot.ChampionRotation](m.Called(ctx, platform))
}

func (m *MockRiotAPI) ChallengerLeague(ctx context.Context, platform, queue string) (*riot.LeagueList, error) {
	return result[*riot.LeagueList](m.Called(ctx, platform, queue))
}

var (
	anyCtx      = mock.Anything
	errNotFound = &riot.StatusError{StatusCode: 404, URL: "test"}
	errUpstream = &riot.StatusError{StatusCode: 500, URL: "test"}
)
