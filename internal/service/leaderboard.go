package service

import (
	"context"
	"fmt"
	"sort"

	"rift-scout/internal/constants"
	"rift-scout/internal/domain"
	"rift-scout/internal/region"
	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	unknownName = "Unknown User"
	unknownTag  = "???"
	hiddenName  = "Hidden User"
)

type LeaderboardService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewLeaderboardService(api RiotAPI, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{riot: api, logger: logger}
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, platform string) ([]domain.LeaderboardEntry, error) {
	log := logFor(ctx, s.logger)

	league, err := s.riot.ChallengerLeague(ctx, platform, constants.SoloQueue)
	if err != nil {
		log.Error().Err(err).Str("platform", platform).Msg("failed to fetch challenger league")
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}

	top := make([]riot.LeagueItem, len(league.Entries))
	copy(top, league.Entries)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].LeaguePoints > top[j].LeaguePoints
	})
	if len(top) > constants.LeaderboardSize {
		top = top[:constants.LeaderboardSize]
	}

	continental := region.Continental(platform)
	entries := make([]domain.LeaderboardEntry, len(top))
	g := new(errgroup.Group)
	for i, item := range top {
		entries[i] = domain.LeaderboardEntry{LeagueItem: item}
		g.Go(func() error {
			entries[i].GameName, entries[i].TagLine = s.resolveName(ctx, platform, continental, item)
			return nil
		})
	}
	_ = g.Wait()

	log.Info().Str("platform", platform).Int("entries", len(entries)).Msg("leaderboard fetched successfully")
	return entries, nil
}

// resolveName walks summoner -> account. It never fails; unresolvable
// entries get a placeholder.
func (s *LeaderboardService) resolveName(ctx context.Context, platform, continental string, item riot.LeagueItem) (string, string) {
	log := logFor(ctx, s.logger)
	puuid := item.Puuid

	if item.SummonerID != "" {
		summoner, err := s.riot.SummonerByID(ctx, platform, item.SummonerID)
		if err != nil {
			log.Debug().Err(err).Str("summoner_id", item.SummonerID).Msg("leaderboard summoner lookup failed")
			return hiddenName, ""
		}
		puuid = summoner.Puuid
	}
	if puuid == "" {
		return unknownName, unknownTag
	}

	account, err := s.riot.AccountByPuuid(ctx, continental, puuid)
	if err != nil {
		log.Debug().Err(err).Str("puuid", puuid).Msg("leaderboard account lookup failed")
		return hiddenName, ""
	}
	return account.GameName, account.TagLine
}
