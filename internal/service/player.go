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
)

type PlayerService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewPlayerService(api RiotAPI, logger zerolog.Logger) *PlayerService {
	return &PlayerService{riot: api, logger: logger}
}

// summonerIDLookup recovers an encrypted summoner id from a sibling endpoint.
type summonerIDLookup struct {
	name   string
	lookup func(ctx context.Context, platform, puuid string) (string, error)
}

func (s *PlayerService) fallbackLookups() []summonerIDLookup {
	return []summonerIDLookup{
		{
			name: "tft",
			lookup: func(ctx context.Context, platform, puuid string) (string, error) {
				summoner, err := s.riot.TFTSummonerByPuuid(ctx, platform, puuid)
				if err != nil {
					return "", err
				}
				return summoner.ID, nil
			},
		},
		{
			name: "clash",
			lookup: func(ctx context.Context, platform, puuid string) (string, error) {
				players, err := s.riot.ClashPlayersByPuuid(ctx, platform, puuid)
				if err != nil {
					return "", err
				}
				if len(players) == 0 {
					return "", nil
				}
				return players[0].SummonerID, nil
			},
		},
	}
}

func (s *PlayerService) GetProfile(ctx context.Context, name, tag, platform string) (*domain.PlayerProfile, error) {
	log := logFor(ctx, s.logger)
	continental := region.Continental(platform)

	log.Info().Str("name", name).Str("tag", tag).Str("platform", platform).Msg("getting player")

	account, err := s.riot.AccountByRiotID(ctx, continental, name, tag)
	if err != nil {
		log.Error().Err(err).Str("name", name).Str("tag", tag).Msg("failed to fetch account")
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	summoner, err := s.riot.SummonerByPuuid(ctx, platform, account.Puuid)
	if err != nil {
		log.Error().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("failed to fetch summoner: %w", err)
	}

	summonerID := s.resolveSummonerID(ctx, platform, summoner)

	ranks := []riot.LeagueEntry{}
	if summonerID != "" {
		entries, err := s.riot.LeagueEntriesBySummoner(ctx, platform, summonerID)
		if err != nil {
			log.Warn().Err(err).Str("puuid", account.Puuid).Msg("rank lookup failed, reporting unranked")
		} else if entries != nil {
			ranks = entries
		}
	} else {
		log.Warn().Str("puuid", account.Puuid).Msg("no summoner id from any endpoint, reporting unranked")
	}

	masteries, err := s.riot.MasteriesByPuuid(ctx, platform, account.Puuid)
	if err != nil {
		log.Error().Err(err).Str("puuid", account.Puuid).Msg("failed to fetch mastery")
		return nil, fmt.Errorf("failed to fetch mastery: %w", err)
	}

	log.Info().Str("puuid", account.Puuid).Int("ranks", len(ranks)).Msg("player fetched successfully")
	return &domain.PlayerProfile{
		Account:  *account,
		Summoner: *summoner,
		Ranks:    ranks,
		Mastery:  topMasteries(masteries, constants.TopMasteryCount),
	}, nil
}

// resolveSummonerID returns the summoner's own id, or the first id a fallback
// lookup produces. An empty result means the player is unranked.
func (s *PlayerService) resolveSummonerID(ctx context.Context, platform string, summoner *riot.Summoner) string {
	if summoner.ID != "" {
		return summoner.ID
	}

	log := logFor(ctx, s.logger)
	for _, fb := range s.fallbackLookups() {
		log.Debug().Str("lookup", fb.name).Str("puuid", summoner.Puuid).Msg("summoner id missing, trying fallback")

		id, err := fb.lookup(ctx, platform, summoner.Puuid)
		if err != nil {
			log.Debug().Err(err).Str("lookup", fb.name).Msg("fallback lookup failed")
			continue
		}
		if id != "" {
			log.Info().Str("lookup", fb.name).Str("puuid", summoner.Puuid).Msg("recovered summoner id")
			return id
		}
	}
	return ""
}

func topMasteries(all []riot.ChampionMastery, n int) []riot.ChampionMastery {
	sorted := make([]riot.ChampionMastery, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChampionPoints > sorted[j].ChampionPoints
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
