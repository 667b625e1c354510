package service

import (
	"context"
	"fmt"

	"rift-scout/internal/config"
	"rift-scout/internal/region"
	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchService struct {
	riot   RiotAPI
	count  int
	logger zerolog.Logger
}

func NewMatchService(api RiotAPI, cfg *config.Config, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: api, count: cfg.MatchCount, logger: logger}
}

// GetMatches returns the most recent matches in the order Riot listed their ids.
func (s *MatchService) GetMatches(ctx context.Context, puuid, platform string) ([]*riot.Match, error) {
	log := logFor(ctx, s.logger)
	continental := region.Continental(platform)

	ids, err := s.riot.MatchIDs(ctx, continental, puuid, 0, s.count)
	if err != nil {
		log.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch match ids")
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}

	log.Debug().Str("puuid", puuid).Int("match_count", len(ids)).Msg("fetching match details")

	// Each goroutine writes only its own slot, so completion order never
	// affects the result order. A plain Group keeps siblings running when one fails.
	matches := make([]*riot.Match, len(ids))
	g := new(errgroup.Group)
	for i, id := range ids {
		g.Go(func() error {
			m, err := s.riot.Match(ctx, continental, id)
			if err != nil {
				return fmt.Errorf("match %s: %w", id, err)
			}
			matches[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch match details")
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	log.Info().Str("puuid", puuid).Int("match_count", len(matches)).Msg("matches fetched successfully")
	return matches, nil
}

func (s *MatchService) GetTimeline(ctx context.Context, matchID, platform string) (*riot.Timeline, error) {
	tl, err := s.riot.Timeline(ctx, region.Continental(platform), matchID)
	if err != nil {
		logFor(ctx, s.logger).Error().Err(err).Str("match_id", matchID).Msg("failed to fetch timeline")
		return nil, fmt.Errorf("failed to fetch timeline: %w", err)
	}
	return tl, nil
}
