package service

import (
	"context"
	"fmt"

	"rift-scout/internal/domain"
	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatusService struct {
	riot   RiotAPI
	logger zerolog.Logger
}

func NewStatusService(api RiotAPI, logger zerolog.Logger) *StatusService {
	return &StatusService{riot: api, logger: logger}
}

// GetStatus needs both the platform health and the free rotation.
func (s *StatusService) GetStatus(ctx context.Context, platform string) (*domain.PlatformStatus, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var status *riot.PlatformStatus
	var rotation *riot.ChampionRotation

	g.Go(func() error {
		var err error
		status, err = s.riot.PlatformStatus(gCtx, platform)
		return err
	})
	g.Go(func() error {
		var err error
		rotation, err = s.riot.ChampionRotation(gCtx, platform)
		return err
	})

	if err := g.Wait(); err != nil {
		logFor(ctx, s.logger).Error().Err(err).Str("platform", platform).Msg("status check failed")
		return nil, fmt.Errorf("failed to fetch status: %w", err)
	}

	free := rotation.FreeChampionIDs
	if free == nil {
		free = []int{}
	}
	return &domain.PlatformStatus{Status: status, Rotation: free}, nil
}
