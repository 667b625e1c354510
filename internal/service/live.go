package service

import (
	"context"
	"errors"
	"fmt"

	"rift-scout/internal/config"
	"rift-scout/internal/constants"
	"rift-scout/internal/domain"
	"rift-scout/internal/insights"
	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrNotInGame = errors.New("player is not in game")

const (
	TagSmurf = "SMURF"
	TagGod   = "GOD"
	TagOTP   = "OTP"
	TagNew   = "NEW"

	unranked = "Unranked"
)

type LiveService struct {
	riot       RiotAPI
	thresholds config.LiveThresholds
	logger     zerolog.Logger
}

func NewLiveService(api RiotAPI, cfg *config.Config, logger zerolog.Logger) *LiveService {
	return &LiveService{riot: api, thresholds: cfg.Live, logger: logger}
}

func (s *LiveService) GetLiveGame(ctx context.Context, puuid, platform string) (*domain.LiveGame, error) {
	log := logFor(ctx, s.logger)

	game, err := s.riot.ActiveGame(ctx, platform, puuid)
	if riot.IsNotFound(err) {
		log.Info().Str("puuid", puuid).Msg("player not in game")
		return nil, ErrNotInGame
	}
	if err != nil {
		log.Error().Err(err).Str("puuid", puuid).Msg("failed to fetch active game")
		return nil, fmt.Errorf("failed to fetch active game: %w", err)
	}

	participants := make([]domain.LiveParticipant, len(game.Participants))
	g := new(errgroup.Group)
	for i, p := range game.Participants {
		participants[i] = domain.LiveParticipant{ActiveParticipant: p, Rank: unranked, Tags: []string{}}
		g.Go(func() error {
			s.enrich(ctx, platform, &participants[i])
			return nil
		})
	}
	_ = g.Wait()

	log.Info().Str("puuid", puuid).Int64("game_id", game.GameID).Msg("live game fetched successfully")
	return &domain.LiveGame{ActiveGame: *game, Participants: participants}, nil
}

// enrich runs the rank and mastery lookups side by side. Either may fail and
// leave its defaults in place.
func (s *LiveService) enrich(ctx context.Context, platform string, p *domain.LiveParticipant) {
	log := logFor(ctx, s.logger)
	var rankTags, masteryTags []string

	g := new(errgroup.Group)
	g.Go(func() error {
		rank, tags, err := s.rankFor(ctx, platform, p.ActiveParticipant)
		if err != nil {
			log.Debug().Err(err).Str("puuid", p.Puuid).Msg("live rank lookup failed")
			return nil
		}
		p.Rank = rank
		rankTags = tags
		return nil
	})
	g.Go(func() error {
		if p.Puuid == "" {
			return nil
		}
		m, err := s.riot.MasteryByChampion(ctx, platform, p.Puuid, p.ChampionID)
		if err != nil {
			log.Debug().Err(err).Str("puuid", p.Puuid).Msg("live mastery lookup failed")
			return nil
		}
		p.Mastery = m.ChampionPoints
		masteryTags = s.masteryTags(m.ChampionPoints)
		return nil
	})
	_ = g.Wait()

	p.Tags = append(p.Tags, rankTags...)
	p.Tags = append(p.Tags, masteryTags...)
}

func (s *LiveService) rankFor(ctx context.Context, platform string, p riot.ActiveParticipant) (string, []string, error) {
	var entries []riot.LeagueEntry
	var err error
	switch {
	case p.SummonerID != "":
		entries, err = s.riot.LeagueEntriesBySummoner(ctx, platform, p.SummonerID)
	case p.Puuid != "":
		entries, err = s.riot.LeagueEntriesByPuuid(ctx, platform, p.Puuid)
	default:
		return unranked, nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	for _, e := range entries {
		if e.QueueType != constants.SoloQueue {
			continue
		}
		var tags []string
		games := e.Wins + e.Losses
		if insights.WinRate(e.Wins, e.Losses) > s.thresholds.SmurfWinRate && games > s.thresholds.SmurfMinGames {
			tags = append(tags, TagSmurf)
		}
		return e.Tier + " " + e.Rank, tags, nil
	}
	return unranked, nil, nil
}

func (s *LiveService) masteryTags(points int) []string {
	switch {
	case points > s.thresholds.GodPoints:
		return []string{TagGod}
	case points > s.thresholds.OTPPoints:
		return []string{TagOTP}
	case points < s.thresholds.NewPoints:
		return []string{TagNew}
	}
	return nil
}
