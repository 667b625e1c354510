package service

import (
	"context"
	"errors"
	"fmt"

	"rift-scout/internal/domain"
	"rift-scout/internal/insights"
	"rift-scout/internal/region"
	"rift-scout/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrNotInMatch = errors.New("player did not play in this match")

type AnalysisService struct {
	riot    RiotAPI
	matches *MatchService
	logger  zerolog.Logger
}

func NewAnalysisService(api RiotAPI, matches *MatchService, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{riot: api, matches: matches, logger: logger}
}

// Analyze joins a match with its timeline for one participant.
func (s *AnalysisService) Analyze(ctx context.Context, matchID, puuid, platform string) (*domain.MatchAnalysis, error) {
	continental := region.Continental(platform)

	g, gCtx := errgroup.WithContext(ctx)
	var match *riot.Match
	var timeline *riot.Timeline
	g.Go(func() error {
		var err error
		match, err = s.riot.Match(gCtx, continental, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		timeline, err = s.riot.Timeline(gCtx, continental, matchID)
		return err
	})
	if err := g.Wait(); err != nil {
		logFor(ctx, s.logger).Error().Err(err).Str("match_id", matchID).Msg("failed to fetch match for analysis")
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}

	user, ok := insights.FindParticipant(match, puuid)
	if !ok {
		return nil, ErrNotInMatch
	}

	analysis := &domain.MatchAnalysis{
		MatchID:  matchID,
		Puuid:    puuid,
		Champion: user.ChampionName,
		Win:      user.Win,
		Score:    insights.PerformanceScore(user),
		Badges:   insights.Badges(match, puuid),
		LaneDiff: insights.LaneDiff(timeline, match.Info.Participants, user.ParticipantID),
		Deaths:   insights.DeathPositions(timeline, user.ParticipantID),
	}
	if opp, ok := insights.LaneOpponent(match.Info.Participants, user.ParticipantID); ok {
		analysis.Opponent = opp.ChampionName
		analysis.Tip = insights.Tip(user.ChampionName, opp.ChampionName)
	}
	return analysis, nil
}

// Summary badges every recent match and buckets the win rate by game length.
func (s *AnalysisService) Summary(ctx context.Context, puuid, platform string) (*domain.MatchSummary, error) {
	matches, err := s.matches.GetMatches(ctx, puuid, platform)
	if err != nil {
		return nil, err
	}

	summary := &domain.MatchSummary{
		Puuid:    puuid,
		Matches:  make([]domain.MatchBadges, 0, len(matches)),
		WinRates: insights.WinRateByDuration(matches, puuid),
	}
	for _, m := range matches {
		p, ok := insights.FindParticipant(m, puuid)
		if !ok {
			continue
		}
		summary.Matches = append(summary.Matches, domain.MatchBadges{
			MatchID:  m.Metadata.MatchID,
			Champion: p.ChampionName,
			Win:      p.Win,
			Duration: insights.FormatDuration(m.Info.GameDuration),
			KDA:      fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists),
			Badges:   insights.Badges(m, puuid),
		})
	}
	return summary, nil
}
