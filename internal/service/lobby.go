package service

import (
	"context"
	"regexp"
	"strings"

	"rift-scout/internal/domain"

	"golang.org/x/sync/errgroup"
)

var lobbySeparators = regexp.MustCompile(`[\n,]`)

const (
	lobbyJoinSuffix = " joined the lobby"

	lobbyMissingTag = "Missing #Tag"
	lobbyNotFound   = "Not Found"
)

type LobbyService struct {
	players *PlayerService
}

func NewLobbyService(players *PlayerService) *LobbyService {
	return &LobbyService{players: players}
}

// ParseLobby extracts one entry per pasted line or comma-separated name.
func ParseLobby(text string) []string {
	var names []string
	for _, line := range lobbySeparators.Split(text, -1) {
		line = strings.TrimSpace(strings.ReplaceAll(line, lobbyJoinSuffix, ""))
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}

// Scout resolves every lobby entry concurrently. Results follow input order
// and a failed entry never fails the batch.
func (s *LobbyService) Scout(ctx context.Context, text, platform string) []domain.LobbyResult {
	names := ParseLobby(text)
	results := make([]domain.LobbyResult, len(names))

	g := new(errgroup.Group)
	for i, line := range names {
		results[i].Name = line
		name, tag, ok := strings.Cut(line, "#")
		name, tag = strings.TrimSpace(name), strings.TrimSpace(tag)
		if !ok || name == "" || tag == "" {
			results[i].Error = lobbyMissingTag
			continue
		}
		g.Go(func() error {
			profile, err := s.players.GetProfile(ctx, name, tag, platform)
			if err != nil {
				results[i].Error = lobbyNotFound
				return nil
			}
			results[i].Data = profile
			return nil
		})
	}
	_ = g.Wait()

	return results
}
