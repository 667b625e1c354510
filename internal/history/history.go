package history

import (
	"context"
	"fmt"
	"time"

	"rift-scout/internal/constants"
	"rift-scout/internal/domain"
)

// Push puts entry at the front of list, dropping any older entry with the
// same name, and keeps at most limit entries. list is not modified.
func Push(list []domain.RecentSearch, entry domain.RecentSearch, limit int) []domain.RecentSearch {
	out := make([]domain.RecentSearch, 0, limit)
	out = append(out, entry)
	for _, s := range list {
		if len(out) == limit {
			break
		}
		if s.Name != entry.Name {
			out = append(out, s)
		}
	}
	return out
}

type Store interface {
	List(ctx context.Context) ([]domain.RecentSearch, error)
	ReplaceAll(ctx context.Context, list []domain.RecentSearch) error
}

type History struct {
	store Store
	now   func() time.Time
}

func New(store Store) *History {
	return &History{store: store, now: time.Now}
}

func (h *History) Recent(ctx context.Context) ([]domain.RecentSearch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return h.store.List(ctx)
}

// Record adds a search and returns the updated history.
func (h *History) Record(ctx context.Context, name, tag, platform string, iconID int) ([]domain.RecentSearch, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	current, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	updated := Push(current, domain.RecentSearch{
		Name:       name,
		Tag:        tag,
		Region:     platform,
		IconID:     iconID,
		SearchedAt: h.now(),
	}, constants.RecentSearchesLimit)

	if err := h.store.ReplaceAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}
	return updated, nil
}
