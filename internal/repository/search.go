package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rift-scout/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SearchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSearchRepository(sqlDB *sql.DB, logger zerolog.Logger) *SearchRepository {
	return &SearchRepository{db: sqlDB, logger: logger}
}

// List returns the stored searches most recent first.
func (r *SearchRepository) List(ctx context.Context) ([]domain.RecentSearch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, tag, region, icon_id, searched_at
		FROM recent_searches
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent searches: %w", err)
	}
	defer rows.Close()

	result := []domain.RecentSearch{}
	for rows.Next() {
		var s domain.RecentSearch
		var searchedAt int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Tag, &s.Region, &s.IconID, &searchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent search: %w", err)
		}
		s.SearchedAt = time.UnixMilli(searchedAt)
		result = append(result, s)
	}
	return result, rows.Err()
}

// ReplaceAll stores list as the complete history, keeping its order.
func (r *SearchRepository) ReplaceAll(ctx context.Context, list []domain.RecentSearch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_searches`); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}

	for i, s := range list {
		id := s.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO recent_searches (id, name, tag, region, icon_id, position, searched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, s.Name, s.Tag, s.Region, s.IconID, i, s.SearchedAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to insert recent search: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recent searches: %w", err)
	}
	r.logger.Debug().Int("count", len(list)).Msg("recent searches saved")
	return nil
}
