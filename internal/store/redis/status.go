package redis

import (
	"context"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// InsertStatusCheck stores a status check
func (s *Store) InsertStatusCheck(ctx context.Context, sc *domain.StatusCheck) error {
	err := s.insert(ctx, s.keys.StatusCheck(sc.ID), s.keys.StatusIndex(), sc.ID, sc.Timestamp, sc, nil)
	if err != nil {
		return wrap("failed to save status check", err)
	}
	return nil
}

// ListStatusChecks returns the oldest limit status checks in creation order
func (s *Store) ListStatusChecks(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	if limit <= 0 {
		return []*domain.StatusCheck{}, nil
	}

	ids, err := s.client.ZRange(ctx, s.keys.StatusIndex(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, wrap("failed to list status check ids", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.keys.StatusCheck(id)
	}

	checks, err := loadDocs[domain.StatusCheck](ctx, s.client, keys)
	if err != nil {
		return nil, wrap("failed to load status checks", err)
	}
	return checks, nil
}
