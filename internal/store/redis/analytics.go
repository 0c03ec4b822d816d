package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// InsertAnalyticsEvent stores an event and bumps its section counter in the
// same transaction.
func (s *Store) InsertAnalyticsEvent(ctx context.Context, ev *domain.AnalyticsEvent) error {
	bump := func(pipe redis.Pipeliner) {
		pipe.ZIncrBy(ctx, s.keys.SectionCounts(), 1, ev.Section)
	}
	err := s.insert(ctx, s.keys.AnalyticsEvent(ev.ID), s.keys.AnalyticsIndex(), ev.ID, ev.VisitDate, ev, bump)
	if err != nil {
		return wrap("failed to save analytics event", err)
	}
	return nil
}

// CountAnalyticsEvents returns the size of the analytics collection
func (s *Store) CountAnalyticsEvents(ctx context.Context) (int64, error) {
	n, err := s.client.ZCard(ctx, s.keys.AnalyticsIndex()).Result()
	if err != nil {
		return 0, wrap("failed to count analytics events", err)
	}
	return n, nil
}

// PopularSections reads the top sections from the counter set.
// Redis orders equal scores by member in reverse lexicographic order.
func (s *Store) PopularSections(ctx context.Context, limit int) ([]domain.SectionCount, error) {
	if limit <= 0 {
		return []domain.SectionCount{}, nil
	}

	zs, err := s.client.ZRevRangeWithScores(ctx, s.keys.SectionCounts(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, wrap("failed to read popular sections", err)
	}

	rows := make([]domain.SectionCount, 0, len(zs))
	for _, z := range zs {
		section, ok := z.Member.(string)
		if !ok {
			section = fmt.Sprint(z.Member)
		}
		rows = append(rows, domain.SectionCount{Section: section, Count: int64(z.Score)})
	}
	return rows, nil
}
