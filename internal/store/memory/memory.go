// Package memory is a process-local Store backend.
// Documents live only as long as the process; it exists for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/store"
)

// Store keeps every collection in memory behind a single RWMutex.
type Store struct {
	mu        sync.RWMutex
	closed    bool
	status    []domain.StatusCheck    // insertion order
	contacts  []domain.ContactMessage // insertion order
	analytics []domain.AnalyticsEvent // insertion order
}

var _ store.Store = (*Store)(nil)

// New creates an empty memory store
func New() *Store {
	return &Store{}
}

func (s *Store) InsertStatusCheck(_ context.Context, sc *domain.StatusCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrUnavailable
	}
	s.status = append(s.status, *sc)
	return nil
}

func (s *Store) ListStatusChecks(_ context.Context, limit int) ([]*domain.StatusCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.ErrUnavailable
	}
	n := max(0, min(limit, len(s.status)))
	out := make([]*domain.StatusCheck, 0, n)
	for i := 0; i < n; i++ {
		sc := s.status[i]
		out = append(out, &sc)
	}
	return out, nil
}

func (s *Store) InsertContactMessage(_ context.Context, msg *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrUnavailable
	}
	s.contacts = append(s.contacts, *msg)
	return nil
}

func (s *Store) ListContactMessages(_ context.Context, limit int) ([]*domain.ContactMessage, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, store.ErrUnavailable
	}
	all := make([]*domain.ContactMessage, 0, len(s.contacts))
	for i := range s.contacts {
		msg := s.contacts[i]
		all = append(all, &msg)
	}
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *Store) CountContactMessages(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, store.ErrUnavailable
	}
	return int64(len(s.contacts)), nil
}

func (s *Store) InsertAnalyticsEvent(_ context.Context, ev *domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrUnavailable
	}
	s.analytics = append(s.analytics, *ev)
	return nil
}

func (s *Store) CountAnalyticsEvents(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, store.ErrUnavailable
	}
	return int64(len(s.analytics)), nil
}

// PopularSections groups on every call. Equal counts keep first-seen order.
func (s *Store) PopularSections(_ context.Context, limit int) ([]domain.SectionCount, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, store.ErrUnavailable
	}
	sections := lo.Map(s.analytics, func(ev domain.AnalyticsEvent, _ int) string { return ev.Section })
	s.mu.RUnlock()

	counts := lo.CountValues(sections)
	rows := lo.Map(lo.Uniq(sections), func(section string, _ int) domain.SectionCount {
		return domain.SectionCount{Section: section, Count: int64(counts[section])}
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return store.ErrUnavailable
	}
	return nil
}

// Close marks the store unusable. Stored documents are dropped.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.status, s.contacts, s.analytics = nil, nil, nil
	return nil
}
