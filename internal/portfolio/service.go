// Package portfolio holds the request pipeline behind the API: validate,
// stamp identity, persist, and the analytics summary.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/metrics"
	"github.com/MrSnakeDoc/folio/internal/store"
)

const (
	contactReceivedMessage  = "Message sent successfully! I'll get back to you within 24 hours."
	analyticsTrackedMessage = "Analytics tracked"
	analyticsFailedMessage  = "Failed to track analytics"
)

// IDFunc generates document identifiers.
type IDFunc func() string

// Clock returns the creation instant for new documents.
type Clock func() time.Time

// NewID returns a random UUIDv4 string.
func NewID() string { return uuid.NewString() }

// Now returns the current time in UTC.
func Now() time.Time { return time.Now().UTC() }

// Service is safe for concurrent use as long as its store is.
type Service struct {
	store  store.Store
	logger logger.Logger
	newID  IDFunc
	now    Clock
}

// Option customises a Service.
type Option func(*Service)

// WithIDFunc replaces the identifier factory.
func WithIDFunc(fn IDFunc) Option { return func(s *Service) { s.newID = fn } }

// WithClock replaces the clock.
func WithClock(fn Clock) Option { return func(s *Service) { s.now = fn } }

// NewService wires a Service around st.
func NewService(st store.Store, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: log,
		newID:  NewID,
		now:    Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateStatusCheck validates in and stores a new StatusCheck.
func (s *Service) CreateStatusCheck(ctx context.Context, in domain.StatusCheckInput) (*domain.StatusCheck, error) {
	if err := s.validate("status", in); err != nil {
		return nil, err
	}

	sc := domain.NewStatusCheck(in, s.newID(), s.now())
	if err := s.store.InsertStatusCheck(ctx, sc); err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	return sc, nil
}

// ListStatusChecks returns at most store.MaxStatusChecks status checks.
func (s *Service) ListStatusChecks(ctx context.Context) ([]*domain.StatusCheck, error) {
	checks, err := s.store.ListStatusChecks(ctx, store.MaxStatusChecks)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}

// SubmitContact validates in and stores a new unread ContactMessage.
func (s *Service) SubmitContact(ctx context.Context, in domain.ContactInput) (*domain.ContactReceipt, error) {
	if err := s.validate("contact", in); err != nil {
		return nil, err
	}

	msg := domain.NewContactMessage(in, s.newID(), s.now())
	if err := s.store.InsertContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("submit contact message: %w", err)
	}

	metrics.ContactSubmissions.Inc()
	s.logger.Info("contact message received",
		logger.String("id", msg.ID),
		logger.Int("subject_len", len(msg.Subject)))

	return &domain.ContactReceipt{
		Success: true,
		Message: contactReceivedMessage,
		ID:      msg.ID,
	}, nil
}

// ListContactMessages returns the newest store.MaxContactMessages messages.
func (s *Service) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	msgs, err := s.store.ListContactMessages(ctx, store.MaxContactMessages)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

// TrackEvent stores an analytics event.
//
// Storage failures never reach the caller: tracking is best effort and must
// not break the page that reported it, so a failed write comes back as
// TrackResult{Success: false}. Validation errors are still returned.
func (s *Service) TrackEvent(ctx context.Context, in domain.AnalyticsInput) (*domain.TrackResult, error) {
	if err := s.validate("analytics", in); err != nil {
		return nil, err
	}

	ev := domain.NewAnalyticsEvent(in, s.newID(), s.now())
	if err := s.store.InsertAnalyticsEvent(ctx, ev); err != nil {
		metrics.AnalyticsEvents.WithLabelValues("failed").Inc()
		s.logger.Error("error tracking analytics",
			logger.String("section", ev.Section),
			logger.Error(err))
		return &domain.TrackResult{Success: false, Message: analyticsFailedMessage}, nil
	}

	metrics.AnalyticsEvents.WithLabelValues("tracked").Inc()
	return &domain.TrackResult{Success: true, Message: analyticsTrackedMessage}, nil
}

// Summary recomputes the analytics summary from the store on every call.
func (s *Service) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	visits, err := s.store.CountAnalyticsEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("count analytics events: %w", err)
	}

	contacts, err := s.store.CountContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}

	rows, err := s.store.PopularSections(ctx, store.PopularSectionsLimit)
	if err != nil {
		return nil, fmt.Errorf("popular sections: %w", err)
	}

	sections := make([]string, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, row.Section)
	}

	return &domain.AnalyticsSummary{
		TotalVisits:        visits,
		ContactSubmissions: contacts,
		PopularSections:    sections,
	}, nil
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) validate(resource string, in any) error {
	if err := domain.Validate(in); err != nil {
		if domain.IsValidation(err) {
			metrics.ValidationFailures.WithLabelValues(resource).Inc()
		}
		return err
	}
	return nil
}
