// Package store defines the persistence contract shared by every backend.
//
// Each collection is independent: a write touches exactly one collection and
// there are no references between documents of different collections.
package store

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

const (
	// MaxStatusChecks caps GET /api/status.
	MaxStatusChecks = 1000
	// MaxContactMessages caps GET /api/contact.
	MaxContactMessages = 100
	// PopularSectionsLimit is the size of the popular sections aggregate.
	PopularSectionsLimit = 5
)

// ErrUnavailable is returned once a backend has been closed.
var ErrUnavailable = errors.New("store unavailable")

// StatusChecks is the status_checks collection.
type StatusChecks interface {
	InsertStatusCheck(ctx context.Context, sc *domain.StatusCheck) error
	// ListStatusChecks returns up to limit documents in insertion order.
	ListStatusChecks(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}

// ContactMessages is the contact_messages collection.
type ContactMessages interface {
	InsertContactMessage(ctx context.Context, msg *domain.ContactMessage) error
	// ListContactMessages returns up to limit documents, newest first.
	ListContactMessages(ctx context.Context, limit int) ([]*domain.ContactMessage, error)
	CountContactMessages(ctx context.Context) (int64, error)
}

// AnalyticsEvents is the analytics collection.
type AnalyticsEvents interface {
	InsertAnalyticsEvent(ctx context.Context, ev *domain.AnalyticsEvent) error
	CountAnalyticsEvents(ctx context.Context) (int64, error)
	// PopularSections groups events by section and returns at most limit
	// rows ordered by descending count. Ties are backend-defined.
	PopularSections(ctx context.Context, limit int) ([]domain.SectionCount, error)
}

// Store bundles the three collections with lifecycle methods.
type Store interface {
	StatusChecks
	ContactMessages
	AnalyticsEvents

	Ping(ctx context.Context) error
	Close() error
}
