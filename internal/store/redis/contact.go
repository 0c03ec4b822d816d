package redis

import (
	"context"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// InsertContactMessage stores a contact message
func (s *Store) InsertContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	err := s.insert(ctx, s.keys.ContactMessage(msg.ID), s.keys.ContactIndex(), msg.ID, msg.Timestamp, msg, nil)
	if err != nil {
		return wrap("failed to save contact message", err)
	}
	return nil
}

// ListContactMessages returns up to limit contact messages, newest first
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	if limit <= 0 {
		return []*domain.ContactMessage{}, nil
	}

	ids, err := s.client.ZRevRange(ctx, s.keys.ContactIndex(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, wrap("failed to list contact message ids", err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.keys.ContactMessage(id)
	}

	msgs, err := loadDocs[domain.ContactMessage](ctx, s.client, keys)
	if err != nil {
		return nil, wrap("failed to load contact messages", err)
	}
	return msgs, nil
}

// CountContactMessages returns the size of the contact_messages collection
func (s *Store) CountContactMessages(ctx context.Context) (int64, error) {
	n, err := s.client.ZCard(ctx, s.keys.ContactIndex()).Result()
	if err != nil {
		return 0, wrap("failed to count contact messages", err)
	}
	return n, nil
}
