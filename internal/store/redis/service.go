package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/store"
)

// Store persists portfolio documents in Redis.
//
// Every document is a JSON string. A collection write is a single MULTI/EXEC
// that stores the document and indexes it, so readers never see an indexed id
// without its document.
type Store struct {
	client redis.UniversalClient
	keys   Keys
}

var _ store.Store = (*Store)(nil)

// NewStore creates a new Redis store. The store owns client and closes it in Close.
func NewStore(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		client: client,
		keys:   NewKeys(prefix),
	}
}

// Ping checks that Redis answers
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return wrap("ping redis", err)
	}
	return nil
}

// Close releases the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}

// insert writes doc under docKey and adds id to indexKey scored by at.
// extra may queue more commands in the same transaction.
func (s *Store) insert(ctx context.Context, docKey, indexKey, id string, at time.Time, doc any, extra func(redis.Pipeliner)) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", id, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, docKey, data, 0)
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: score(at), Member: id})
		if extra != nil {
			extra(pipe)
		}
		return nil
	})
	return err
}

// loadDocs fetches documents with MGET, skipping ids whose document vanished.
func loadDocs[T any](ctx context.Context, client redis.UniversalClient, keys []string) ([]*T, error) {
	docs := make([]*T, 0, len(keys))
	if len(keys) == 0 {
		return docs, nil
	}

	vals, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		doc := new(T)
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", keys[i], err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func score(at time.Time) float64 {
	return float64(at.UnixMicro())
}

// wrap annotates err and maps a closed client to store.ErrUnavailable.
func wrap(op string, err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("%s: %w", op, store.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
