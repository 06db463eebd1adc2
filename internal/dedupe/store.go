package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wa:delivery:"

// Store marks WhatsApp message ids as processed so Meta webhook redeliveries
// are handled once. A nil Store disables deduplication.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a dedupe store. Returns nil when the client is nil.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Seen records the message id and reports whether it was already present.
func (s *Store) Seen(ctx context.Context, messageID string) (bool, error) {
	if s == nil || messageID == "" {
		return false, nil
	}
	set, err := s.client.SetNX(ctx, keyPrefix+messageID, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe: setnx: %w", err)
	}
	return !set, nil
}
