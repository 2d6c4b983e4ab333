package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/antarid/antar/internal/pkg/constants"
)

// RedisStore keeps verification codes in Redis so issued codes survive
// process restarts. Redis expires entries on its own; Validate still
// re-checks the stored expiry instant against the clock.
type RedisStore struct {
	client *redis.Client
	clock  Clock
}

// NewRedisStore creates a Redis-backed store using wall-clock time.
func NewRedisStore(client *redis.Client) *RedisStore {
	return NewRedisStoreWithClock(client, func() time.Time { return time.Now().UTC() })
}

// NewRedisStoreWithClock creates a Redis-backed store reading time from clock.
func NewRedisStoreWithClock(client *redis.Client, clock Clock) *RedisStore {
	return &RedisStore{client: client, clock: clock}
}

// Issue generates a fresh code for the identifier, replacing any previous
// entry. A non-positive ttl falls back to DefaultTTL.
func (s *RedisStore) Issue(ctx context.Context, identifier string, ttl time.Duration) (*Entry, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := s.clock()
	entry := Entry{
		Identifier: identifier,
		Code:       generateCode(),
		IssuedAt:   now,
		ExpiresAt:  now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification code: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, identifier)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store verification code in Redis: %w", err)
	}

	return &entry, nil
}

// Validate reports whether candidate matches the live code for the
// identifier. A match leaves the entry in place.
func (s *RedisStore) Validate(ctx context.Context, identifier, candidate string) (bool, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, identifier)

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get verification code from Redis: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return false, fmt.Errorf("failed to unmarshal verification code: %w", err)
	}

	// Redis TTL normally removes the key first; the stored instant is
	// still checked in case the clocks disagree.
	if s.clock().After(entry.ExpiresAt) {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return false, fmt.Errorf("failed to delete expired verification code: %w", err)
		}
		return false, nil
	}

	return entry.Code == candidate, nil
}

// Invalidate removes the identifier's entry, if any.
func (s *RedisStore) Invalidate(ctx context.Context, identifier string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, identifier)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}
