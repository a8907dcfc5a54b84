package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	pendingIdempotencyTTL = time.Minute
	reserveAttempts       = 3
)

// IdempotencyStore records which entity an Idempotency-Key produced.
// Key format: idem:<scope>:<key>, value: <fingerprint>:<entity id>. A pending
// reservation has an empty entity id.
type IdempotencyStore struct {
	client  redis.UniversalClient
	ttl     time.Duration
	pending time.Duration
}

func NewIdempotencyStore(client redis.UniversalClient, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl, pending: min(ttl, pendingIdempotencyTTL)}
}

// Reserve claims the key with SETNX. When the key is taken the current value
// is returned; if it expires between the two calls the claim is retried.
func (s *IdempotencyStore) Reserve(ctx context.Context, scope, key, fingerprint string) (ports.IdempotencyRecord, bool, error) {
	k := s.key(scope, key)
	for range reserveAttempts {
		ok, err := s.client.SetNX(ctx, k, encodeRecord(fingerprint, ""), s.pending).Result()
		if err != nil {
			return ports.IdempotencyRecord{}, false, fmt.Errorf("idempotency reserve: %w", err)
		}
		if ok {
			return ports.IdempotencyRecord{Fingerprint: fingerprint}, true, nil
		}

		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return ports.IdempotencyRecord{}, false, fmt.Errorf("idempotency reserve: %w", err)
		}
		return decodeRecord(val), false, nil
	}
	return ports.IdempotencyRecord{}, false, fmt.Errorf("idempotency reserve: key %q kept expiring", key)
}

// Remember overwrites the pending marker with the stored entity id.
func (s *IdempotencyStore) Remember(ctx context.Context, scope, key, fingerprint, entityID string) error {
	if err := s.client.Set(ctx, s.key(scope, key), encodeRecord(fingerprint, entityID), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, s.key(scope, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope, key string) string {
	return fmt.Sprintf("idem:%s:%s", scope, key)
}

func encodeRecord(fingerprint, entityID string) string {
	return fingerprint + ":" + entityID
}

// decodeRecord splits on the first colon; fingerprints are hex.
func decodeRecord(val string) ports.IdempotencyRecord {
	fp, id, _ := strings.Cut(val, ":")
	return ports.IdempotencyRecord{Fingerprint: fp, EntityID: id}
}
