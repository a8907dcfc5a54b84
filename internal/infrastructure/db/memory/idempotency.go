package memory

import (
	"context"
	"sync"
	"time"

	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	// A reservation that is never remembered or released (crashed request)
	// frees the key after this long.
	pendingIdempotencyTTL = time.Minute
)

type idempotencyEntry struct {
	record    ports.IdempotencyRecord
	expiresAt time.Time
}

// IdempotencyStore maps (scope, key) to the entity a create produced. Entries
// expire after the configured TTL and are purged lazily.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending time.Duration
	now     func() time.Time
	entries map[string]idempotencyEntry
}

// NewIdempotencyStore returns a store whose keys live for ttl (24h if ttl <= 0).
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{
		ttl:     ttl,
		pending: min(ttl, pendingIdempotencyTTL),
		now:     time.Now,
		entries: make(map[string]idempotencyEntry),
	}
}

// Reserve claims the key under the store lock, so exactly one caller wins.
func (s *IdempotencyStore) Reserve(_ context.Context, scope, key, fingerprint string) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := scope + ":" + key
	now := s.now()
	if e, ok := s.entries[k]; ok && now.Before(e.expiresAt) {
		return e.record, false, nil
	}
	rec := ports.IdempotencyRecord{Fingerprint: fingerprint}
	s.entries[k] = idempotencyEntry{record: rec, expiresAt: now.Add(s.pending)}
	return rec, true, nil
}

func (s *IdempotencyStore) Remember(_ context.Context, scope, key, fingerprint, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[scope+":"+key] = idempotencyEntry{
		record:    ports.IdempotencyRecord{Fingerprint: fingerprint, EntityID: entityID},
		expiresAt: s.now().Add(s.ttl),
	}
	s.purgeExpired()
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, scope+":"+key)
	return nil
}

// purgeExpired must be called with mu held.
func (s *IdempotencyStore) purgeExpired() {
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
