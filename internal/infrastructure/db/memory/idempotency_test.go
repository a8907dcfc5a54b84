package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/holamundo/registry-api/internal/core/ports"
)

func TestIdempotencyStore_ReserveRememberRelease(t *testing.T) {
	s := NewIdempotencyStore(time.Minute)
	ctx := context.Background()

	rec, ok, err := s.Reserve(ctx, "users", "k1", "fp")
	if err != nil || !ok || rec.Fingerprint != "fp" || rec.EntityID != "" {
		t.Fatalf("first Reserve = (%+v, %v, %v), want a fresh claim", rec, ok, err)
	}

	rec, ok, _ = s.Reserve(ctx, "users", "k1", "fp")
	if ok || rec.EntityID != "" {
		t.Fatalf("second Reserve = (%+v, %v), want pending claim", rec, ok)
	}

	if err := s.Remember(ctx, "users", "k1", "fp", "id-1"); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	rec, ok, _ = s.Reserve(ctx, "users", "k1", "other")
	if ok || rec != (ports.IdempotencyRecord{Fingerprint: "fp", EntityID: "id-1"}) {
		t.Errorf("Reserve after Remember = (%+v, %v), want stored record", rec, ok)
	}

	if _, ok, _ := s.Reserve(ctx, "forms", "k1", "fp"); !ok {
		t.Error("keys must be scoped per resource")
	}

	_ = s.Release(ctx, "users", "k1")
	if _, ok, _ := s.Reserve(ctx, "users", "k1", "fp"); !ok {
		t.Error("released key must be claimable again")
	}
}

func TestIdempotencyStore_ConcurrentReserveHasOneWinner(t *testing.T) {
	s := NewIdempotencyStore(time.Minute)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := s.Reserve(context.Background(), "users", "same", "fp"); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly one reservation, got %d", wins)
	}
}

func TestIdempotencyStore_Expiry(t *testing.T) {
	s := NewIdempotencyStore(10 * time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	// An abandoned reservation frees the key after the pending TTL.
	_, _, _ = s.Reserve(ctx, "users", "stale", "fp")
	now = now.Add(pendingIdempotencyTTL)
	if _, ok, _ := s.Reserve(ctx, "users", "stale", "fp"); !ok {
		t.Error("abandoned reservation must expire")
	}

	_ = s.Remember(ctx, "users", "k", "fp", "id")
	now = now.Add(10*time.Minute - time.Second)
	if _, ok, _ := s.Reserve(ctx, "users", "k", "fp"); ok {
		t.Error("key must still be live before the TTL")
	}
	now = now.Add(time.Second)
	_ = s.Remember(ctx, "forms", "other", "fp", "id-2")
	if _, found := s.entries["users:k"]; found {
		t.Error("expired entry must be purged")
	}
}
