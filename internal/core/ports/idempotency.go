package ports

import "context"

// IdempotencyRecord is what a store holds for one Idempotency-Key.
// EntityID is empty while the create that reserved the key is still running.
type IdempotencyRecord struct {
	Fingerprint string
	EntityID    string
}

// IdempotencyStore remembers which entity a client-supplied Idempotency-Key
// produced, so that a retried create returns the original record instead of
// storing a second one. Keys are scoped per resource.
type IdempotencyStore interface {
	// Reserve atomically claims key for a request with the given payload
	// fingerprint. When reserved is true the caller owns the key and must
	// either Remember or Release it. Otherwise rec is the existing claim.
	Reserve(ctx context.Context, scope, key, fingerprint string) (rec IdempotencyRecord, reserved bool, err error)
	// Remember completes a reservation with the id of the stored entity.
	Remember(ctx context.Context, scope, key, fingerprint, entityID string) error
	// Release drops a reservation whose create did not store anything.
	Release(ctx context.Context, scope, key string) error
}
