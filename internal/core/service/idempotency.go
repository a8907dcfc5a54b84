package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// idempotencyGuard makes creates that carry the same Idempotency-Key store at
// most one record. Same-key calls in this process share one execution; calls
// from other processes are serialised by the store reservation.
type idempotencyGuard struct {
	store  ports.IdempotencyStore
	scope  string
	flight singleflight.Group
	logger zerolog.Logger
}

func newIdempotencyGuard(store ports.IdempotencyStore, scope string, logger zerolog.Logger) *idempotencyGuard {
	return &idempotencyGuard{store: store, scope: scope, logger: logger}
}

// createOps is what the guard needs from a service.
type createOps[R any] struct {
	// create validates and stores the record, returning it and its id.
	create func(context.Context) (R, string, error)
	// load rebuilds the replay result for a stored id.
	load func(context.Context, string) (R, error)
	// replayed marks a result as served from an earlier create.
	replayed func(R) R
	notFound error
}

// runIdempotent runs ops.create at most once for key and payload.
func runIdempotent[R any](ctx context.Context, g *idempotencyGuard, key string, payload any, ops createOps[R]) (R, error) {
	var zero R
	if key == "" || g == nil || g.store == nil {
		res, _, err := ops.create(ctx)
		return res, err
	}

	fp, err := fingerprint(payload)
	if err != nil {
		return zero, fmt.Errorf("fingerprint %s request: %w", g.scope, err)
	}

	leader := false
	v, err, _ := g.flight.Do(key+"\x00"+fp, func() (any, error) {
		leader = true
		return claim(ctx, g, key, fp, ops)
	})
	if err != nil {
		return zero, err
	}
	res := v.(R)
	if !leader {
		return ops.replayed(res), nil
	}
	return res, nil
}

func claim[R any](ctx context.Context, g *idempotencyGuard, key, fp string, ops createOps[R]) (R, error) {
	var zero R
	log := g.logger.With().Str("scope", g.scope).Str("idempotency_key", key).Logger()

	rec, reserved, err := g.store.Reserve(ctx, g.scope, key, fp)
	if err != nil {
		log.Warn().Err(err).Msg("idempotency reserve failed, creating without a key")
		res, _, err := ops.create(ctx)
		return res, err
	}
	if !reserved {
		switch {
		case rec.Fingerprint != fp:
			return zero, domain.ErrIdempotencyKeyReused
		case rec.EntityID == "":
			return zero, domain.ErrIdempotencyInProgress
		}
		res, err := ops.load(ctx, rec.EntityID)
		if err == nil {
			log.Info().Str("entity_id", rec.EntityID).Msg("idempotent replay")
			return ops.replayed(res), nil
		}
		if !errors.Is(err, ops.notFound) {
			return zero, fmt.Errorf("load %s for idempotent replay: %w", g.scope, err)
		}
		log.Warn().Err(err).Str("entity_id", rec.EntityID).Msg("record behind idempotency key is gone, creating again")
	}

	res, id, err := ops.create(ctx)
	if err != nil {
		if rerr := g.store.Release(ctx, g.scope, key); rerr != nil {
			log.Warn().Err(rerr).Msg("failed to release idempotency key")
		}
		return zero, err
	}
	if err := g.store.Remember(ctx, g.scope, key, fp, id); err != nil {
		log.Warn().Err(err).Msg("failed to store idempotency key")
	}
	return res, nil
}

// fingerprint hashes the JSON form of a request; map keys are sorted by
// encoding/json so equal payloads hash equally.
func fingerprint(payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
