package domain

import "errors"

var (
	// ErrIdempotencyInProgress is returned while another request holding the
	// same Idempotency-Key has not finished creating its record.
	ErrIdempotencyInProgress = errors.New("a request with this idempotency key is still in progress")
	// ErrIdempotencyKeyReused is returned when an Idempotency-Key is sent
	// again with a different payload.
	ErrIdempotencyKeyReused = errors.New("idempotency key was already used with a different payload")
)
