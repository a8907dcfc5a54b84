package service

import (
	"time"

	"github.com/holamundo/registry-api/internal/core/validation"
)

type options struct {
	now validation.Clock
}

// Option configures a service.
type Option func(*options)

// WithClock overrides the clock used for timestamps and date rules.
func WithClock(now validation.Clock) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
