package repository

import "github.com/wekesa/attache/internal/domain/clock"

// Option applies a configuration option to the roster.
type Option func(*roster)

// WithClock sets the time source used to stamp feedback entries.
func WithClock(c clock.Clock) Option {
	return func(r *roster) {
		if c != nil {
			r.clock = c
		}
	}
}
