// Package zeros acquires and memoizes the ordinates of the nontrivial
// Riemann zeta zeros.
//
// A Provider returns the first N ordinates at a requested decimal precision,
// computing them through the zeta package on a cache miss and serving every
// later request for the same (N, precision) pair from memory. Cached slices
// are shared across callers and must be treated as read-only.
package zeros

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/laserjobs/ZetaNoise/zeta"
)

// Errors returned by the provider.
var (
	ErrInvalidCount     = errors.New("zeros: count must be >= 1")
	ErrInvalidPrecision = errors.New("zeros: precision must be >= 1")
)

// Routine computes the first n zero ordinates at the given decimal
// precision. The default routine is [zeta.Zeros].
type Routine func(ctx context.Context, n, precision int) ([]float64, error)

// Provider serves zero ordinates with (count, precision)-keyed memoization.
type Provider struct {
	cache   *Cache
	logger  *logrus.Logger
	routine Routine
}

// Option configures a Provider.
type Option func(*Provider)

// WithCache injects the cache instance. The default is the shared
// process-wide cache.
func WithCache(c *Cache) Option {
	return func(p *Provider) {
		if c != nil {
			p.cache = c
		}
	}
}

// WithLogger enables diagnostic logging. The provider emits a notice before
// a computation that may run long, and the elapsed time at debug level.
func WithLogger(logger *logrus.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithRoutine replaces the zero-computation routine.
func WithRoutine(r Routine) Option {
	return func(p *Provider) {
		if r != nil {
			p.routine = r
		}
	}
}

// NewProvider creates a provider backed by the shared default cache and the
// zeta package routine.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		cache:   DefaultCache(),
		routine: zeta.Zeros,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// Get returns the ordinates of the first n nontrivial zeta zeros at the
// requested decimal precision.
//
// For a fixed (n, precision) the result is identical across calls: zero
// ordinates are mathematical constants and the routine is deterministic.
// Concurrent first requests for the same key may compute redundantly; the
// last writer wins and readers never observe a partial entry. There are no
// retries: a routine failure propagates unchanged.
func (p *Provider) Get(ctx context.Context, n, precision int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	if precision < 1 {
		return nil, ErrInvalidPrecision
	}

	key := Key{N: n, Precision: precision}
	if cached, ok := p.cache.Get(key); ok {
		return cached, nil
	}

	if p.logger != nil {
		p.logger.WithFields(logrus.Fields{
			"count":     n,
			"precision": precision,
		}).Info("computing zeta zeros; this may take a while for large counts")
	}

	start := time.Now()

	ordinates, err := p.routine(ctx, n, precision)
	if err != nil {
		return nil, fmt.Errorf("zeros: computing first %d ordinates: %w", n, err)
	}

	if p.logger != nil {
		p.logger.WithField("elapsed", time.Since(start)).Debug("zeta zeros computed")
	}

	p.cache.Put(key, ordinates)

	return ordinates, nil
}
