// Package zetanoise generates synthetic noise whose spectral content is
// modulated by the imaginary parts of the nontrivial Riemann zeta zeros,
// optionally perturbed by a GUE-inspired repulsion term.
//
// A Generator acquires the zero ordinates once at construction (memoized
// process-wide per count and precision) and then produces signals, power
// spectra, and summary statistics. Data flows strictly forward:
// zeros -> signal -> spectrum -> stats; every returned slice is newly
// allocated and owned by the caller.
package zetanoise

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/laserjobs/ZetaNoise/noise"
	"github.com/laserjobs/ZetaNoise/spectrum"
	"github.com/laserjobs/ZetaNoise/stats"
	"github.com/laserjobs/ZetaNoise/zeros"
)

// Defaults mirrored by the command-line tool.
const (
	DefaultNumZeros  = 100
	DefaultPrecision = 50
	DefaultGUEScale  = 0.01
	DefaultLength    = 1024
	DefaultAmplitude = 0.1
	DefaultNumPeaks  = stats.DefaultNumPeaks
)

// Generator produces zeta-modulated noise from a fixed configuration.
// The configuration is immutable for the lifetime of the instance.
type Generator struct {
	numZeros  int
	precision int
	gueScale  float64
	zeros     []float64
	synth     *noise.Synthesizer
}

type config struct {
	ctx     context.Context
	cache   *zeros.Cache
	logger  *logrus.Logger
	routine zeros.Routine
}

// Option configures generator construction.
type Option func(*config)

// WithCache injects the zero cache used during construction. The default is
// the shared process-wide cache.
func WithCache(c *zeros.Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithLogger enables diagnostic logging during zero acquisition.
func WithLogger(logger *logrus.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithContext sets the context governing zero acquisition, which may run
// long for large zero counts. The default is context.Background().
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		if ctx != nil {
			cfg.ctx = ctx
		}
	}
}

// WithRoutine replaces the zero-computation routine. Intended for tests.
func WithRoutine(r zeros.Routine) Option {
	return func(cfg *config) {
		cfg.routine = r
	}
}

// New creates a generator over the first numZeros zero ordinates computed at
// the given decimal precision. gueScale scales the repulsion perturbation;
// zero disables it.
//
// Construction triggers the zero acquisition and therefore may take a while
// on a cold cache for large counts.
func New(numZeros, precision int, gueScale float64, opts ...Option) (*Generator, error) {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	providerOpts := []zeros.Option{
		zeros.WithCache(cfg.cache),
		zeros.WithLogger(cfg.logger),
		zeros.WithRoutine(cfg.routine),
	}

	provider := zeros.NewProvider(providerOpts...)

	ordinates, err := provider.Get(cfg.ctx, numZeros, precision)
	if err != nil {
		return nil, err
	}

	synth, err := noise.New(ordinates, noise.WithGUEScale(gueScale))
	if err != nil {
		return nil, err
	}

	return &Generator{
		numZeros:  numZeros,
		precision: precision,
		gueScale:  gueScale,
		zeros:     ordinates,
		synth:     synth,
	}, nil
}

// NumZeros returns the configured zero count.
func (g *Generator) NumZeros() int { return g.numZeros }

// Precision returns the configured decimal precision.
func (g *Generator) Precision() int { return g.precision }

// GUEScale returns the configured repulsion scale.
func (g *Generator) GUEScale() float64 { return g.gueScale }

// Zeros returns a copy of the zero ordinates the generator modulates with.
func (g *Generator) Zeros() []float64 {
	return append([]float64(nil), g.zeros...)
}

// Generate produces a noise signal of the given length. Pass
// [noise.WithSeed] for reproducible output; without it the signal is
// non-deterministic by design.
func (g *Generator) Generate(length int, amplitude float64, opts ...noise.GenOption) ([]float64, error) {
	return g.synth.Generate(length, amplitude, opts...)
}

// Spectrum returns the one-sided power spectrum of signal: floor(n/2)
// ascending non-negative frequencies (unit sample spacing) and the squared
// transform magnitudes.
func (g *Generator) Spectrum(signal []float64) (freqs, powers []float64, err error) {
	return spectrum.Power(signal)
}

// Stats summarizes signal: raw mean and population standard deviation, mean
// spectral power, and the average spacing between the numPeaks largest
// spectral peaks.
func (g *Generator) Stats(signal []float64, numPeaks int) (stats.Summary, error) {
	return stats.Summarize(signal, numPeaks)
}
