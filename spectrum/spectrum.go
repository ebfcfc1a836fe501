// Package spectrum computes one-sided spectra of real-valued signals.
//
// The package does not implement the FFT itself: power-of-two lengths go
// through a plan-based backend, every other length through a Bluestein-
// capable fallback. Only the non-negative-frequency half of the transform is
// returned, bin 0 (DC) through the bin just below Nyquist, under unit sample
// spacing.
package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"

	"github.com/laserjobs/ZetaNoise/internal/buf"
)

// ErrEmptySignal is returned when an empty signal is analyzed.
var ErrEmptySignal = errors.New("spectrum: signal must not be empty")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, sb *scratchBuf) {
	sb = scratchPool.Get().(*scratchBuf)
	sb.data = buf.EnsureLen(sb.data, 2*n)

	return sb.data[:n], sb.data[n:], sb
}

func putScratch(sb *scratchBuf) {
	scratchPool.Put(sb)
}

// Power returns the one-sided power spectrum of signal.
//
// Both returned slices have length floor(len(signal)/2). freqs[i] = i/n in
// cycles per sample, ascending from 0; powers[i] is the squared magnitude of
// the i-th transform coefficient.
func Power(signal []float64) (freqs, powers []float64, err error) {
	bins, err := transform(signal)
	if err != nil {
		return nil, nil, err
	}

	half := len(signal) / 2
	powers = make([]float64, half)

	re, im, sb := getScratch(half)
	for i := range half {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Power(powers, re, im)
	putScratch(sb)

	return binFrequencies(len(signal)), powers, nil
}

// Magnitudes returns the one-sided magnitude spectrum of signal, with the
// same bin layout as [Power].
func Magnitudes(signal []float64) (freqs, mags []float64, err error) {
	bins, err := transform(signal)
	if err != nil {
		return nil, nil, err
	}

	half := len(signal) / 2
	mags = make([]float64, half)

	re, im, sb := getScratch(half)
	for i := range half {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Magnitude(mags, re, im)
	putScratch(sb)

	return binFrequencies(len(signal)), mags, nil
}

// transform computes the full complex DFT of signal.
func transform(signal []float64) ([]complex128, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	if n&(n-1) != 0 {
		// Arbitrary lengths: Bluestein fallback. Padding is not an option
		// here, it would change the bin count and the bin values.
		return fft.FFTReal(signal), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: creating FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return out, nil
}

// binFrequencies returns the non-negative bin frequencies i/n for
// i = 0..floor(n/2)-1 under unit sample spacing.
func binFrequencies(n int) []float64 {
	half := n / 2
	freqs := make([]float64, half)

	for i := range freqs {
		freqs[i] = float64(i) / float64(n)
	}

	return freqs
}
