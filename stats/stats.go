// Package stats derives scalar descriptive statistics from noise signals
// and their power spectra.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/laserjobs/ZetaNoise/spectrum"
)

// ErrInvalidPeakCount is returned for a non-positive peak count.
var ErrInvalidPeakCount = errors.New("stats: peak count must be > 0")

// DefaultNumPeaks is the peak count used by the generator surface when the
// caller does not choose one.
const DefaultNumPeaks = 20

// Summary holds the descriptive statistics of a signal.
type Summary struct {
	Mean              float64 // arithmetic mean of the raw signal
	Std               float64 // population standard deviation of the raw signal
	SpectrumMeanPower float64 // mean over all one-sided spectrum powers
	AvgPeakSpacing    float64 // mean frequency gap between the top spectral peaks
}

// Summarize computes a Summary over signal.
//
// The numPeaks largest power bins are selected (clamped to the bin count),
// their frequencies sorted ascending, and AvgPeakSpacing is the mean of the
// consecutive differences. With fewer than two peaks the spacing is 0.
func Summarize(signal []float64, numPeaks int) (Summary, error) {
	if numPeaks <= 0 {
		return Summary{}, ErrInvalidPeakCount
	}

	freqs, powers, err := spectrum.Power(signal)
	if err != nil {
		return Summary{}, fmt.Errorf("stats: %w", err)
	}

	mean, variance := moments(signal)

	if numPeaks > len(powers) {
		numPeaks = len(powers)
	}

	meanPower := 0.0
	if len(powers) > 0 {
		meanPower = stat.Mean(powers, nil)
	}

	return Summary{
		Mean:              mean,
		Std:               math.Sqrt(variance),
		SpectrumMeanPower: meanPower,
		AvgPeakSpacing:    avgPeakSpacing(freqs, powers, numPeaks),
	}, nil
}

// moments returns the mean and population variance of signal in a single
// pass, using Welford's update for numerical stability.
func moments(signal []float64) (mean, variance float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0
	}

	var m2 float64

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni

		m2 += delta * deltaN * float64(i)
		mean += deltaN
	}

	return mean, m2 / float64(n)
}

// avgPeakSpacing selects the numPeaks largest powers and returns the mean
// gap between their ascending frequencies.
func avgPeakSpacing(freqs, powers []float64, numPeaks int) float64 {
	if numPeaks < 2 {
		return 0
	}

	sorted := append([]float64(nil), powers...)
	inds := make([]int, len(sorted))
	floats.Argsort(sorted, inds)

	peakFreqs := make([]float64, 0, numPeaks)
	for _, i := range inds[len(inds)-numPeaks:] {
		peakFreqs = append(peakFreqs, freqs[i])
	}

	sort.Float64s(peakFreqs)

	spacings := make([]float64, numPeaks-1)
	for i := range spacings {
		spacings[i] = peakFreqs[i+1] - peakFreqs[i]
	}

	return stat.Mean(spacings, nil)
}
