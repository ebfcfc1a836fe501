package zeta

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Errors returned by the zero search.
var (
	ErrInvalidCount     = errors.New("zeta: zero count must be >= 1")
	ErrInvalidPrecision = errors.New("zeta: precision must be >= 1")
	ErrSearchFailed     = errors.New("zeta: zero search exceeded scan bound")
)

// maxOrdinate bounds the sign-change scan. Reaching it means the search went
// badly wrong; the zero density guarantees brackets long before this.
const maxOrdinate = 1e7

// refineDigits caps the requested decimal precision at what float64 root
// refinement can resolve.
const refineDigits = 12

// bracket is a sign-change interval [lo, hi] with Z(lo)*Z(hi) <= 0.
type bracket struct {
	lo, hi float64
	zlo    float64
}

// Zero returns the ordinate of the k-th nontrivial zeta zero (1-based),
// refined to a tolerance of 10^-min(precision, 12).
func Zero(ctx context.Context, k, precision int) (float64, error) {
	zeros, err := Zeros(ctx, k, precision)
	if err != nil {
		return 0, err
	}

	return zeros[k-1], nil
}

// Zeros returns the ordinates of the first n nontrivial zeta zeros in
// increasing order.
//
// Brackets are located by a sequential sign-change scan of Z with a step of
// one eighth of the local mean zero gap, then refined concurrently by
// bisection. The result is deterministic for fixed (n, precision). The scan
// checks ctx between brackets and aborts early when the context is
// cancelled.
func Zeros(ctx context.Context, n, precision int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}

	if precision < 1 {
		return nil, ErrInvalidPrecision
	}

	brackets, err := scanBrackets(ctx, n)
	if err != nil {
		return nil, err
	}

	tol := math.Pow(10, -float64(min(precision, refineDigits)))
	out := make([]float64, n)

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range brackets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out[i] = bisect(b, tol)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("zeta: zero refinement: %w", err)
	}

	return out, nil
}

// scanBrackets walks Z upward from below the first zero and collects the
// first n sign-change intervals.
func scanBrackets(ctx context.Context, n int) ([]bracket, error) {
	brackets := make([]bracket, 0, n)

	t := 10.0 // the first ordinate is near 14.13; Z has no zeros below it
	zt := Z(t)

	for len(brackets) < n {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("zeta: zero scan: %w", err)
		}

		if t > maxOrdinate {
			return nil, ErrSearchFailed
		}

		next := t + scanStep(t)
		znext := Z(next)

		if zt == 0 || zt*znext < 0 {
			brackets = append(brackets, bracket{lo: t, hi: next, zlo: zt})
		}

		t, zt = next, znext
	}

	return brackets, nil
}

// scanStep returns one eighth of the local mean gap 2pi/ln(t/2pi) between
// consecutive zeros near ordinate t.
func scanStep(t float64) float64 {
	logT := math.Log(t / (2 * math.Pi))
	if logT < 1 {
		logT = 1
	}

	return 2 * math.Pi / (8 * logT)
}

// bisect refines a sign-change bracket down to width tol and returns the
// midpoint.
func bisect(b bracket, tol float64) float64 {
	lo, hi := b.lo, b.hi
	zlo := b.zlo

	for range 200 {
		if hi-lo <= tol {
			break
		}

		mid := (lo + hi) / 2

		zmid := Z(mid)
		if zmid == 0 {
			return mid
		}

		if zlo*zmid < 0 {
			hi = mid
		} else {
			lo, zlo = mid, zmid
		}
	}

	return (lo + hi) / 2
}
