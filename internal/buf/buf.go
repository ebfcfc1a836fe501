// Package buf provides scratch-slice helpers shared by the synthesis and
// spectrum packages.
package buf

// EnsureLen returns a slice with the requested length, reusing the capacity
// of scratch when possible. The returned contents are unspecified.
func EnsureLen(scratch []float64, n int) []float64 {
	if n <= 0 {
		return scratch[:0]
	}
	if cap(scratch) >= n {
		return scratch[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in s to 0.
func Zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
