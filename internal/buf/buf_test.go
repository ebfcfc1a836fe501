package buf

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	s := make([]float64, 4, 8)

	out := EnsureLen(s, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(s) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(s))
	}
}

func TestEnsureLenGrow(t *testing.T) {
	s := make([]float64, 2)

	out := EnsureLen(s, 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}
}

func TestEnsureLenNonPositive(t *testing.T) {
	out := EnsureLen([]float64{1, 2, 3}, 0)
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestZero(t *testing.T) {
	s := []float64{1, 2, 3}
	Zero(s)

	for i, v := range s {
		if v != 0 {
			t.Fatalf("s[%d] = %v, want 0", i, v)
		}
	}
}
