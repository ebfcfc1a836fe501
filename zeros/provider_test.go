package zeros

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
)

func TestGetLengthAndFirstOrdinate(t *testing.T) {
	p := NewProvider(WithCache(NewCache()))

	got, err := p.Get(context.Background(), 5, 50)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}

	if math.Abs(got[0]-14.134725) > 14.134725*1e-4 {
		t.Errorf("first ordinate = %v, want ~14.1347", got[0])
	}
}

func TestGetPrefixConsistency(t *testing.T) {
	p := NewProvider(WithCache(NewCache()))
	ctx := context.Background()

	small, err := p.Get(ctx, 3, 50)
	if err != nil {
		t.Fatalf("Get(3): %v", err)
	}

	large, err := p.Get(ctx, 7, 50)
	if err != nil {
		t.Fatalf("Get(7): %v", err)
	}

	for i := range small {
		if small[i] != large[i] {
			t.Errorf("prefix mismatch at %d: %v != %v", i, small[i], large[i])
		}
	}
}

func TestGetMemoizes(t *testing.T) {
	calls := 0
	p := NewProvider(
		WithCache(NewCache()),
		WithRoutine(func(ctx context.Context, n, precision int) ([]float64, error) {
			calls++
			out := make([]float64, n)
			for i := range out {
				out[i] = float64(i + 1)
			}
			return out, nil
		}),
	)
	ctx := context.Background()

	first, err := p.Get(ctx, 4, 30)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	second, err := p.Get(ctx, 4, 30)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if calls != 1 {
		t.Errorf("routine calls = %d, want 1", calls)
	}

	// Cache hits return the stored slice unchanged.
	if &first[0] != &second[0] {
		t.Error("cache hit returned a different slice")
	}
}

func TestGetKeyedByCountAndPrecision(t *testing.T) {
	calls := 0
	p := NewProvider(
		WithCache(NewCache()),
		WithRoutine(func(ctx context.Context, n, precision int) ([]float64, error) {
			calls++
			return make([]float64, n), nil
		}),
	)
	ctx := context.Background()

	mustGet := func(n, precision int) {
		t.Helper()
		if _, err := p.Get(ctx, n, precision); err != nil {
			t.Fatalf("Get(%d, %d): %v", n, precision, err)
		}
	}

	mustGet(4, 30)
	mustGet(4, 31) // distinct precision, distinct entry
	mustGet(5, 30) // distinct count, distinct entry
	mustGet(4, 30) // hit

	if calls != 3 {
		t.Errorf("routine calls = %d, want 3", calls)
	}
}

func TestGetInvalidArguments(t *testing.T) {
	p := NewProvider(WithCache(NewCache()))
	ctx := context.Background()

	if _, err := p.Get(ctx, 0, 50); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("count 0: err = %v, want ErrInvalidCount", err)
	}

	if _, err := p.Get(ctx, 5, 0); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("precision 0: err = %v, want ErrInvalidPrecision", err)
	}
}

func TestGetPropagatesRoutineFailure(t *testing.T) {
	boom := errors.New("routine broke")
	p := NewProvider(
		WithCache(NewCache()),
		WithRoutine(func(ctx context.Context, n, precision int) ([]float64, error) {
			return nil, boom
		}),
	)

	if _, err := p.Get(context.Background(), 5, 50); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped routine error", err)
	}
}

func TestGetConcurrent(t *testing.T) {
	cache := NewCache()
	p := NewProvider(
		WithCache(cache),
		WithRoutine(func(ctx context.Context, n, precision int) ([]float64, error) {
			out := make([]float64, n)
			for i := range out {
				out[i] = float64(i)
			}
			return out, nil
		}),
	)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			got, err := p.Get(ctx, 8, 20)
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			if len(got) != 8 {
				t.Errorf("len = %d, want 8", len(got))
			}
		}()
	}
	wg.Wait()

	if cache.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", cache.Len())
	}
}

func TestDefaultCacheShared(t *testing.T) {
	if DefaultCache() != DefaultCache() {
		t.Error("DefaultCache not stable")
	}
}
