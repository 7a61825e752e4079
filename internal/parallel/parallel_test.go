package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestForCoversRange(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{{10, 3}, {1, 8}, {7, 7}, {100, 1}, {5, 0}} {
		hits := make([]int32, tc.n)
		err := For(tc.n, tc.workers, func(_, start, end int) error {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("n=%d workers=%d: %v", tc.n, tc.workers, err)
		}
		for i, h := range hits {
			if h != 1 {
				t.Errorf("n=%d workers=%d: index %d visited %d times", tc.n, tc.workers, i, h)
			}
		}
	}
}

func TestForError(t *testing.T) {
	boom := errors.New("boom")
	err := For(10, 4, func(w, _, _ int) error {
		if w == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}

	if err := For(0, 4, func(int, int, int) error { return boom }); err != nil {
		t.Errorf("empty range should not call fn, got %v", err)
	}
}
