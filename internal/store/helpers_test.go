package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/isebirbax/portfolio/internal/kv"
)

var errBoom = errors.New("boom")

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// flakyBackend wraps Memory and fails reads or writes on demand.
type flakyBackend struct {
	*kv.Memory
	mu       sync.Mutex
	failGet  map[string]bool
	failAll  bool
	failSet  bool
	setCalls int
}

func newFlaky(seed map[string]string) *flakyBackend {
	return &flakyBackend{Memory: kv.NewMemoryFrom(seed), failGet: map[string]bool{}}
}

func (f *flakyBackend) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	fail := f.failAll || f.failGet[key]
	f.mu.Unlock()
	if fail {
		return "", false, errBoom
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyBackend) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.setCalls++
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return errBoom
	}
	return f.Memory.Set(ctx, key, value)
}

func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, b kv.Backend) *Store {
	t.Helper()
	s, _ := Open(context.Background(), b, WithClock(func() time.Time { return fixedNow }), WithIDGenerator(seqIDs()))
	return s
}
