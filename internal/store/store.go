// Package store is the site's local record store: documents, services, contact
// messages and the admin credentials, each kept as one JSON value under a fixed
// key in a kv.Backend.
//
// Reads never fail. A missing key is seeded with built-in data, and a value that
// cannot be read or decoded falls back to built-in data without being
// overwritten. Callers that need to know which path was taken use the Load*
// methods, which return a Result.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/isebirbax/portfolio/pkg/logger"
	"github.com/isebirbax/portfolio/pkg/metrics"
)

// Store serializes every operation so each mutation is one read-modify-write.
// Writers in other processes sharing the medium are not coordinated; the last
// write wins.
type Store struct {
	mu     sync.Mutex
	kv     kv.Backend
	layout Layout
	now    func() time.Time
	newID  func() string
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the random UUID source for new record ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLayout replaces the stable and legacy key names.
func WithLayout(l Layout) Option {
	return func(s *Store) { s.layout = l }
}

// New returns a store over b without migrating; most callers want Open.
func New(b kv.Backend, opts ...Option) *Store {
	s := &Store{
		kv:     b,
		layout: DefaultLayout(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open returns a store over b after copying forward any legacy keys.
func Open(ctx context.Context, b kv.Backend, opts ...Option) (*Store, MigrationReport) {
	s := New(b, opts...)
	return s, s.Migrate(ctx)
}

// Backend exposes the medium, e.g. for readiness checks.
func (s *Store) Backend() kv.Backend { return s.kv }

func present(v string, ok bool) bool { return ok && v != "" }

// load reads collection c. seed controls whether an absent key gets the
// defaults written to it. Callers hold s.mu.
func load[T any](ctx context.Context, s *Store, c Collection, defaults func(time.Time) T, seed bool) Result[T] {
	r, _ := read(ctx, s, c, defaults, seed)
	return r
}

// read is load that also returns the stored JSON when Value was decoded from
// it. raw is empty when Value came from defaults.
func read[T any](ctx context.Context, s *Store, c Collection, defaults func(time.Time) T, seed bool) (Result[T], string) {
	key := s.layout[c].Stable
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logger.Warnf("store: read %s (%s) failed, serving defaults: %v", c, key, err)
		metrics.StoreFallbacks.WithLabelValues(string(c), string(ReasonUnavailable)).Inc()
		return Result[T]{Value: defaults(s.now()), Fallback: ReasonUnavailable, Err: err}, ""
	}
	if !present(raw, ok) {
		v := defaults(s.now())
		if !seed {
			return Result[T]{Value: v}, ""
		}
		if err := save(ctx, s, c, v); err != nil {
			logger.Warnf("store: seeding %s failed: %v", c, err)
			return Result[T]{Value: v}, ""
		}
		metrics.StoreSeeds.WithLabelValues(string(c)).Inc()
		logger.Infof("store: seeded %s with built-in data", c)
		return Result[T]{Value: v, Seeded: true}, ""
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warnf("store: %s (%s) holds malformed data, serving defaults: %v", c, key, err)
		metrics.StoreFallbacks.WithLabelValues(string(c), string(ReasonCorrupt)).Inc()
		return Result[T]{Value: defaults(s.now()), Fallback: ReasonCorrupt, Err: err}, ""
	}
	return Result[T]{Value: v}, raw
}

func save[T any](ctx context.Context, s *Store, c Collection, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	return saveRaw(ctx, s, c, string(b))
}

func saveRaw(ctx context.Context, s *Store, c Collection, raw string) error {
	if err := s.kv.Set(ctx, s.layout[c].Stable, raw); err != nil {
		metrics.StoreWrites.WithLabelValues(string(c), "error").Inc()
		return fmt.Errorf("write %s: %w", c, err)
	}
	metrics.StoreWrites.WithLabelValues(string(c), "ok").Inc()
	return nil
}

// mutateRecords loads list collection c, applies fn to its raw records and
// persists the result when fn reports a change. A collection that fell back
// to defaults because it was corrupt is replaced by defaults plus the change;
// one that could not be read is never written. Callers hold s.mu.
func mutateRecords[T any](ctx context.Context, s *Store, c Collection, defaults func(time.Time) []T, fn func(records) (records, bool, error)) (bool, error) {
	r, raw := read(ctx, s, c, defaults, true)
	if r.Fallback == ReasonUnavailable {
		return false, fmt.Errorf("%s: %w", c, ErrUnavailable)
	}
	var recs records
	var err error
	if raw != "" {
		err = json.Unmarshal([]byte(raw), &recs)
	} else {
		recs, err = toRecords(r.Value)
	}
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", c, err)
	}
	next, changed, err := fn(recs)
	if err != nil || !changed {
		return false, err
	}
	if err := saveRaw(ctx, s, c, next.encode()); err != nil {
		return false, err
	}
	return true, nil
}
