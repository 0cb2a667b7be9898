package store

import (
	"context"
	"fmt"

	"github.com/isebirbax/portfolio/pkg/logger"
	"github.com/isebirbax/portfolio/pkg/metrics"
)

// MigrationAction is what Migrate did for one collection.
type MigrationAction string

const (
	// MigrationPresent: the stable key already had data; nothing was touched.
	MigrationPresent MigrationAction = "present"
	// MigrationCopied: a legacy value was copied verbatim to the stable key.
	MigrationCopied MigrationAction = "copied"
	// MigrationNone: neither the stable key nor any legacy key had data.
	MigrationNone MigrationAction = "none"
	// MigrationFailed: the backend errored; the collection is left as it was.
	MigrationFailed MigrationAction = "failed"
)

type MigrationOutcome struct {
	Collection Collection
	StableKey  string
	Action     MigrationAction
	// SourceKey is the legacy key copied from, set only for MigrationCopied.
	SourceKey string
	Err       error
}

type MigrationReport []MigrationOutcome

// Outcome returns the entry for c.
func (r MigrationReport) Outcome(c Collection) (MigrationOutcome, bool) {
	for _, o := range r {
		if o.Collection == c {
			return o, true
		}
	}
	return MigrationOutcome{}, false
}

// Failed reports whether any collection could not be checked or copied.
func (r MigrationReport) Failed() bool {
	for _, o := range r {
		if o.Action == MigrationFailed {
			return true
		}
	}
	return false
}

// Migrate copies legacy data forward. For each collection whose stable key is
// empty, the legacy keys are tried in order and the first non-empty value is
// copied unchanged. Stable data is never overwritten, so running it again is a
// no-op. Backend errors are reported in the result, never returned.
func (s *Store) Migrate(ctx context.Context) MigrationReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	report := make(MigrationReport, 0, len(collectionOrder))
	for _, c := range collectionOrder {
		ks, ok := s.layout[c]
		if !ok {
			continue
		}
		o := s.migrateOne(ctx, c, ks)
		metrics.StoreMigrations.WithLabelValues(string(c), string(o.Action)).Inc()
		switch o.Action {
		case MigrationCopied:
			logger.Infof("store: migrated %s from %s to %s", c, o.SourceKey, o.StableKey)
		case MigrationFailed:
			logger.Warnf("store: migration of %s failed: %v", c, o.Err)
		default:
			logger.Debugf("store: migration of %s: %s", c, o.Action)
		}
		report = append(report, o)
	}
	return report
}

func (s *Store) migrateOne(ctx context.Context, c Collection, ks KeySet) MigrationOutcome {
	o := MigrationOutcome{Collection: c, StableKey: ks.Stable}
	v, ok, err := s.kv.Get(ctx, ks.Stable)
	if err != nil {
		o.Action, o.Err = MigrationFailed, fmt.Errorf("read %s: %w", ks.Stable, err)
		return o
	}
	if present(v, ok) {
		o.Action = MigrationPresent
		return o
	}
	for _, legacy := range ks.Legacy {
		v, ok, err := s.kv.Get(ctx, legacy)
		if err != nil {
			// an older key must not win just because a newer one was unreadable
			o.Action, o.Err = MigrationFailed, fmt.Errorf("read %s: %w", legacy, err)
			return o
		}
		if !present(v, ok) {
			continue
		}
		if err := s.kv.Set(ctx, ks.Stable, v); err != nil {
			o.Action, o.Err = MigrationFailed, fmt.Errorf("write %s: %w", ks.Stable, err)
			return o
		}
		o.Action, o.SourceKey = MigrationCopied, legacy
		return o
	}
	o.Action = MigrationNone
	return o
}
