package store

import (
	"context"
	"testing"

	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/isebirbax/portfolio/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const legacyDocs = `[{"id":"old","title":"Legacy","description":"","imageUrl":"https://img","category":"Diploma","status":"hidden","createdAt":1700000000000}]`

func TestMigrate_CopiesNewestLegacyKey(t *testing.T) {
	mem := kv.NewMemoryFrom(map[string]string{
		"ise_bir_bax_docs_v2": legacyDocs,
		"ise_bir_bax_docs":    `[{"id":"older"}]`,
	})
	s := New(mem)
	report := s.Migrate(context.Background())

	o, ok := report.Outcome(CollectionDocuments)
	require.True(t, ok)
	require.Equal(t, MigrationCopied, o.Action)
	require.Equal(t, "ise_bir_bax_docs_v2", o.SourceKey)

	stable, _, _ := mem.Get(context.Background(), "isebirbax.documents")
	require.Equal(t, legacyDocs, stable, "copied verbatim")
	// legacy data is left in place
	v, ok, _ := mem.Get(context.Background(), "ise_bir_bax_docs_v2")
	require.True(t, ok)
	require.Equal(t, legacyDocs, v)

	docs := s.Documents(context.Background())
	require.Len(t, docs, 1)
	require.Equal(t, "old", docs[0].ID)
	require.Equal(t, StatusHidden, docs[0].Status)
}

func TestMigrate_FallsBackToOldestKey(t *testing.T) {
	mem := kv.NewMemoryFrom(map[string]string{
		"ise_bir_bax_services": `[{"id":"s-old","title":"Old service","highlights":["a"]}]`,
	})
	report := New(mem).Migrate(context.Background())

	o, _ := report.Outcome(CollectionServices)
	require.Equal(t, MigrationCopied, o.Action)
	require.Equal(t, "ise_bir_bax_services", o.SourceKey)
	stable, _, _ := mem.Get(context.Background(), "isebirbax.services")
	require.Equal(t, `[{"id":"s-old","title":"Old service","highlights":["a"]}]`, stable)
}

func TestMigrate_SkipsEmptyLegacyValues(t *testing.T) {
	mem := kv.NewMemoryFrom(map[string]string{
		"ise_bir_bax_messages_v1": "",
		"ise_bir_bax_messages":    `[]`,
	})
	report := New(mem).Migrate(context.Background())
	o, _ := report.Outcome(CollectionMessages)
	require.Equal(t, MigrationCopied, o.Action)
	require.Equal(t, "ise_bir_bax_messages", o.SourceKey)
}

func TestMigrate_NeverOverwritesStableKey(t *testing.T) {
	stable := `[{"id":"current"}]`
	mem := kv.NewMemoryFrom(map[string]string{
		"isebirbax.documents": stable,
		"ise_bir_bax_docs_v2": legacyDocs,
	})
	report := New(mem).Migrate(context.Background())

	o, _ := report.Outcome(CollectionDocuments)
	require.Equal(t, MigrationPresent, o.Action)
	got, _, _ := mem.Get(context.Background(), "isebirbax.documents")
	require.Equal(t, stable, got)
}

func TestMigrate_Idempotent(t *testing.T) {
	mem := kv.NewMemoryFrom(map[string]string{
		"ise_bir_bax_docs":     legacyDocs,
		"ise_bir_bax_admin_v1": `{"username":"boss","password":"pw"}`,
	})
	s := New(mem)
	first := s.Migrate(context.Background())
	afterFirst := mem.Snapshot()

	second := s.Migrate(context.Background())
	require.Equal(t, afterFirst, mem.Snapshot())

	o1, _ := first.Outcome(CollectionCredentials)
	o2, _ := second.Outcome(CollectionCredentials)
	require.Equal(t, MigrationCopied, o1.Action)
	require.Equal(t, MigrationPresent, o2.Action)
	require.True(t, s.CheckCredentials(context.Background(), "boss", "pw"))
}

func TestMigrate_NothingToCopy(t *testing.T) {
	mem := kv.NewMemory()
	report := New(mem).Migrate(context.Background())
	require.Len(t, report, 4)
	for _, o := range report {
		require.Equal(t, MigrationNone, o.Action, o.Collection)
	}
	require.Empty(t, mem.Snapshot())
	require.False(t, report.Failed())
}

func TestMigrate_UnreadableNewerKeyStopsFallback(t *testing.T) {
	b := newFlaky(map[string]string{"ise_bir_bax_docs": legacyDocs})
	b.failGet["ise_bir_bax_docs_v2"] = true

	report := New(b).Migrate(context.Background())
	o, _ := report.Outcome(CollectionDocuments)
	require.Equal(t, MigrationFailed, o.Action)
	require.ErrorIs(t, o.Err, errBoom)
	require.True(t, report.Failed())
	_, ok, _ := b.Memory.Get(context.Background(), "isebirbax.documents")
	require.False(t, ok)

	// other collections are unaffected
	o, _ = report.Outcome(CollectionServices)
	require.Equal(t, MigrationNone, o.Action)
}

func TestMigrate_WriteFailureReported(t *testing.T) {
	b := newFlaky(map[string]string{"ise_bir_bax_docs": legacyDocs})
	b.failSet = true
	report := New(b).Migrate(context.Background())
	o, _ := report.Outcome(CollectionDocuments)
	require.Equal(t, MigrationFailed, o.Action)
}

func TestMigrate_CountsOutcomes(t *testing.T) {
	c := metrics.StoreMigrations.WithLabelValues(string(CollectionDocuments), string(MigrationCopied))
	before := testutil.ToFloat64(c)
	New(kv.NewMemoryFrom(map[string]string{"ise_bir_bax_docs": legacyDocs})).Migrate(context.Background())
	require.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestOpen_MigratesBeforeFirstRead(t *testing.T) {
	mem := kv.NewMemoryFrom(map[string]string{"ise_bir_bax_docs_v2": legacyDocs})
	s, report := Open(context.Background(), mem)
	o, _ := report.Outcome(CollectionDocuments)
	require.Equal(t, MigrationCopied, o.Action)

	r := s.LoadDocuments(context.Background())
	require.False(t, r.Seeded, "migrated data must win over the seed")
	require.Equal(t, "old", r.Value[0].ID)
}

func TestFallbackMetric(t *testing.T) {
	key := DefaultLayout()[CollectionServices].Stable
	c := metrics.StoreFallbacks.WithLabelValues(string(CollectionServices), string(ReasonCorrupt))
	before := testutil.ToFloat64(c)
	s := New(kv.NewMemoryFrom(map[string]string{key: "{"}))
	_ = s.Services(context.Background())
	require.Equal(t, before+1, testutil.ToFloat64(c))
}
