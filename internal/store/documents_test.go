package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocuments_FreshEnvironmentSeedsTwoRecords(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem)
	ctx := context.Background()

	r := s.LoadDocuments(ctx)
	require.True(t, r.OK())
	require.True(t, r.Seeded)
	require.Len(t, r.Value, 2)
	require.Equal(t, "1", r.Value[0].ID)
	require.Equal(t, "2", r.Value[1].ID)
	require.Equal(t, CategoryDiploma, r.Value[0].Category)
	require.Equal(t, CategoryCertificate, r.Value[1].Category)

	raw, ok, err := mem.Get(ctx, DefaultLayout()[CollectionDocuments].Stable)
	require.NoError(t, err)
	require.True(t, ok)
	var stored []Document
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Equal(t, r.Value, stored)

	// the second read comes from storage, not the seed path
	r2 := s.LoadDocuments(ctx)
	require.False(t, r2.Seeded)
	require.Equal(t, stored, r2.Value)
}

func TestAddDocument_PrependsWithFreshID(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	ctx := context.Background()
	before := s.Documents(ctx)

	d, err := s.AddDocument(ctx, NewDocument{Title: "MBA", ImageURL: "https://img/x.png", Category: CategoryCertificate})
	require.NoError(t, err)
	require.Equal(t, StatusVisible, d.Status)
	require.Equal(t, fixedNow.UnixMilli(), d.CreatedAt)

	after := s.Documents(ctx)
	require.Len(t, after, len(before)+1)
	require.Equal(t, d, after[0])
	for _, old := range before {
		require.NotEqual(t, old.ID, d.ID)
	}
	require.Equal(t, before, after[1:])
}

func TestAddDocument_Validation(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	ctx := context.Background()

	_, err := s.AddDocument(ctx, NewDocument{Title: "", ImageURL: "https://img"})
	require.ErrorIs(t, err, ErrInvalidDocument)
	_, err = s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "  "})
	require.ErrorIs(t, err, ErrInvalidDocument)
	_, err = s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "https://img", Category: "Medal"})
	require.ErrorIs(t, err, ErrInvalidCategory)

	d, err := s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "https://img"})
	require.NoError(t, err)
	require.Equal(t, CategoryDiploma, d.Category)
}

func TestAddDocument_RegeneratesCollidingID(t *testing.T) {
	ids := []string{"1", "2", "fresh"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	s, _ := Open(context.Background(), kv.NewMemory(), WithIDGenerator(gen))
	d, err := s.AddDocument(context.Background(), NewDocument{Title: "x", ImageURL: "https://img"})
	require.NoError(t, err)
	require.Equal(t, "fresh", d.ID)
}

func TestUpdateDocument_ChangesOnlyNamedFields(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem)
	ctx := context.Background()
	before := s.Documents(ctx)

	title := "Renamed"
	ok, err := s.UpdateDocument(ctx, "2", DocumentPatch{Title: &title})
	require.NoError(t, err)
	require.True(t, ok)

	after := s.Documents(ctx)
	require.Len(t, after, len(before))

	b0, _ := json.Marshal(before[0])
	a0, _ := json.Marshal(after[0])
	require.Equal(t, string(b0), string(a0), "other records must be untouched")

	want := before[1]
	want.Title = "Renamed"
	require.Equal(t, want, after[1])
}

func TestUpdateDocument_UnknownIDIsNoop(t *testing.T) {
	b := newFlaky(nil)
	s := newTestStore(t, b)
	ctx := context.Background()
	_ = s.Documents(ctx)
	snapshot := b.Snapshot()
	writes := b.setCalls

	title := "x"
	ok, err := s.UpdateDocument(ctx, "missing", DocumentPatch{Title: &title})
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = s.HardDeleteDocument(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = s.SetDocumentStatus(ctx, "missing", StatusHidden)
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, snapshot, b.Snapshot())
	require.Equal(t, writes, b.setCalls)
}

func TestSetDocumentStatus_HiddenLeavesGallery(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	ctx := context.Background()

	ok, err := s.SetDocumentStatus(ctx, "1", StatusHidden)
	require.NoError(t, err)
	require.True(t, ok)

	for _, d := range s.VisibleDocuments(ctx) {
		require.NotEqual(t, "1", d.ID)
	}
	all := s.Documents(ctx)
	require.Equal(t, "1", all[0].ID)
	require.Equal(t, StatusHidden, all[0].Status)

	// and back again
	_, err = s.SetDocumentStatus(ctx, "1", StatusVisible)
	require.NoError(t, err)
	require.Len(t, s.VisibleDocuments(ctx), 2)
}

func TestSoftThenHardDelete(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	ctx := context.Background()

	_, err := s.SetDocumentStatus(ctx, "2", StatusDeleted)
	require.NoError(t, err)
	assert.Len(t, s.Documents(ctx), 2, "soft-deleted documents stay enumerable")
	assert.Len(t, s.VisibleDocuments(ctx), 1)

	ok, err := s.HardDeleteDocument(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	all := s.Documents(ctx)
	require.Len(t, all, 1)
	require.Equal(t, "1", all[0].ID)
	require.Len(t, s.VisibleDocuments(ctx), 1)
}

func TestSetDocumentStatus_Invalid(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())
	_, err := s.SetDocumentStatus(context.Background(), "1", Status("archived"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDocuments_CorruptValueFallsBackWithoutWriting(t *testing.T) {
	key := DefaultLayout()[CollectionDocuments].Stable
	mem := kv.NewMemoryFrom(map[string]string{key: "{not json"})
	s := newTestStore(t, mem)
	ctx := context.Background()

	r := s.LoadDocuments(ctx)
	require.False(t, r.OK())
	require.Equal(t, ReasonCorrupt, r.Fallback)
	require.Error(t, r.Err)
	require.Len(t, r.Value, 2)

	raw, _, _ := mem.Get(ctx, key)
	require.Equal(t, "{not json", raw)
}

func TestDocuments_EmptyValueIsSeeded(t *testing.T) {
	key := DefaultLayout()[CollectionDocuments].Stable
	mem := kv.NewMemoryFrom(map[string]string{key: ""})
	s := newTestStore(t, mem)

	r := s.LoadDocuments(context.Background())
	require.True(t, r.Seeded)
	raw, _, _ := mem.Get(context.Background(), key)
	require.NotEmpty(t, raw)
}

func TestDocuments_NullValueIsEmptyCollection(t *testing.T) {
	key := DefaultLayout()[CollectionDocuments].Stable
	s := newTestStore(t, kv.NewMemoryFrom(map[string]string{key: "null"}))
	docs := s.Documents(context.Background())
	require.NotNil(t, docs)
	require.Empty(t, docs)
}

func TestDocuments_BackendUnavailable(t *testing.T) {
	b := newFlaky(nil)
	s := newTestStore(t, b)
	b.failAll = true
	ctx := context.Background()

	r := s.LoadDocuments(ctx)
	require.Equal(t, ReasonUnavailable, r.Fallback)
	require.ErrorIs(t, r.Err, errBoom)
	require.Len(t, r.Value, 2)

	writes := b.setCalls
	_, err := s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "https://img"})
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = s.SetDocumentStatus(ctx, "1", StatusHidden)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, writes, b.setCalls, "nothing may be written while reads fail")
}

func TestAddDocument_WriteFailure(t *testing.T) {
	b := newFlaky(nil)
	s := newTestStore(t, b)
	ctx := context.Background()
	_ = s.Documents(ctx)
	b.failSet = true

	_, err := s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "https://img"})
	require.ErrorIs(t, err, errBoom)
	b.failSet = false
	require.Len(t, s.Documents(ctx), 2)
}

func TestCorruptDocuments_AddReplacesWithDefaultsPlusNew(t *testing.T) {
	key := DefaultLayout()[CollectionDocuments].Stable
	mem := kv.NewMemoryFrom(map[string]string{key: "[{"})
	s := newTestStore(t, mem)
	ctx := context.Background()

	d, err := s.AddDocument(ctx, NewDocument{Title: "x", ImageURL: "https://img"})
	require.NoError(t, err)
	r := s.LoadDocuments(ctx)
	require.True(t, r.OK())
	require.Len(t, r.Value, 3)
	require.Equal(t, d.ID, r.Value[0].ID)
}
