package store

import (
	"context"
	"testing"

	"github.com/isebirbax/portfolio/internal/kv"
	"github.com/stretchr/testify/require"
)

// With nothing stored the built-in admin/admin123 pair is accepted. This mirrors
// the site's long-standing behaviour; the test pins it so any change is deliberate.
func TestCredentials_BuiltInDefaultWhenAbsent(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem)
	ctx := context.Background()

	r := s.LoadCredentials(ctx)
	require.True(t, r.OK())
	require.False(t, r.Seeded)
	require.Equal(t, DefaultCredentials, r.Value)
	require.True(t, s.CheckCredentials(ctx, "admin", "admin123"))
	require.False(t, s.CheckCredentials(ctx, "admin", "wrong"))

	_, ok, _ := mem.Get(ctx, DefaultLayout()[CollectionCredentials].Stable)
	require.False(t, ok, "default credentials must not be persisted")
}

func TestUpdateCredentials(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem)
	ctx := context.Background()

	require.NoError(t, s.UpdateCredentials(ctx, Credentials{Username: "ilkin", Password: "s3cret"}))
	require.True(t, s.CheckCredentials(ctx, "ilkin", "s3cret"))
	require.False(t, s.CheckCredentials(ctx, "admin", "admin123"))

	raw, ok, _ := mem.Get(ctx, DefaultLayout()[CollectionCredentials].Stable)
	require.True(t, ok)
	require.JSONEq(t, `{"username":"ilkin","password":"s3cret"}`, raw)

	require.ErrorIs(t, s.UpdateCredentials(ctx, Credentials{Username: "x"}), ErrInvalidCredentials)
	require.ErrorIs(t, s.UpdateCredentials(ctx, Credentials{Password: "x"}), ErrInvalidCredentials)
}

func TestCredentials_CorruptFallsBackToDefault(t *testing.T) {
	key := DefaultLayout()[CollectionCredentials].Stable
	s := newTestStore(t, kv.NewMemoryFrom(map[string]string{key: "admin:admin"}))
	r := s.LoadCredentials(context.Background())
	require.Equal(t, ReasonCorrupt, r.Fallback)
	require.Equal(t, DefaultCredentials, r.Value)
	require.False(t, s.CheckCredentials(context.Background(), "admin", "admin123"))
}

func TestCheckCredentials_BackendDownRejectsDefault(t *testing.T) {
	key := DefaultLayout()[CollectionCredentials].Stable
	b := newFlaky(map[string]string{key: `{"username":"owner","password":"s3cret"}`})
	s := newTestStore(t, b)
	ctx := context.Background()

	require.True(t, s.CheckCredentials(ctx, "owner", "s3cret"))
	require.False(t, s.CheckCredentials(ctx, "admin", "admin123"))

	b.failAll = true
	require.False(t, s.CheckCredentials(ctx, "admin", "admin123"))
	require.False(t, s.CheckCredentials(ctx, "owner", "s3cret"))

	b.failAll = false
	require.True(t, s.CheckCredentials(ctx, "owner", "s3cret"))
}

func TestCheckCredentials_EmptyStoredUsernameRejectsEverything(t *testing.T) {
	key := DefaultLayout()[CollectionCredentials].Stable
	s := newTestStore(t, kv.NewMemoryFrom(map[string]string{key: `{"username":"","password":""}`}))
	require.False(t, s.CheckCredentials(context.Background(), "", ""))
}
