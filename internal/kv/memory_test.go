package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", `["a"]`))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["a"]`, v)

	m.Delete("k")
	_, ok, _ = m.Get(ctx, "k")
	require.False(t, ok)
}

func TestMemory_EmptyValueIsPresent(t *testing.T) {
	m := NewMemoryFrom(map[string]string{"k": ""})
	v, ok, err := m.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, v)
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	_, _, err := m.Get(context.Background(), "k")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, m.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestPing_LocalBackend(t *testing.T) {
	require.NoError(t, Ping(context.Background(), NewMemory()))
}
