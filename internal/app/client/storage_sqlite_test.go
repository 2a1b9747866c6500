package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLocalStore_KVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.Get(ctx, "bill.editRecord")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, "bill.editRecord", []byte(`{"id":1}`)))
	require.NoError(t, store.Set(ctx, "bill.editRecord", []byte(`{"id":2}`)))

	got, err = store.Get(ctx, "bill.editRecord")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":2}`), got)

	require.NoError(t, store.Delete(ctx, "bill.editRecord"))
	got, err = store.Get(ctx, "bill.editRecord")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "bill.editRecord"))
}

func TestLocalStore_Token(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SaveToken(ctx, "first"))
	require.NoError(t, store.SaveToken(ctx, "second"))

	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, store.ClearToken(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestLocalStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := NewLocalStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.SaveToken(ctx, "tok"))
	require.NoError(t, store.Close())

	reopened, err := NewLocalStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	token, err := reopened.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
