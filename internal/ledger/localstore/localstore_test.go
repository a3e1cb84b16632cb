package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/caixa/internal/ledger/localstore"
)

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(localstore.Config{InMemory: true})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestStore_SetGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("snapshot/anonymous", []byte(`{"cashbooks":[]}`)))

	blob, ok, err := store.Get("snapshot/anonymous")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"cashbooks":[]}`), blob)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	blob, ok, err := store.Get("snapshot/unknown")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, blob)
}

func TestStore_Overwrite(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("k", []byte("first")))
	require.NoError(t, store.Set("k", []byte("second")))

	blob, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), blob)
}

func TestStore_OnDisk(t *testing.T) {
	dir := t.TempDir()

	store, err := localstore.Open(localstore.Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Close())

	// A reopened store sees the written value.
	store, err = localstore.Open(localstore.Config{Path: dir})
	require.NoError(t, err)

	defer func() {
		assert.NoError(t, store.Close())
	}()

	blob, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), blob)
}
