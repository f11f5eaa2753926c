package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewKVStore(openTestDB(t))

		_, err := store.Get(context.Background(), "metadata")

		require.Error(t, err)
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
	})
}

func TestKVStore_Set(t *testing.T) {
	t.Parallel()

	t.Run("stores and overwrites values", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewKVStore(openTestDB(t))

		require.NoError(t, store.Set(ctx, map[string]string{"tagName": "v1", "timestamp": "1"}))
		require.NoError(t, store.Set(ctx, map[string]string{"tagName": "v2"}))

		tag, err := store.Get(ctx, "tagName")
		require.NoError(t, err)
		assert.Equal(t, "v2", tag)

		ts, err := store.Get(ctx, "timestamp")
		require.NoError(t, err)
		assert.Equal(t, "1", ts)
	})

	t.Run("writes nothing when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewKVStore(openTestDB(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Set(ctx, map[string]string{"tagName": "v1", "metadata": "[]"})
		require.Error(t, err)

		_, err = store.Get(context.Background(), "tagName")
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
		_, err = store.Get(context.Background(), "metadata")
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
	})
}

func TestKVStore_Remove(t *testing.T) {
	t.Parallel()

	t.Run("deletes keys and ignores missing ones", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewKVStore(openTestDB(t))
		require.NoError(t, store.Set(ctx, map[string]string{"tagName": "v1", "timestamp": "1"}))

		require.NoError(t, store.Remove(ctx, "tagName", "metadata"))

		_, err := store.Get(ctx, "tagName")
		assert.Equal(t, docsearch.ENOTFOUND, docsearch.ErrorCode(err))
		ts, err := store.Get(ctx, "timestamp")
		require.NoError(t, err)
		assert.Equal(t, "1", ts)
	})
}
