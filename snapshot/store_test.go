package snapshot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/fwojciec/docsearch/snapshot"
	"github.com/fwojciec/docsearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestStore returns a Store over an in-memory SQLite database and the
// underlying key/value store.
func newTestStore(t *testing.T) (*snapshot.Store, *sqlite.KVStore) {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	kv := sqlite.NewKVStore(db)
	store := snapshot.NewStore(kv)
	store.Now = func() time.Time { return fixedNow }
	return store, kv
}

func TestStore_WriteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("persists metadata, tag and timestamp", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, kv := newTestStore(t)
		metadata := []docsearch.MetadataEntry{
			{Title: "Part", Type: "class", Path: "content/en-us/reference/engine/classes/Part.yaml",
				Subitems: []docsearch.SubEntry{{Title: "Part.Anchored", Type: "property"}}},
		}

		require.NoError(t, store.WriteSnapshot(ctx, metadata, "v42"))

		got, ok := store.ReadMetadata(ctx)
		require.True(t, ok)
		assert.Equal(t, metadata, got)

		tag, ok := store.ReadVersionTag(ctx)
		require.True(t, ok)
		assert.Equal(t, docsearch.VersionTag("v42"), tag)

		at, ok := store.ReadLastCheckedAt(ctx)
		require.True(t, ok)
		assert.True(t, fixedNow.Equal(at))

		raw, err := kv.Get(ctx, "timestamp")
		require.NoError(t, err)
		assert.Equal(t, "1740830400000", raw)
	})

	t.Run("stores nil metadata as an empty array", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, kv := newTestStore(t)

		require.NoError(t, store.WriteSnapshot(ctx, nil, "v1"))

		raw, err := kv.Get(ctx, "metadata")
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)

		got, ok := store.ReadMetadata(ctx)
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("writes all three keys in one call", func(t *testing.T) {
		t.Parallel()

		var calls []map[string]string
		kv := &mock.KVStore{
			SetFn: func(_ context.Context, values map[string]string) error {
				calls = append(calls, values)
				return nil
			},
		}
		store := snapshot.NewStore(kv)

		require.NoError(t, store.WriteSnapshot(context.Background(), []docsearch.MetadataEntry{}, "v1"))

		require.Len(t, calls, 1)
		assert.Len(t, calls[0], 3)
		assert.Equal(t, "v1", calls[0]["tagName"])
	})

	t.Run("returns store error", func(t *testing.T) {
		t.Parallel()

		kv := &mock.KVStore{
			SetFn: func(_ context.Context, _ map[string]string) error {
				return errors.New("disk full")
			},
		}
		store := snapshot.NewStore(kv)

		err := store.WriteSnapshot(context.Background(), nil, "v1")
		require.EqualError(t, err, "disk full")
	})
}

func TestStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("reports absent on empty store", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newTestStore(t)

		_, ok := store.ReadMetadata(ctx)
		assert.False(t, ok)
		_, ok = store.ReadVersionTag(ctx)
		assert.False(t, ok)
		_, ok = store.ReadLastCheckedAt(ctx)
		assert.False(t, ok)
		_, ok = store.ReadSnapshot(ctx)
		assert.False(t, ok)
	})

	t.Run("treats corrupted values as absent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, kv := newTestStore(t)
		require.NoError(t, kv.Set(ctx, map[string]string{
			"metadata":  "{not json",
			"timestamp": "yesterday",
		}))

		_, ok := store.ReadMetadata(ctx)
		assert.False(t, ok)
		_, ok = store.ReadLastCheckedAt(ctx)
		assert.False(t, ok)
	})

	t.Run("keeps an empty tag", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newTestStore(t)
		require.NoError(t, store.WriteSnapshot(ctx, []docsearch.MetadataEntry{}, ""))

		tag, ok := store.ReadVersionTag(ctx)
		assert.True(t, ok)
		assert.Equal(t, docsearch.VersionTag(""), tag)
	})

	t.Run("treats JSON null metadata as absent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, kv := newTestStore(t)
		require.NoError(t, kv.Set(ctx, map[string]string{"metadata": "null"}))

		_, ok := store.ReadMetadata(ctx)
		assert.False(t, ok)
	})

	t.Run("swallows store read errors", func(t *testing.T) {
		t.Parallel()

		kv := &mock.KVStore{
			GetFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("io error")
			},
		}
		store := snapshot.NewStore(kv)

		_, ok := store.ReadMetadata(context.Background())
		assert.False(t, ok)
		_, ok = store.ReadVersionTag(context.Background())
		assert.False(t, ok)
	})

	t.Run("returns snapshot with digest", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store, _ := newTestStore(t)
		metadata := []docsearch.MetadataEntry{{Title: "A", Type: "t", Path: "content/en-us/a.md"}}
		require.NoError(t, store.WriteSnapshot(ctx, metadata, "v1"))

		snap, ok := store.ReadSnapshot(ctx)
		require.True(t, ok)
		assert.Equal(t, metadata, snap.Metadata)
		assert.Equal(t, docsearch.VersionTag("v1"), snap.TagName)
		assert.True(t, fixedNow.Equal(snap.LastCheckedAt))
		assert.NotEmpty(t, snap.Digest)

		again, ok := store.ReadSnapshot(ctx)
		require.True(t, ok)
		assert.Equal(t, snap.Digest, again.Digest)
	})
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newTestStore(t)
	require.NoError(t, store.WriteSnapshot(ctx, []docsearch.MetadataEntry{}, "v1"))

	require.NoError(t, store.Clear(ctx))

	_, ok := store.ReadSnapshot(ctx)
	assert.False(t, ok)
}
