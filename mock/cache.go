package mock

import (
	"context"
	"time"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of docsearch.CacheStore.
type CacheStore struct {
	ReadMetadataFn      func(ctx context.Context) ([]docsearch.MetadataEntry, bool)
	ReadVersionTagFn    func(ctx context.Context) (docsearch.VersionTag, bool)
	ReadLastCheckedAtFn func(ctx context.Context) (time.Time, bool)
	ReadSnapshotFn      func(ctx context.Context) (*docsearch.Snapshot, bool)
	WriteSnapshotFn     func(ctx context.Context, metadata []docsearch.MetadataEntry, tag docsearch.VersionTag) error
	ClearFn             func(ctx context.Context) error
}

func (s *CacheStore) ReadMetadata(ctx context.Context) ([]docsearch.MetadataEntry, bool) {
	return s.ReadMetadataFn(ctx)
}

func (s *CacheStore) ReadVersionTag(ctx context.Context) (docsearch.VersionTag, bool) {
	return s.ReadVersionTagFn(ctx)
}

func (s *CacheStore) ReadLastCheckedAt(ctx context.Context) (time.Time, bool) {
	return s.ReadLastCheckedAtFn(ctx)
}

func (s *CacheStore) ReadSnapshot(ctx context.Context) (*docsearch.Snapshot, bool) {
	return s.ReadSnapshotFn(ctx)
}

func (s *CacheStore) WriteSnapshot(ctx context.Context, metadata []docsearch.MetadataEntry, tag docsearch.VersionTag) error {
	return s.WriteSnapshotFn(ctx, metadata, tag)
}

func (s *CacheStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
