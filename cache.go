package docsearch

import (
	"context"
	"time"
)

// Persistence keys of the cached snapshot.
const (
	KeyMetadata  = "metadata"
	KeyTagName   = "tagName"
	KeyTimestamp = "timestamp"
)

// KVStore is a string-keyed persistence surface.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ENOTFOUND if the key does not exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores all values as one all-or-nothing write.
	Set(ctx context.Context, values map[string]string) error

	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// Snapshot is the last successfully downloaded metadata index.
type Snapshot struct {
	Metadata      []MetadataEntry
	TagName       VersionTag
	LastCheckedAt time.Time

	// Digest fingerprints the persisted metadata payload.
	Digest string
}

// CacheStore owns the persisted snapshot.
//
// Reads fail soft: any missing or undecodable field is reported as absent.
type CacheStore interface {
	ReadMetadata(ctx context.Context) ([]MetadataEntry, bool)
	ReadVersionTag(ctx context.Context) (VersionTag, bool)
	ReadLastCheckedAt(ctx context.Context) (time.Time, bool)

	// ReadSnapshot returns every field that is present.
	// Returns false if no field is present.
	ReadSnapshot(ctx context.Context) (*Snapshot, bool)

	// WriteSnapshot replaces metadata and tag and stamps the current time
	// as last checked.
	WriteSnapshot(ctx context.Context, metadata []MetadataEntry, tag VersionTag) error

	// Clear removes the snapshot.
	Clear(ctx context.Context) error
}
