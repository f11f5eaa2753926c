// Package snapshot persists the last downloaded metadata index in a
// docsearch.KVStore.
//
// The snapshot is stored under three keys: "metadata" holds the JSON-encoded
// array, "tagName" the release tag and "timestamp" the last check time in
// Unix milliseconds. All three are written together in one KVStore.Set call.
package snapshot

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
)

// Compile-time interface verification.
var _ docsearch.CacheStore = (*Store)(nil)

// Store implements docsearch.CacheStore on top of a key/value store.
type Store struct {
	kv docsearch.KVStore

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewStore creates a new Store.
func NewStore(kv docsearch.KVStore) *Store {
	return &Store{kv: kv, Now: time.Now}
}

// ReadMetadata returns the cached metadata.
// A missing, empty or undecodable value is reported as absent.
func (s *Store) ReadMetadata(ctx context.Context) ([]docsearch.MetadataEntry, bool) {
	raw, ok := s.get(ctx, docsearch.KeyMetadata)
	if !ok {
		return nil, false
	}
	return decodeMetadata(raw)
}

// ReadVersionTag returns the cached release tag. An empty tag is a valid
// tag and still matches a release with an empty tag name.
func (s *Store) ReadVersionTag(ctx context.Context) (docsearch.VersionTag, bool) {
	raw, err := s.kv.Get(ctx, docsearch.KeyTagName)
	if err != nil {
		return "", false
	}
	return docsearch.VersionTag(raw), true
}

// ReadLastCheckedAt returns when the snapshot was last written.
func (s *Store) ReadLastCheckedAt(ctx context.Context) (time.Time, bool) {
	raw, ok := s.get(ctx, docsearch.KeyTimestamp)
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// ReadSnapshot returns all present fields of the snapshot.
func (s *Store) ReadSnapshot(ctx context.Context) (*docsearch.Snapshot, bool) {
	var snap docsearch.Snapshot
	found := false

	if raw, ok := s.get(ctx, docsearch.KeyMetadata); ok {
		if metadata, ok := decodeMetadata(raw); ok {
			snap.Metadata = metadata
			snap.Digest = digest(raw)
			found = true
		}
	}
	if tag, ok := s.ReadVersionTag(ctx); ok {
		snap.TagName = tag
		found = true
	}
	if at, ok := s.ReadLastCheckedAt(ctx); ok {
		snap.LastCheckedAt = at
		found = true
	}

	if !found {
		return nil, false
	}
	return &snap, true
}

// WriteSnapshot replaces the snapshot and stamps it with the current time.
func (s *Store) WriteSnapshot(ctx context.Context, metadata []docsearch.MetadataEntry, tag docsearch.VersionTag) error {
	if metadata == nil {
		metadata = []docsearch.MetadataEntry{}
	}
	buf, err := json.Marshal(metadata)
	if err != nil {
		return docsearch.WrapError(err, docsearch.EINTERNAL, "failed to encode metadata")
	}

	return s.kv.Set(ctx, map[string]string{
		docsearch.KeyMetadata:  string(buf),
		docsearch.KeyTagName:   string(tag),
		docsearch.KeyTimestamp: strconv.FormatInt(s.Now().UnixMilli(), 10),
	})
}

// Clear removes every snapshot key.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, docsearch.KeyMetadata, docsearch.KeyTagName, docsearch.KeyTimestamp)
}

// get returns the non-empty value under key. Read failures count as absent.
func (s *Store) get(ctx context.Context, key string) (string, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

// decodeMetadata parses a JSON array. JSON null counts as absent; an empty
// array is a valid, present snapshot.
func decodeMetadata(raw string) ([]docsearch.MetadataEntry, bool) {
	var metadata []docsearch.MetadataEntry
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, false
	}
	if metadata == nil {
		return nil, false
	}
	return metadata, true
}

func digest(raw string) string {
	return strconv.FormatUint(xxhash.Sum64String(raw), 16)
}
