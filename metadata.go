package docsearch

import "context"

// MetadataEntry is one page of the remote documentation index.
// Path is relative to the documentation source tree,
// e.g. "content/en-us/reference/engine/classes/Part.yaml".
type MetadataEntry struct {
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Path        string     `json:"path"`
	Description string     `json:"description,omitempty"`
	Subitems    []SubEntry `json:"subitems,omitempty"`
}

// SubEntry is a member of a page (a property, method, heading, ...).
// Its title may embed an anchor after a ':' or '.' delimiter.
type SubEntry struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// SearchEntry is a flattened, directly linkable search result.
type SearchEntry struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// MetadataService returns the current documentation metadata.
type MetadataService interface {
	// GetMetadata returns the metadata index, served from cache when fresh.
	// Fails with ENETWORK, EREMOTE or EASSETNOTFOUND when a required
	// network round trip fails.
	GetMetadata(ctx context.Context) ([]MetadataEntry, error)
}
