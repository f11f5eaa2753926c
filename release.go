package docsearch

import "context"

// MetadataAssetName is the release asset holding the metadata index.
const MetadataAssetName = "files_metadata.json"

// VersionTag identifies a remote release. Tags are only compared for equality.
type VersionTag string

// Release is a tagged publication of the metadata asset.
type Release struct {
	TagName VersionTag     `json:"tag_name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is a downloadable file attached to a release.
type ReleaseAsset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FindAsset returns the asset with the given name.
func (r *Release) FindAsset(name string) (ReleaseAsset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return ReleaseAsset{}, false
}

// ReleaseResolver talks to the remote release endpoint.
// Each call issues exactly one bounded request and never retries.
type ReleaseResolver interface {
	// FetchLatestRelease returns the latest release.
	// Returns ENETWORK on transport failure and EREMOTE on a non-success status.
	FetchLatestRelease(ctx context.Context) (*Release, error)

	// FetchMetadataAsset downloads the asset and parses it as a metadata array.
	FetchMetadataAsset(ctx context.Context, asset ReleaseAsset) ([]MetadataEntry, error)
}
