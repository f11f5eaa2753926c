package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.ReleaseResolver = (*ReleaseResolver)(nil)

// ReleaseResolver is a mock implementation of docsearch.ReleaseResolver.
type ReleaseResolver struct {
	FetchLatestReleaseFn func(ctx context.Context) (*docsearch.Release, error)
	FetchMetadataAssetFn func(ctx context.Context, asset docsearch.ReleaseAsset) ([]docsearch.MetadataEntry, error)
}

func (r *ReleaseResolver) FetchLatestRelease(ctx context.Context) (*docsearch.Release, error) {
	return r.FetchLatestReleaseFn(ctx)
}

func (r *ReleaseResolver) FetchMetadataAsset(ctx context.Context, asset docsearch.ReleaseAsset) ([]docsearch.MetadataEntry, error) {
	return r.FetchMetadataAssetFn(ctx, asset)
}
