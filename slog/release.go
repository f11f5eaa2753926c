// Package slog provides logging decorators for docsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingReleaseResolver implements docsearch.ReleaseResolver.
var _ docsearch.ReleaseResolver = (*LoggingReleaseResolver)(nil)

// LoggingReleaseResolver wraps a ReleaseResolver with debug logging.
type LoggingReleaseResolver struct {
	next   docsearch.ReleaseResolver
	logger *slog.Logger
}

// NewLoggingReleaseResolver creates a new LoggingReleaseResolver.
func NewLoggingReleaseResolver(next docsearch.ReleaseResolver, logger *slog.Logger) *LoggingReleaseResolver {
	return &LoggingReleaseResolver{next: next, logger: logger}
}

// FetchLatestRelease delegates to the wrapped resolver and logs the request.
func (r *LoggingReleaseResolver) FetchLatestRelease(ctx context.Context) (release *docsearch.Release, err error) {
	defer func(begin time.Time) {
		var tag docsearch.VersionTag
		var assets int
		if release != nil {
			tag = release.TagName
			assets = len(release.Assets)
		}
		r.logger.Debug("release check",
			"tag", tag,
			"assets", assets,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FetchLatestRelease(ctx)
}

// FetchMetadataAsset delegates to the wrapped resolver and logs the download.
func (r *LoggingReleaseResolver) FetchMetadataAsset(ctx context.Context, asset docsearch.ReleaseAsset) (metadata []docsearch.MetadataEntry, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("asset download",
			"asset", asset.Name,
			"url", asset.URL,
			"entries", len(metadata),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.FetchMetadataAsset(ctx, asset)
}
