// Package freshness decides whether documentation metadata is served from
// the local snapshot, confirmed against the remote release tag, or
// downloaded again.
package freshness

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
	"golang.org/x/sync/singleflight"
)

// StalenessWindow is how long a snapshot is served without any remote check.
const StalenessWindow = time.Hour

// Ensure Coordinator implements docsearch.MetadataService at compile time.
var _ docsearch.MetadataService = (*Coordinator)(nil)

// Coordinator implements docsearch.MetadataService on top of a cache and a
// release resolver. It holds no state between calls besides what Cache
// persists.
type Coordinator struct {
	Cache    docsearch.CacheStore
	Releases docsearch.ReleaseResolver

	// AssetName defaults to docsearch.MetadataAssetName.
	AssetName string

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger records which path served a lookup. Defaults to discarding.
	Logger *slog.Logger

	group singleflight.Group
}

// NewCoordinator returns a Coordinator with default settings.
func NewCoordinator(cache docsearch.CacheStore, releases docsearch.ReleaseResolver) *Coordinator {
	return &Coordinator{
		Cache:           cache,
		Releases:        releases,
		AssetName: docsearch.MetadataAssetName,
		Now:       time.Now,
	}
}

// GetMetadata returns the current metadata index.
//
// Concurrent callers share a single lookup, which runs under the context of
// the caller that started it. A caller whose context ends stops waiting. If
// the shared lookup was cancelled by its starter while this caller's context
// is still live, the lookup is started again.
func (c *Coordinator) GetMetadata(ctx context.Context) ([]docsearch.MetadataEntry, error) {
	for {
		// Written before the result is sent on ch.
		started := false
		ch := c.group.DoChan("metadata", func() (any, error) {
			started = true
			return c.getMetadata(ctx)
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				if !started && isContextError(res.Err) && ctx.Err() == nil {
					continue
				}
				return nil, res.Err
			}
			return res.Val.([]docsearch.MetadataEntry), nil
		}
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (c *Coordinator) getMetadata(ctx context.Context) ([]docsearch.MetadataEntry, error) {
	logger := c.logger()

	if c.isFresh(ctx) {
		if metadata, ok := c.Cache.ReadMetadata(ctx); ok {
			logger.Debug("metadata served", "source", "cache", "entries", len(metadata))
			return metadata, nil
		}
	}

	release, err := c.Releases.FetchLatestRelease(ctx)
	if err != nil {
		return nil, err
	}

	// The timestamp is not refreshed here, so the next call checks the tag again.
	if cachedTag, ok := c.Cache.ReadVersionTag(ctx); ok && cachedTag == release.TagName {
		if metadata, ok := c.Cache.ReadMetadata(ctx); ok {
			logger.Debug("metadata served", "source", "tag-match", "tag", release.TagName, "entries", len(metadata))
			return metadata, nil
		}
	}

	assetName := c.AssetName
	if assetName == "" {
		assetName = docsearch.MetadataAssetName
	}
	asset, ok := release.FindAsset(assetName)
	if !ok {
		return nil, docsearch.Errorf(docsearch.EASSETNOTFOUND, "%s not found in release assets", assetName)
	}

	metadata, err := c.Releases.FetchMetadataAsset(ctx, asset)
	if err != nil {
		return nil, err
	}

	// Never commit a download the caller has already abandoned.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.Cache.WriteSnapshot(ctx, metadata, release.TagName); err != nil {
		return nil, err
	}

	logger.Debug("metadata served", "source", "download", "tag", release.TagName, "entries", len(metadata))
	return metadata, nil
}

// isFresh reports whether the last check is within the staleness window.
// A missing timestamp is never fresh.
func (c *Coordinator) isFresh(ctx context.Context) bool {
	lastCheckedAt, ok := c.Cache.ReadLastCheckedAt(ctx)
	if !ok {
		return false
	}
	return c.now().Sub(lastCheckedAt) <= StalenessWindow
}

func (c *Coordinator) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
