// Package github implements docsearch.ReleaseResolver against the GitHub
// releases API using go-github.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/fwojciec/docsearch"
)

const (
	// DefaultOwner and DefaultRepo name the repository publishing the index.
	DefaultOwner = "Sleitnick"
	DefaultRepo  = "rbx-doc-search"

	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second
)

// Ensure ReleaseResolver implements docsearch.ReleaseResolver at compile time.
var _ docsearch.ReleaseResolver = (*ReleaseResolver)(nil)

// ReleaseResolver reads the latest release of a repository and downloads
// its metadata asset. Requests are unauthenticated and never retried.
type ReleaseResolver struct {
	client  *gh.Client
	owner   string
	repo    string
	timeout time.Duration
	baseURL string
}

// Option configures a ReleaseResolver.
type Option func(*ReleaseResolver)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *ReleaseResolver) {
		r.timeout = d
	}
}

// WithBaseURL points the resolver at a different API root,
// e.g. a GitHub Enterprise instance or a test server.
func WithBaseURL(u string) Option {
	return func(r *ReleaseResolver) {
		r.baseURL = u
	}
}

// NewReleaseResolver creates a resolver for owner/repo.
func NewReleaseResolver(owner, repo string, opts ...Option) (*ReleaseResolver, error) {
	r := &ReleaseResolver{
		owner:   owner,
		repo:    repo,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = gh.NewClient(&http.Client{Timeout: r.timeout})

	if r.baseURL != "" {
		base := r.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, docsearch.WrapError(err, docsearch.EINVALID, "invalid base URL %q", r.baseURL)
		}
		r.client.BaseURL = u
	}

	return r, nil
}

// ParseRepository splits "owner/repo".
func ParseRepository(s string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(s, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", docsearch.Errorf(docsearch.EINVALID, "repository must be owner/repo, got %q", s)
	}
	return owner, repo, nil
}

// FetchLatestRelease returns the repository's latest release.
func (r *ReleaseResolver) FetchLatestRelease(ctx context.Context) (*docsearch.Release, error) {
	rel, resp, err := r.client.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
	if err != nil {
		return nil, classify(resp, err, "failed to fetch release info")
	}

	release := &docsearch.Release{
		TagName: docsearch.VersionTag(rel.GetTagName()),
		Assets:  make([]docsearch.ReleaseAsset, 0, len(rel.Assets)),
	}
	for _, a := range rel.Assets {
		release.Assets = append(release.Assets, docsearch.ReleaseAsset{
			Name: a.GetName(),
			URL:  a.GetURL(),
		})
	}
	return release, nil
}

// FetchMetadataAsset downloads the asset's binary content and decodes it
// as a metadata array.
func (r *ReleaseResolver) FetchMetadataAsset(ctx context.Context, asset docsearch.ReleaseAsset) ([]docsearch.MetadataEntry, error) {
	req, err := r.client.NewRequest(http.MethodGet, asset.URL, nil)
	if err != nil {
		return nil, docsearch.WrapError(err, docsearch.EINVALID, "invalid asset URL %q", asset.URL)
	}
	req.Header.Set("Accept", "application/octet-stream")

	var metadata []docsearch.MetadataEntry
	resp, err := r.client.Do(ctx, req, &metadata)
	if err != nil {
		return nil, classify(resp, err, "failed to fetch metadata")
	}
	if metadata == nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to fetch metadata: %s is not a JSON array", asset.Name)
	}
	return metadata, nil
}

// classify maps a go-github failure to an application error.
// A response with a non-success status is a remote error; no response at
// all means the transport failed.
func classify(resp *gh.Response, err error, msg string) error {
	if resp == nil || resp.Response == nil {
		return docsearch.WrapError(err, docsearch.ENETWORK, "%s", msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &docsearch.Error{
			Code:    docsearch.EREMOTE,
			Message: fmt.Sprintf("%s: %s", msg, resp.Status),
			Err:     err,
		}
	}
	return docsearch.WrapError(err, docsearch.EINVALID, "%s", msg)
}
