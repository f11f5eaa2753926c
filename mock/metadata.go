package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of docsearch.MetadataService.
type MetadataService struct {
	GetMetadataFn func(ctx context.Context) ([]docsearch.MetadataEntry, error)
}

func (s *MetadataService) GetMetadata(ctx context.Context) ([]docsearch.MetadataEntry, error) {
	return s.GetMetadataFn(ctx)
}
