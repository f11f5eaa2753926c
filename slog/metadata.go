package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingMetadataService implements docsearch.MetadataService.
var _ docsearch.MetadataService = (*LoggingMetadataService)(nil)

// LoggingMetadataService wraps a MetadataService with logging.
// Failures are logged at error level.
type LoggingMetadataService struct {
	next   docsearch.MetadataService
	logger *slog.Logger
}

// NewLoggingMetadataService creates a new LoggingMetadataService.
func NewLoggingMetadataService(next docsearch.MetadataService, logger *slog.Logger) *LoggingMetadataService {
	return &LoggingMetadataService{next: next, logger: logger}
}

// GetMetadata delegates to the wrapped service and logs the lookup.
func (s *LoggingMetadataService) GetMetadata(ctx context.Context) (metadata []docsearch.MetadataEntry, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Error("metadata lookup",
				"code", docsearch.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Debug("metadata lookup",
			"entries", len(metadata),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.GetMetadata(ctx)
}
