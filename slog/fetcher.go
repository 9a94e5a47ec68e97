// Package slog provides log/slog decorators for docs2skill services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcharovsky/docs2skill"
)

// Ensure LoggingFetcher implements docs2skill.Fetcher.
var _ docs2skill.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docs2skill.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docs2skill.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *docs2skill.Response, err error) {
	defer func(begin time.Time) {
		var contentType string
		var size int
		if resp != nil {
			contentType = resp.ContentType
			size = len(resp.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"content_type", contentType,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
