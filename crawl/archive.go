package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jcharovsky/docs2skill"
)

var _ docs2skill.PageArchiver = (*Archiver)(nil)

// Archiver fetches linked pages, converts them to Markdown and saves them
// into a bundle, one URL at a time.
type Archiver struct {
	Fetcher     docs2skill.Fetcher
	Converter   docs2skill.Converter
	RateLimiter docs2skill.DomainLimiter // optional
	Logger      *slog.Logger             // optional
}

// Archive fetches url and saves it into bundle. Pages that are not HTML, have
// a blank body or convert to empty Markdown return an ESKIPPED error.
func (a *Archiver) Archive(ctx context.Context, bundle docs2skill.Bundle, url string) (*docs2skill.ArchivedPage, error) {
	if err := waitHost(ctx, a.RateLimiter, url); err != nil {
		return nil, err
	}

	resp, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if !resp.IsHTML() {
		return nil, docs2skill.Errorf(docs2skill.ESKIPPED, "content type %q is not HTML", resp.ContentType)
	}
	if strings.TrimSpace(resp.Body) == "" {
		return nil, docs2skill.Errorf(docs2skill.ESKIPPED, "empty body")
	}

	markdown, err := a.Converter.Convert(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	if markdown == "" {
		return nil, docs2skill.Errorf(docs2skill.ESKIPPED, "no content after conversion")
	}

	page := &docs2skill.ArchivedPage{
		SourceURL: url,
		Stem:      docs2skill.Filename(url),
		Markdown:  markdown,
		Checksum:  checksum(markdown),
	}
	if err := bundle.SavePage(page); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return page, nil
}

// ArchiveAll archives urls in order. A failure on one URL never stops the
// others; the returned error is non-nil only when ctx is done.
func (a *Archiver) ArchiveAll(ctx context.Context, bundle docs2skill.Bundle, urls []string, progress docs2skill.ArchiveProgressFunc) (int, error) {
	log := loggerOrDiscard(a.Logger)

	var saved int
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return saved, err
		}

		page, err := a.Archive(ctx, bundle, url)

		event := docs2skill.ArchiveProgress{
			URL:       url,
			Completed: i + 1,
			Total:     len(urls),
			Error:     err,
		}
		switch {
		case err == nil:
			saved++
			event.Filename = page.Filename
			event.Checksum = page.Checksum
			log.Debug("archived page", "url", url, "file", page.Filename, "bytes", len(page.Markdown), "checksum", page.Checksum)
		case docs2skill.ErrorCode(err) == docs2skill.ESKIPPED:
			log.Info("skipped page", "url", url, "reason", docs2skill.ErrorMessage(err))
		case ctx.Err() != nil:
			return saved, ctx.Err()
		default:
			log.Warn("failed to archive page", "url", url, "error", err)
		}

		if progress != nil {
			progress(event)
		}
	}
	return saved, nil
}

func checksum(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
