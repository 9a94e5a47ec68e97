// Package crawl collects the links of a seed page and archives the pages they
// point to into a bundle.
package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jcharovsky/docs2skill"
	"github.com/jcharovsky/docs2skill/goquery"
)

var _ docs2skill.LinkCollector = (*Collector)(nil)

// Collector gathers the outbound links of a single seed page.
type Collector struct {
	Fetcher     docs2skill.Fetcher
	RateLimiter docs2skill.DomainLimiter // optional
	Logger      *slog.Logger             // optional
}

// Collect fetches seedURL once and returns the links it contains. Network,
// HTTP, and parse failures are logged and produce an empty set.
func (c *Collector) Collect(ctx context.Context, seedURL string, sameHost bool) docs2skill.LinkSet {
	log := loggerOrDiscard(c.Logger)
	links := docs2skill.NewLinkSet()

	if err := waitHost(ctx, c.RateLimiter, seedURL); err != nil {
		log.Error("link collection canceled", "url", seedURL, "error", err)
		return links
	}

	resp, err := c.Fetcher.Fetch(ctx, seedURL)
	if err != nil {
		log.Error("failed to fetch seed page", "url", seedURL, "error", err)
		return links
	}

	found, err := goquery.ExtractLinks(resp.Body, seedURL, sameHost)
	if err != nil {
		log.Error("failed to extract links", "url", seedURL, "error", err)
		return links
	}
	for _, u := range found {
		links.Add(u)
	}

	log.Debug("collected links", "url", seedURL, "count", links.Len(), "same_host", sameHost)
	return links
}

// waitHost blocks on limiter for the host of rawURL. A nil limiter never blocks.
func waitHost(ctx context.Context, limiter docs2skill.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return ctx.Err()
	}
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	return limiter.Wait(ctx, host)
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
