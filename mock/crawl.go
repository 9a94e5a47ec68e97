package mock

import (
	"context"

	"github.com/jcharovsky/docs2skill"
)

var (
	_ docs2skill.LinkCollector   = (*LinkCollector)(nil)
	_ docs2skill.PageArchiver    = (*PageArchiver)(nil)
	_ docs2skill.BundleFinalizer = (*BundleFinalizer)(nil)
)

// LinkCollector is a mock implementation of docs2skill.LinkCollector.
type LinkCollector struct {
	CollectFn func(ctx context.Context, seedURL string, sameHost bool) docs2skill.LinkSet
}

func (c *LinkCollector) Collect(ctx context.Context, seedURL string, sameHost bool) docs2skill.LinkSet {
	return c.CollectFn(ctx, seedURL, sameHost)
}

// PageArchiver is a mock implementation of docs2skill.PageArchiver.
type PageArchiver struct {
	ArchiveAllFn func(ctx context.Context, bundle docs2skill.Bundle, urls []string, progress docs2skill.ArchiveProgressFunc) (int, error)
}

func (a *PageArchiver) ArchiveAll(ctx context.Context, bundle docs2skill.Bundle, urls []string, progress docs2skill.ArchiveProgressFunc) (int, error) {
	return a.ArchiveAllFn(ctx, bundle, urls, progress)
}

// BundleFinalizer is a mock implementation of docs2skill.BundleFinalizer.
type BundleFinalizer struct {
	FinalizeFn func(ctx context.Context, bundle docs2skill.Bundle, domainHint, sourceURL string) (string, error)
}

func (f *BundleFinalizer) Finalize(ctx context.Context, bundle docs2skill.Bundle, domainHint, sourceURL string) (string, error) {
	return f.FinalizeFn(ctx, bundle, domainHint, sourceURL)
}
