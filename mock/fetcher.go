package mock

import (
	"context"

	"github.com/jcharovsky/docs2skill"
)

var (
	_ docs2skill.Fetcher       = (*Fetcher)(nil)
	_ docs2skill.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of docs2skill.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docs2skill.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docs2skill.Response, error) {
	return f.FetchFn(ctx, url)
}

// DomainLimiter is a mock implementation of docs2skill.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
