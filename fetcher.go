package docs2skill

import (
	"context"
	"strings"
)

// Response is the decoded result of a successful GET.
type Response struct {
	URL         string
	ContentType string
	Body        string
}

// IsHTML reports whether the response declares an HTML content type.
func (r *Response) IsHTML() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "html")
}

// Fetcher retrieves documents over HTTP.
type Fetcher interface {
	// Fetch performs a GET for url and returns the decoded body.
	// Non-2xx responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until a request to the given domain is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
