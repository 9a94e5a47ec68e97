// Package anthropic implements docs2skill.Generator for the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"net/http"

	"github.com/jcharovsky/docs2skill"
	d2shttp "github.com/jcharovsky/docs2skill/http"
)

// Version is the anthropic-version header sent with every request.
const Version = "2023-06-01"

// Ensure Client implements docs2skill.Generator at compile time.
var _ docs2skill.Generator = (*Client)(nil)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the Messages API request body.
type Request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []Message `json:"messages"`
}

// ContentBlock is one block of a Messages API reply.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the subset of the Messages API reply that is read.
type Response struct {
	Content []ContentBlock `json:"content"`
}

// Client calls the Messages API described by a ProviderConfig.
type Client struct {
	cfg  docs2skill.ProviderConfig
	http *http.Client
}

// NewClient creates a Client. httpClient carries the request timeout.
func NewClient(cfg docs2skill.ProviderConfig, httpClient *http.Client) *Client {
	return &Client{cfg: cfg, http: httpClient}
}

// BuildRequest returns the request body for one system + user prompt pair.
func BuildRequest(cfg docs2skill.ProviderConfig, system, user string) Request {
	return Request{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		System:      system,
		Messages:    []Message{{Role: "user", Content: user}},
	}
}

// Header returns the authentication and versioning headers.
func Header(cfg docs2skill.ProviderConfig) http.Header {
	h := http.Header{}
	h.Set("x-api-key", cfg.APIKey)
	h.Set("anthropic-version", Version)
	h.Set("content-type", "application/json")
	return h
}

// Text returns the text of the first content block.
func (r *Response) Text() (string, error) {
	if len(r.Content) == 0 {
		return "", docs2skill.Errorf(docs2skill.EINTERNAL, "anthropic response has no content")
	}
	return r.Content[0].Text, nil
}

// Generate sends one Messages API request and returns the reply text.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	var resp Response
	if err := d2shttp.PostJSON(ctx, c.http, c.cfg.Endpoint, Header(c.cfg), BuildRequest(c.cfg, system, user), &resp); err != nil {
		return "", err
	}
	return resp.Text()
}
