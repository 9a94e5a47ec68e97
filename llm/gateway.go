// Package llm dispatches generation requests to the client for a provider's
// wire family.
package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/jcharovsky/docs2skill"
	"github.com/jcharovsky/docs2skill/anthropic"
	"github.com/jcharovsky/docs2skill/gemini"
	"github.com/jcharovsky/docs2skill/openai"
)

// DefaultTimeout bounds every provider call.
const DefaultTimeout = 60 * time.Second

// Ensure Gateway implements docs2skill.Gateway at compile time.
var _ docs2skill.Gateway = (*Gateway)(nil)

// Gateway implements docs2skill.Gateway over the anthropic, openai and
// gemini clients.
type Gateway struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout sets the timeout for provider calls.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithHTTPClient sets the HTTP client used for provider calls. Its timeout
// is replaced by the gateway timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

// NewGateway creates a Gateway.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(g)
	}

	client := &http.Client{}
	if g.client != nil {
		c := *g.client
		client = &c
	}
	client.Timeout = g.timeout
	g.client = client

	return g
}

// Generator returns the client for cfg's provider family.
func (g *Gateway) Generator(cfg docs2skill.ProviderConfig) (docs2skill.Generator, error) {
	switch cfg.Provider.Family() {
	case docs2skill.FamilyAnthropic:
		return anthropic.NewClient(cfg, g.client), nil
	case docs2skill.FamilyOpenAI:
		return openai.NewClient(cfg, g.client), nil
	case docs2skill.FamilyGemini:
		return gemini.NewClient(cfg, g.client), nil
	default:
		return nil, &docs2skill.UnsupportedProviderError{Provider: string(cfg.Provider)}
	}
}

// Generate sends system and user to the provider named in cfg.
func (g *Gateway) Generate(ctx context.Context, cfg docs2skill.ProviderConfig, system, user string) (string, error) {
	gen, err := g.Generator(cfg)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, system, user)
}
