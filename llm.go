package docs2skill

import (
	"context"
	"sort"
	"strings"
)

// Provider identifies an LLM service.
type Provider string

// Supported providers.
const (
	ProviderAnthropic  Provider = "anthropic"
	ProviderOpenAI     Provider = "openai"
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
	ProviderGrok       Provider = "grok"
	ProviderOllama     Provider = "ollama"
)

// Family is the request/response shape shared by a group of providers.
type Family string

// Wire families.
const (
	FamilyUnknown   Family = ""
	FamilyAnthropic Family = "anthropic"
	FamilyOpenAI    Family = "openai"
	FamilyGemini    Family = "gemini"
)

// Generation defaults.
const (
	DefaultProvider    = ProviderAnthropic
	DefaultModel       = "claude-3-5-sonnet-20241022"
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.7
)

var defaultEndpoints = map[Provider]string{
	ProviderAnthropic:  "https://api.anthropic.com/v1/messages",
	ProviderOpenAI:     "https://api.openai.com/v1/chat/completions",
	ProviderOpenRouter: "https://openrouter.ai/api/v1/chat/completions",
	ProviderGemini:     "https://generativelanguage.googleapis.com/v1beta/models/",
	ProviderGrok:       "https://api.x.ai/v1/chat/completions",
	ProviderOllama:     "http://localhost:11434/v1/chat/completions",
}

// Providers returns every supported provider, sorted.
func Providers() []Provider {
	ps := make([]Provider, 0, len(defaultEndpoints))
	for p := range defaultEndpoints {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// Family returns the wire family of p, or FamilyUnknown.
func (p Provider) Family() Family {
	switch p {
	case ProviderAnthropic:
		return FamilyAnthropic
	case ProviderOpenAI, ProviderOpenRouter, ProviderGrok, ProviderOllama:
		return FamilyOpenAI
	case ProviderGemini:
		return FamilyGemini
	default:
		return FamilyUnknown
	}
}

// DefaultEndpoint returns the endpoint used when no override is set.
func (p Provider) DefaultEndpoint() string {
	return defaultEndpoints[p]
}

// ProviderConfig describes how to reach one LLM provider. It is built once
// at startup and passed by value.
type ProviderConfig struct {
	Provider    Provider
	Endpoint    string
	Model       string
	APIKey      string
	MaxTokens   int
	Temperature float64
}

// NewProviderConfig builds a ProviderConfig, filling in the default model and
// the provider's default endpoint when they are empty.
func NewProviderConfig(provider, apiKey, model, endpoint string) ProviderConfig {
	p := Provider(strings.ToLower(strings.TrimSpace(provider)))
	if p == "" {
		p = DefaultProvider
	}
	if model == "" {
		model = DefaultModel
	}
	if endpoint == "" {
		endpoint = p.DefaultEndpoint()
	}
	return ProviderConfig{
		Provider:    p,
		Endpoint:    endpoint,
		Model:       model,
		APIKey:      apiKey,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// Validate reports whether the config can be used for a provider call.
func (c ProviderConfig) Validate() error {
	if c.Provider.Family() == FamilyUnknown {
		return &UnsupportedProviderError{Provider: string(c.Provider)}
	}
	if c.APIKey == "" {
		return Errorf(EINVALID, "LLM_API_KEY is required for provider %s", c.Provider)
	}
	if c.Endpoint == "" {
		return Errorf(EINVALID, "no endpoint configured for provider %s", c.Provider)
	}
	return nil
}

// Generator produces text from a single system + user prompt pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Gateway dispatches generation requests to the provider named in cfg.
type Gateway interface {
	// Generate returns the model's text reply. An unknown provider yields
	// *UnsupportedProviderError without any network call.
	Generate(ctx context.Context, cfg ProviderConfig, system, user string) (string, error)
}
