// Package openai implements docs2skill.Generator for OpenAI-compatible chat
// completion endpoints: OpenAI, OpenRouter, Grok and Ollama.
package openai

import (
	"context"
	"net/http"

	"github.com/jcharovsky/docs2skill"
	d2shttp "github.com/jcharovsky/docs2skill/http"
)

// Referer identifies this tool to OpenRouter.
const Referer = "https://github.com/jcharovsky/Docs2Skill"

// Ensure Client implements docs2skill.Generator at compile time.
var _ docs2skill.Generator = (*Client)(nil)

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completions request body.
type Request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

// Choice is one completion alternative.
type Choice struct {
	Message Message `json:"message"`
}

// Response is the subset of the chat completions reply that is read.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Client calls an OpenAI-compatible endpoint described by a ProviderConfig.
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
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
}

// Header returns the request headers. Ollama is sent no Authorization
// header; OpenRouter additionally receives HTTP-Referer.
func Header(cfg docs2skill.ProviderConfig) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if cfg.Provider != docs2skill.ProviderOllama {
		h.Set("Authorization", "Bearer "+cfg.APIKey)
	}
	if cfg.Provider == docs2skill.ProviderOpenRouter {
		h.Set("HTTP-Referer", Referer)
	}
	return h
}

// Text returns the content of the first choice.
func (r *Response) Text() (string, error) {
	if len(r.Choices) == 0 {
		return "", docs2skill.Errorf(docs2skill.EINTERNAL, "chat completion has no choices")
	}
	return r.Choices[0].Message.Content, nil
}

// Generate sends one chat completion request and returns the reply text.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	var resp Response
	if err := d2shttp.PostJSON(ctx, c.http, c.cfg.Endpoint, Header(c.cfg), BuildRequest(c.cfg, system, user), &resp); err != nil {
		return "", err
	}
	return resp.Text()
}
