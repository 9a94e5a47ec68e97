// Package gemini implements docs2skill.Generator for the Gemini
// generateContent REST endpoint, using the genai wire types.
package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/jcharovsky/docs2skill"
	d2shttp "github.com/jcharovsky/docs2skill/http"
	"google.golang.org/genai"
)

// Ensure Client implements docs2skill.Generator at compile time.
var _ docs2skill.Generator = (*Client)(nil)

// GenerationConfig holds the sampling parameters sent with a request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Request is the generateContent request body.
type Request struct {
	Contents         []*genai.Content `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Client calls the Gemini endpoint described by a ProviderConfig.
type Client struct {
	cfg  docs2skill.ProviderConfig
	http *http.Client
}

// NewClient creates a Client. httpClient carries the request timeout.
func NewClient(cfg docs2skill.ProviderConfig, httpClient *http.Client) *Client {
	return &Client{cfg: cfg, http: httpClient}
}

// Endpoint returns the request URL. An endpoint ending in "/" is a models
// base and gets "<model>:generateContent" appended; any other endpoint is
// used verbatim.
func Endpoint(cfg docs2skill.ProviderConfig) string {
	if strings.HasSuffix(cfg.Endpoint, "/") {
		return cfg.Endpoint + cfg.Model + ":generateContent"
	}
	return cfg.Endpoint
}

// BuildRequest returns the request body. Gemini receives the system prompt
// and the user prompt as a single text part.
func BuildRequest(cfg docs2skill.ProviderConfig, system, user string) Request {
	return Request{
		Contents: []*genai.Content{{
			Parts: []*genai.Part{{Text: system + "\n\n" + user}},
		}},
		GenerationConfig: GenerationConfig{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxTokens,
		},
	}
}

// Header returns the authentication headers.
func Header(cfg docs2skill.ProviderConfig) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("x-goog-api-key", cfg.APIKey)
	return h
}

// Text returns the text of the first part of the first candidate.
func Text(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", docs2skill.Errorf(docs2skill.EINTERNAL, "gemini response has no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", docs2skill.Errorf(docs2skill.EINTERNAL, "gemini candidate has no content")
	}
	return content.Parts[0].Text, nil
}

// Generate sends one generateContent request and returns the reply text.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	var resp genai.GenerateContentResponse
	if err := d2shttp.PostJSON(ctx, c.http, Endpoint(c.cfg), Header(c.cfg), BuildRequest(c.cfg, system, user), &resp); err != nil {
		return "", err
	}
	return Text(&resp)
}
