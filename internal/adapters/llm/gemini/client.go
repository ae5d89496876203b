// Package gemini implements ports.Generator against the Gemini
// generateContent REST API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"redline/internal/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-flash-preview"
)

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *resty.Client
	log     zerolog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

// WithModel overrides the default model name.
func WithModel(m string) Option { return func(c *Client) { c.model = m } }

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		http:    resty.New().SetTimeout(60 * time.Second),
		log:     log.With().Str("component", "gemini").Logger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Request/response envelope. Field names follow the generateContent wire
// format: the request config key is snake_case but the mime type hint
// inside it is camelCase.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generation_config"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
}

type candidatePart struct {
	Text string `json:"text"`
}

// Generate posts one prompt and returns the first candidate's first part
// verbatim. No retries; callers decide what a failure means.
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	url := strings.TrimRight(c.baseURL, "/") + "/models/" + c.model + ":generateContent"
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
		},
	}

	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(url)
	if err != nil {
		return "", &ports.TransportError{Err: err}
	}
	if r.IsError() {
		return "", &ports.RemoteError{StatusCode: r.StatusCode(), Body: r.String()}
	}

	// Decode by hand rather than via SetResult so a malformed success body
	// surfaces as a DecodeError, not a transport failure.
	var resp generateResponse
	if err := json.Unmarshal(r.Body(), &resp); err != nil {
		return "", &ports.DecodeError{Err: err}
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned: %w", ports.ErrEmptyResponse)
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no parts returned: %w", ports.ErrEmptyResponse)
	}

	c.log.Debug().Str("model", c.model).Int("status", r.StatusCode()).Dur("took", r.Time()).Msg("generate content")
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
