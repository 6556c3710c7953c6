// Package gemini provides a completion provider using the Google
// Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.CompletionProvider = (*Provider)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash-lite"
	DefaultTimeout = 15 * time.Second
)

// Config holds configuration for the Gemini provider.
type Config struct {
	// APIKey is the Google AI Studio API key. When empty the provider
	// reports itself unavailable and is skipped without a network call.
	APIKey string

	// BaseURL is the API base URL (default: the public v1beta endpoint).
	BaseURL string

	// Model is the model to use (default: gemini-2.5-flash-lite).
	Model string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration
}

// Provider calls the generateContent endpoint of the Generative Language API.
type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// generateRequest is the generateContent request format.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

// generateResponse is the generateContent response format.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// New creates a Gemini completion provider.
func New(cfg Config) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Provider{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// ID returns the stable provider identifier.
func (p *Provider) ID() string {
	return "gemini"
}

// Available reports whether an API key is configured.
func (p *Provider) Available() bool {
	return p.apiKey != ""
}

// Complete sends the prompt and returns the generated text.
func (p *Provider) Complete(ctx context.Context, prompt string, opts driven.CompletionOptions) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: opts.MaxTokens,
			Temperature:     opts.Temperature,
			TopP:            opts.TopP,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("gemini quota exhausted: %w", domain.ErrRateLimited)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if genResp.Error != nil {
		if genResp.Error.Code == http.StatusTooManyRequests || genResp.Error.Status == "RESOURCE_EXHAUSTED" {
			return "", fmt.Errorf("gemini quota exhausted: %s: %w", genResp.Error.Message, domain.ErrRateLimited)
		}
		return "", fmt.Errorf("gemini error: %s", genResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(genResp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	var sb strings.Builder
	for _, pt := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(pt.Text)
	}
	return sb.String(), nil
}
