// Package extract implements the extraction collaborator: it turns a
// short-video URL into an untrusted recipe draft by asking an
// OpenAI-compatible chat-completions endpoint for structured JSON.
//
// The client never retries: a failed extraction is reported upward as
// an ExtractionError and the caller decides whether to try again.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clipchef/internal/domain"
	"clipchef/internal/logger"
)

// Env var names for the extraction endpoint credentials.
const (
	EnvEndpoint = "CLIPCHEF_EXTRACT_ENDPOINT"
	EnvKey      = "CLIPCHEF_EXTRACT_KEY"
)

// Compile-time interface check.
var _ domain.Extractor = (*Client)(nil)

// message is a single chat-completion message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// payload is the request body sent to the chat-completions endpoint.
type payload struct {
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Model       string    `json:"model,omitempty"`
}

// apiResponse is the top-level response envelope.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Option configures the Client.
type Option func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// Client talks to an OpenAI-compatible chat-completions endpoint and
// parses the reply into a recipe draft.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
	log      *logger.Logger
}

// NewClient creates an extraction client.
//   - endpoint: full URL to the chat/completions resource
//   - apiKey:   the subscription / API key
func NewClient(endpoint, apiKey string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 45 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Extract asks the model to read the recipe out of the given video URL.
// Every failure path wraps into an ExtractionError; the returned draft
// is untrusted and must go through the normalizer before storage.
func (c *Client) Extract(ctx context.Context, url string) (*domain.Draft, error) {
	body := payload{
		Messages: []message{
			{Role: "system", Content: promptExtract},
			{Role: "user", Content: fmt.Sprintf("Extract the recipe from this link: %s", url)},
		},
		Temperature: 0.2,
		MaxTokens:   1500,
		Model:       c.model,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	c.log.Debug("extract: POST %s (%d bytes)", c.endpoint, len(jsonData))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("API %s: %s", resp.Status, truncate(string(respBody), 200))}
	}

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("unmarshal envelope: %w", err)}
	}
	if len(result.Choices) == 0 {
		return nil, &domain.ExtractionError{URL: url, Err: fmt.Errorf("empty response (no choices)")}
	}

	reply := result.Choices[0].Message.Content
	c.log.Debug("extract: reply (%d chars): %s", len(reply), truncate(reply, 120))

	draft, err := ParseDraft(reply)
	if err != nil {
		return nil, &domain.ExtractionError{URL: url, Err: err}
	}
	return draft, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
