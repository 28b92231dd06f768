// Package translate provides the translation collaborator used to
// bridge non-English queries into the engine's token space. The engine
// never depends on translation succeeding: every failure path returns
// the original text alongside the error so callers can fall back.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"
)

const defaultTimeout = 3 * time.Second

// Client calls an external translation endpoint that accepts
// {"query": ...} and responds with {"translated": ...}.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a translation client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type translateRequest struct {
	Query string `json:"query"`
}

type translateResponse struct {
	Translated string `json:"translated"`
}

// Translate returns the English form of text. ASCII-only input is
// already searchable and returned unchanged without a network call.
// On any transport, status or decoding failure the original text is
// returned together with the error.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" || isASCII(text) {
		return text, nil
	}

	body, err := json.Marshal(translateRequest{Query: text})
	if err != nil {
		return text, fmt.Errorf("failed to encode translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return text, fmt.Errorf("failed to build translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return text, fmt.Errorf("translation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return text, fmt.Errorf("translation endpoint returned status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return text, fmt.Errorf("failed to decode translation response: %w", err)
	}
	if strings.TrimSpace(decoded.Translated) == "" {
		return text, nil
	}
	return decoded.Translated, nil
}

// isASCII reports whether the text contains only ASCII runes, the
// heuristic for "already English enough to tokenize".
func isASCII(text string) bool {
	for _, r := range text {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Noop is a Translator that performs no translation. Used when no
// endpoint is configured and throughout tests.
type Noop struct{}

// Translate returns the input unchanged.
func (Noop) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}
