// Package dictionary wraps the Jisho.org word-search API and reshapes its
// responses into the records the frontend expects.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Jisho API root.
const DefaultBaseURL = "https://jisho.org/api/v1"

// ErrUpstreamStatus reports a non-2xx response from the dictionary API.
var ErrUpstreamStatus = errors.New("dictionary API returned non-OK status")

// Client queries the Jisho word-search endpoint.
type Client struct {
	client  *resty.Client
	baseURL string
}

// ClientConfig holds configuration for the dictionary client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a dictionary client.
// Parameters:
//   - cfg: client configuration; zero values fall back to defaults.
// Returns:
//   - *Client: initialized client.
func NewClient(cfg *ClientConfig) *Client {
	baseURL := DefaultBaseURL
	timeout := 10 * time.Second
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{
		client:  client,
		baseURL: baseURL,
	}
}

// searchResponse is the raw word-search payload.
type searchResponse struct {
	Meta struct {
		Status int `json:"status"`
	} `json:"meta"`
	Data []SearchResult `json:"data"`
}

// SearchResult is one raw result from the word-search API.
type SearchResult struct {
	Slug     string    `json:"slug"`
	IsCommon bool      `json:"is_common"`
	Tags     []string  `json:"tags"`
	JLPT     []string  `json:"jlpt"`
	Japanese []Reading `json:"japanese"`
	Senses   []Sense   `json:"senses"`
}

// Reading pairs a written form with its kana reading.
type Reading struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

// Sense groups definitions sharing parts of speech.
type Sense struct {
	EnglishDefinitions []string `json:"english_definitions"`
	PartsOfSpeech      []string `json:"parts_of_speech"`
}

// Search queries the word-search endpoint with the given term.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - term: character or word to look up, passed as the keyword parameter.
// Returns:
//   - []SearchResult: raw results, possibly empty.
//   - error: non-nil on transport failure, non-2xx status, or decode failure.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	var result searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("keyword", term).
		SetResult(&result).
		Get(c.baseURL + "/search/words")
	if err != nil {
		return nil, fmt.Errorf("failed to call dictionary API: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrUpstreamStatus, resp.StatusCode(), string(resp.Body()))
	}

	return result.Data, nil
}
