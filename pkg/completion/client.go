// Package completion talks to an OpenAI-compatible chat completions endpoint.
package completion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second
	systemMessage  = "You are a precise assistant for a fitness tracking application."
	// a week plan is a few kilobytes, anything near this is not an answer
	maxResponseBytes = 1 << 20
)

type Options struct {
	// ForceJSON asks the service for a JSON object response
	ForceJSON bool
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func New(cfg Config) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.http.Timeout <= 0 {
		c.http.Timeout = defaultTimeout
	}
	return c
}

// Complete makes a single attempt and returns the text of the first choice.
// Every failure wraps ErrCompletionUnavailable.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: api key is not configured", errorvalues.ErrCompletionUnavailable)
	}
	reqBody := chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}
	if opts.ForceJSON {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
		reqBody.Temperature = 0.2
	}
	payload, err := sonic.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshalling request: %v", errorvalues.ErrCompletionUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", errorvalues.ErrCompletionUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", errorvalues.ErrCompletionUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", errorvalues.ErrCompletionUnavailable, err)
	}
	if len(body) > maxResponseBytes {
		return "", fmt.Errorf("%w: response exceeds %d bytes", errorvalues.ErrCompletionUnavailable, maxResponseBytes)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", errorvalues.ErrCompletionUnavailable, resp.StatusCode, string(body))
	}
	var chatResp chatResponse
	if err = sonic.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", errorvalues.ErrCompletionUnavailable, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", errorvalues.ErrCompletionUnavailable)
	}
	return chatResp.Choices[0].Message.Content, nil
}
