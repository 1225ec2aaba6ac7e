package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tysonian801/mtg-chatbot/internal/domain"
	"github.com/tysonian801/mtg-chatbot/internal/ports"
)

var _ ports.Completer = (*Client)(nil)

// Client implements ports.Completer via the OpenAI Chat Completions API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// chatRequest / chatResponse mirror the Chat Completions API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete performs exactly one synchronous chat-completions call. No retry,
// no streaming. Failures come back wrapped in one of the domain sentinels so
// callers can map them to user-facing messages.
func (c *Client) Complete(ctx context.Context, prompt domain.ComposedPrompt) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %w", domain.ErrUpstreamLLM, err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrUpstreamLLM, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: http call: %w", domain.ErrUpstreamLLM, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrUpstreamLLM, err)
	}

	if resp.StatusCode != http.StatusOK {
		err := classify(resp.StatusCode, respBody)
		c.logger.WarnContext(ctx, "chat completion failed",
			"model", c.model, "status", resp.StatusCode, "error", err)
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamLLM, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", domain.ErrUpstreamLLM)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// classify sorts an API failure into the domain error taxonomy: quota and
// bad-credential rejections get their own sentinels, everything else is a
// generic upstream failure carrying the provider's message.
func classify(status int, body []byte) error {
	msg := errorMessage(body)

	switch {
	case status == http.StatusTooManyRequests || strings.Contains(msg, "insufficient_quota"):
		return fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, msg)
	case status == http.StatusUnauthorized || strings.Contains(msg, "invalid_api_key"):
		return fmt.Errorf("%w: %s", domain.ErrInvalidAPIKey, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamLLM, status, msg)
	}
}

// errorMessage pulls the human-readable message out of an API error body,
// falling back to the raw body when it is not the expected JSON shape.
func errorMessage(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		if apiErr.Error.Code != "" {
			return apiErr.Error.Code + ": " + apiErr.Error.Message
		}
		return apiErr.Error.Message
	}
	return string(body)
}
