package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientConfig holds connection details for the chat-completion service.
type ClientConfig struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client issues chat-completion calls against an OpenAI-compatible
// endpoint. One call per generation request; retries are a new request.
type Client struct {
	httpClient *http.Client
	config     ClientConfig
	logger     zerolog.Logger
}

func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     cfg,
		logger:     logger.With().Str("component", "generation_client").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message alongside the fixed
// system instruction and returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.config.URL == "" {
		return "", fmt.Errorf("generation endpoint not configured")
	}

	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	payload.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", ErrGenerationTimeout
		}
		return "", fmt.Errorf("completion call: %w", err)
	}
	defer resp.Body.Close()

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		if resp.StatusCode >= 300 {
			return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("decode completion payload: %w", err)
	}

	if resp.StatusCode >= 300 {
		msg := "unknown error"
		if chatResp.Error != nil && chatResp.Error.Message != "" {
			msg = chatResp.Error.Message
		}
		return "", fmt.Errorf("completion service returned status %d: %s", resp.StatusCode, msg)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}

	c.logger.Debug().
		Str("model", c.config.Model).
		Dur("elapsed", time.Since(start)).
		Msg("completion received")

	return chatResp.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
