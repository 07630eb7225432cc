package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parmatma/internal/config"
	"parmatma/internal/errors"
	"parmatma/ports"
)

// GeminiClient implements ports.TextGenerator against the Google
// generative-language REST endpoint.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

// NewGeminiClient creates a client from the AI configuration.
func NewGeminiClient(cfg *config.AIConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.ConfigInvalid("missing generative API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		maxRetries: maxRetries,
		retryDelay: time.Second,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents          []generateContent `json:"contents"`
	SystemInstruction *generateContent  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText posts the prompt to {model}:generateContent and returns the
// first candidate's text. A 429 is retried with doubling backoff (1s, 2s, ...)
// up to the configured attempt count; any other non-2xx status fails at once.
func (c *GeminiClient) GenerateText(ctx context.Context, req ports.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Model) == "" {
		return "", errors.InvalidInput("missing model")
	}

	body := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: req.Prompt}}}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &generateContent{Parts: []generatePart{{Text: req.SystemInstruction}}}
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "marshal generate request")
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(req.Model), url.QueryEscape(c.apiKey))

	delay := c.retryDelay
	for attempt := 1; ; attempt++ {
		status, respRaw, err := c.post(ctx, endpoint, raw)
		if err != nil {
			return "", errors.ExternalServiceError("generative-language", err)
		}

		if status == http.StatusTooManyRequests && attempt < c.maxRetries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", errors.ExternalServiceError("generative-language", ctx.Err())
			}
			delay *= 2
			continue
		}
		if status < 200 || status >= 300 {
			return "", errors.ExternalServiceError("generative-language",
				fmt.Errorf("http %d: %s", status, string(respRaw)))
		}

		var decoded generateResponse
		if err := json.Unmarshal(respRaw, &decoded); err != nil {
			return "", errors.Wrap(err, "unmarshal generate response")
		}
		if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
			return "", errors.ExternalServiceError("generative-language",
				fmt.Errorf("response missing candidates"))
		}
		return decoded.Candidates[0].Content.Parts[0].Text, nil
	}
}

func (c *GeminiClient) post(ctx context.Context, endpoint string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("generative request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respRaw, nil
}
