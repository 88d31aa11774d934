package reasoning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/governance"
)

const (
	anthropicEndpoint     = "https://api.anthropic.com/v1/messages"
	anthropicVersion      = "2023-06-01"
	anthropicDefaultModel = "claude-3-5-sonnet-latest"
)

type anthropicClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	defaults   Options
	retryDelay time.Duration
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func newAnthropicClient(config configs.Reasoning, httpClient *http.Client) (Client, error) {
	endpoint := anthropicEndpoint
	if config.BaseURL != "" {
		endpoint = strings.TrimRight(config.BaseURL, "/") + "/v1/messages"
	}

	return &anthropicClient{
		apiKey:     config.APIKey,
		endpoint:   endpoint,
		httpClient: httpClient,
		defaults:   defaults(config, anthropicDefaultModel),
		retryDelay: retryInitialDelay,
	}, nil
}

func (c *anthropicClient) Respond(ctx context.Context, prompt string, opts Options) (string, error) {
	options := merge(c.defaults, opts)

	payload, err := json.Marshal(anthropicRequest{
		Model:       options.Model,
		System:      options.SystemPrompt,
		MaxTokens:   options.MaxTokens,
		Temperature: options.Temperature,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", providerError(ProviderAnthropic, err)
	}

	_, body, err := doWithRetry(ctx, retryAttempts, c.retryDelay, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", anthropicVersion)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		return resp.StatusCode, b, err
	})
	if err != nil {
		return "", providerError(ProviderAnthropic, err)
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError(ProviderAnthropic, fmt.Errorf("decode response: %w", err))
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("%s: %w", ProviderAnthropic, governance.ErrNoReasoningOutcome)
	}

	return text.String(), nil
}
