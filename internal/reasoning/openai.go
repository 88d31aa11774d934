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
	openAIEndpoint     = "https://api.openai.com/v1/chat/completions"
	openAIDefaultModel = "gpt-4o"
)

type openAIClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	defaults   Options
	retryDelay time.Duration
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func newOpenAIClient(config configs.Reasoning, httpClient *http.Client) (Client, error) {
	endpoint := openAIEndpoint
	if config.BaseURL != "" {
		endpoint = strings.TrimRight(config.BaseURL, "/") + "/v1/chat/completions"
	}

	return &openAIClient{
		apiKey:     config.APIKey,
		endpoint:   endpoint,
		httpClient: httpClient,
		defaults:   defaults(config, openAIDefaultModel),
		retryDelay: retryInitialDelay,
	}, nil
}

func (c *openAIClient) Respond(ctx context.Context, prompt string, opts Options) (string, error) {
	options := merge(c.defaults, opts)

	messages := make([]openAIMessage, 0, 2)
	if options.SystemPrompt != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: options.SystemPrompt})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: prompt})

	payload, err := json.Marshal(openAIRequest{
		Model:       options.Model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", providerError(ProviderOpenAI, err)
	}

	_, body, err := doWithRetry(ctx, retryAttempts, c.retryDelay, func() (int, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		return resp.StatusCode, b, err
	})
	if err != nil {
		return "", providerError(ProviderOpenAI, err)
	}

	var response openAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError(ProviderOpenAI, fmt.Errorf("decode response: %w", err))
	}
	if len(response.Choices) == 0 || strings.TrimSpace(response.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%s: %w", ProviderOpenAI, governance.ErrNoReasoningOutcome)
	}

	return response.Choices[0].Message.Content, nil
}
