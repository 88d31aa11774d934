// Package reasoning talks to hosted text-generation models on behalf of the
// executive panel.
package reasoning

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"proposal_governance_system/configs"
	"proposal_governance_system/internal/governance"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	defaultMaxTokens   = 1024
	defaultTemperature = 0.2
	httpTimeout        = 60 * time.Second
)

// Options tunes a single request; zero fields fall back to the client defaults.
type Options struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

type Client interface {
	Respond(ctx context.Context, prompt string, opts Options) (string, error)
}

type providerFactory func(config configs.Reasoning, httpClient *http.Client) (Client, error)

var providers = map[string]providerFactory{
	ProviderAnthropic: newAnthropicClient,
	"claude":          newAnthropicClient,
	ProviderOpenAI:    newOpenAIClient,
	"gpt":             newOpenAIClient,
}

func NewClient(config configs.Reasoning) (Client, error) {
	name := strings.ToLower(strings.TrimSpace(config.Provider))
	if name == "" {
		name = ProviderAnthropic
	}

	factory, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("reasoning provider %q is not supported", config.Provider)
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s: api key is not configured", name)
	}

	return factory(config, NewHTTPClient(httpTimeout))
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = httpTimeout
	}
	return &http.Client{Timeout: timeout}
}

func defaults(config configs.Reasoning, model string) Options {
	options := Options{
		Model:       config.Model,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	}
	if options.Model == "" {
		options.Model = model
	}
	if options.Temperature == 0 {
		options.Temperature = defaultTemperature
	}
	if options.MaxTokens <= 0 {
		options.MaxTokens = defaultMaxTokens
	}
	return options
}

func merge(base, override Options) Options {
	if override.Model != "" {
		base.Model = override.Model
	}
	if override.Temperature != 0 {
		base.Temperature = override.Temperature
	}
	if override.MaxTokens > 0 {
		base.MaxTokens = override.MaxTokens
	}
	if override.SystemPrompt != "" {
		base.SystemPrompt = override.SystemPrompt
	}
	return base
}

func providerError(provider string, err error) error {
	return fmt.Errorf("%s: %w: %w", provider, governance.ErrProvider, err)
}
