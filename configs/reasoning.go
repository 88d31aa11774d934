package configs

type Reasoning struct {
	Provider    string  `env:"REASONING_PROVIDER" envDefault:"anthropic"`
	APIKey      string  `env:"REASONING_API_KEY"`
	Model       string  `env:"REASONING_MODEL"`
	BaseURL     string  `env:"REASONING_BASE_URL"`
	Temperature float64 `env:"REASONING_TEMPERATURE" envDefault:"0.2"`
	MaxTokens   int     `env:"REASONING_MAX_TOKENS" envDefault:"1024"`
}
