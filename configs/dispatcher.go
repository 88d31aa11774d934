package configs

type Dispatcher struct {
	FunctionsBaseURL string `env:"FUNCTIONS_BASE_URL"`
	FunctionsToken   string `env:"FUNCTIONS_TOKEN"`
}
