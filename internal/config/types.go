package config

import "time"

// supported LLM providers
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderYandexGPT = "yandexgpt"
	ProviderMock      = "mock"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`

	LLM LLMConfig

	// upper bound for one flow run including the model call
	FlowTimeout time.Duration `env:"FLOW_TIMEOUT" envDefault:"60s"`

	// ulule/limiter formatted rate, e.g. "30-M"
	RateLimit string `env:"RATE_LIMIT" envDefault:"30-M"`

	// optional, enables the shared limiter store
	RedisURL string `env:"REDIS_URL"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

type LLMConfig struct {
	Provider    string  `env:"LLM_PROVIDER" envDefault:"anthropic"`
	Model       string  `env:"LLM_MODEL"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"2048"`
	Temperature float32 `env:"LLM_TEMPERATURE" envDefault:"0.4"`

	AnthropicKey    string `env:"ANTHROPIC_API_KEY"`
	OpenAIKey       string `env:"OPENAI_API_KEY"`
	YandexIAMToken  string `env:"YANDEX_IAM_TOKEN"`
	YandexCatalogID string `env:"YANDEX_CATALOG_ID"`
}

// settings for the terminal client
type ClientConfig struct {
	Endpoint    string        `env:"STUDIO_API_ENDPOINT" envDefault:"http://localhost:8080"`
	Environment string        `env:"ENVIRONMENT" envDefault:"development"`
	Timeout     time.Duration `env:"STUDIO_CLIENT_TIMEOUT" envDefault:"90s"`
}
