package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}
}

// loads server configuration from .env and the process environment
func LoadEnvironmentVariables() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loads configuration for the terminal client
func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// checks that the selected provider has the credentials it needs
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}

	if c.FlowTimeout <= 0 {
		return fmt.Errorf("FLOW_TIMEOUT must be positive, got %s", c.FlowTimeout)
	}

	if c.RateLimit == "" {
		return fmt.Errorf("RATE_LIMIT must not be empty")
	}

	return nil
}

func (c *LLMConfig) Validate() error {
	switch c.Provider {
	case ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	case ProviderYandexGPT:
		if c.YandexIAMToken == "" {
			return fmt.Errorf("YANDEX_IAM_TOKEN environment variable is required")
		}
		if c.YandexCatalogID == "" {
			return fmt.Errorf("YANDEX_CATALOG_ID environment variable is required")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %q", c.Provider)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
