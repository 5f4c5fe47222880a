package llm

import (
	"fmt"

	"github.com/schynno0/studio/internal/config"
)

// builds the generator selected by LLM_PROVIDER.
// mock returns an empty MockGenerator; callers supply its rules.
func NewGenerator(cfg config.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      cfg.AnthropicKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		}), nil
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			JSONMode:    true,
		}), nil
	case config.ProviderYandexGPT:
		return NewYandexGPTGenerator(YandexGPTConfig{
			IAMToken:  cfg.YandexIAMToken,
			CatalogID: cfg.YandexCatalogID,
		}), nil
	case config.ProviderMock:
		return NewMockGenerator(nil), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
