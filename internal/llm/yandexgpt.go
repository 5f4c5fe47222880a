package llm

import (
	"context"
	"fmt"
	"strings"

	yandexgpt "github.com/sheeiavellie/go-yandexgpt"
)

const (
	yandexTemperature = 0.3
	yandexMaxTokens   = 2000
)

type YandexGPTConfig struct {
	IAMToken  string
	CatalogID string
}

type YandexGPTGenerator struct {
	config YandexGPTConfig
	client *yandexgpt.YandexGPTClient
}

func NewYandexGPTGenerator(config YandexGPTConfig) *YandexGPTGenerator {
	return &YandexGPTGenerator{
		config: config,
		client: yandexgpt.NewYandexGPTClientWithIAMToken(config.IAMToken),
	}
}

func (g *YandexGPTGenerator) Model() string {
	return yandexgpt.MakeModelURI(g.config.CatalogID, yandexgpt.YandexGPTModelLite)
}

func (g *YandexGPTGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	messages := make([]yandexgpt.YandexGPTMessage, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, yandexgpt.YandexGPTMessage{
			Role: yandexgpt.YandexGPTMessageRoleSystem,
			Text: req.SystemPrompt,
		})
	}

	// flows only send user turns
	for _, msg := range req.Messages {
		messages = append(messages, yandexgpt.YandexGPTMessage{
			Role: yandexgpt.YandexGPTMessageRoleUser,
			Text: msg.Content,
		})
	}

	request := yandexgpt.YandexGPTRequest{
		ModelURI: g.Model(),
		CompletionOptions: yandexgpt.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: yandexTemperature,
			MaxTokens:   yandexMaxTokens,
		},
		Messages: messages,
	}

	response, err := g.client.CreateRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if len(response.Result.Alternatives) == 0 {
		return nil, fmt.Errorf("no content in response")
	}

	text := strings.TrimSpace(response.Result.Alternatives[0].Message.Text)
	if text == "" {
		return nil, fmt.Errorf("no content in response")
	}

	return &TextGenerationResponse{Text: text}, nil
}
