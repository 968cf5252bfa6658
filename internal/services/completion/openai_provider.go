// File: internal/services/completion/openai_provider.go
package completion

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider serves OpenAI-compatible completion endpoints, selected with
// COMPLETION_PROVIDER=openai. Same one-shot contract as the Gemini provider.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.config.OpenAIKey == "" {
		return "", NewConfigError("OpenAI API key is not configured")
	}

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.config.OpenAIModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)

	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusServiceUnavailable {
			return "", NewUnavailableError("generate", err)
		}
		return "", NewProviderError("generate", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewProviderError("generate", "empty completion response", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
