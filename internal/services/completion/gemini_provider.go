// File: internal/services/completion/gemini_provider.go
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nordsted/juridisk-ai/internal/services"
)

// GeminiProvider calls the Generative Language generateContent endpoint.
// One prompt in, one complete answer out; no streaming, no retries.
type GeminiProvider struct {
	config *Config
	client *http.Client
	logger services.Logger
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func NewGeminiProvider(config *Config, logger services.Logger) *GeminiProvider {
	return &GeminiProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.config.GeminiAPIKey == "" {
		return "", NewConfigError("Gemini API key is not configured")
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", NewProviderError("generate", "failed to encode request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.config.BaseURL, p.config.GeminiModel, p.config.GeminiAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", NewProviderError("generate", "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("gemini request failed", "error", err)
		return "", NewProviderError("generate", "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewProviderError("generate", "failed to read response", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		p.logger.Warn("gemini temporarily unavailable", "status", resp.StatusCode)
		return "", NewUnavailableError("generate", fmt.Errorf("upstream status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		p.logger.Error("gemini returned non-OK status", "status", resp.StatusCode)
		return "", NewProviderError("generate", fmt.Sprintf("upstream status %d", resp.StatusCode), nil)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", NewProviderError("generate", "failed to decode response", err)
	}
	if parsed.Error != nil {
		return "", NewProviderError("generate", parsed.Error.Message, nil)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", NewProviderError("generate", "empty completion response", nil)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
