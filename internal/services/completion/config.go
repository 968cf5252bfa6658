// File: internal/services/completion/config.go
package completion

import (
	"fmt"
	"time"
)

type Config struct {
	// Gemini configuration
	GeminiAPIKey string
	GeminiModel  string
	BaseURL      string

	// OpenAI-compatible configuration
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	// Timeout is the HTTP client timeout. There is no retry policy: a
	// failed upstream call surfaces directly as one of the error types.
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.GeminiModel == "" {
		return fmt.Errorf("gemini model name is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		GeminiModel: "gemini-2.0-flash",
		BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
		OpenAIModel: "gpt-4o-mini",
		Timeout:     60 * time.Second,
	}
}
