// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	DatabasePath    string
	JWTSecretKey    string
	GeminiAPIKey    string
	GeminiModelName string
	// CompletionProvider selects the upstream answer provider: "gemini" (default)
	// or "openai" for OpenAI-compatible endpoints.
	CompletionProvider string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	OpenAIModelName    string
	AuthRateLimit      int
	Environment        string
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "juridisk.db"),
		JWTSecretKey:       getEnv("JWT_SECRET_KEY", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelName:    getEnv("GEMINI_MODEL_NAME", "gemini-2.0-flash"),
		CompletionProvider: getEnv("COMPLETION_PROVIDER", "gemini"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		OpenAIModelName:    getEnv("OPENAI_MODEL_NAME", "gpt-4o-mini"),
		AuthRateLimit:      getEnvAsInt("AUTH_RATE_LIMIT", 5),
		Environment:        env,
	}

	// Validation for production environments. The completion API key is
	// deliberately not checked here: its absence surfaces as a request-time
	// error on the completion endpoint, not a startup failure.
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
