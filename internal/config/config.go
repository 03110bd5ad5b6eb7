package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"investadvisor/pkg/advisor"
)

// Config is the runtime configuration derived from environment variables.
type Config struct {
	Server  ServerConfig
	AI      advisor.AIConfig
	DataDir string
	Level   slog.Level
}

// ServerConfig holds HTTP server runtime parameters.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultHost            = "127.0.0.1"
	defaultPort            = 8000
	defaultDataDir         = "data"
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load reads configuration from environment variables, applying defaults
// when values are absent. The AI configuration is resolved once here and
// passed into the core as an immutable value; an absent credential forces
// the mock path for every request.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:            getEnv("ADVISOR_HOST", defaultHost),
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		DataDir: getEnv("ADVISOR_DATA_DIR", defaultDataDir),
		Level:   slog.LevelInfo,
	}

	// Cloud platforms set PORT; allow ADVISOR_PORT override for local dev.
	for _, key := range []string{"ADVISOR_PORT", "PORT"} {
		if raw := os.Getenv(key); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil || port <= 0 {
				return Config{}, fmt.Errorf("invalid %s: %q", key, raw)
			}
			cfg.Server.Port = port
			break
		}
	}

	cfg.AI = loadAIConfig()

	return cfg, nil
}

// loadAIConfig resolves the provider credential for the configured model.
// Gemini models read GEMINI_API_KEY, everything else OPENAI_API_KEY.
func loadAIConfig() advisor.AIConfig {
	model := getEnv("ADVISOR_AI_MODEL", advisor.DefaultAIModel)

	keyEnv := "OPENAI_API_KEY"
	if strings.HasPrefix(strings.ToLower(model), "gemini") {
		keyEnv = "GEMINI_API_KEY"
	}

	return advisor.AIConfig{
		APIKey:  strings.TrimSpace(os.Getenv(keyEnv)),
		Model:   model,
		BaseURL: strings.TrimSpace(os.Getenv("ADVISOR_AI_BASE_URL")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
