// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBPath        string
	BaseURL       string
	LogLevel      string
	AccessLogPath string
	TemplatesDir  string

	// Postmark welcome-email settings. An empty token disables sending.
	PostmarkToken string
	FromEmail     string
}

// Load reads .env (if present) and the NODEFLIX_* environment variables,
// applying defaults for anything unset.
func Load() *Config {
	// Missing .env is fine; the environment may be set by the host.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("NODEFLIX_PORT", "8080"),
		DBPath:        getenv("NODEFLIX_DB_PATH", "nodeflix.db"),
		LogLevel:      os.Getenv("NODEFLIX_LOG_LEVEL"),
		AccessLogPath: getenv("NODEFLIX_ACCESS_LOG", "log/access.log"),
		TemplatesDir:  getenv("NODEFLIX_TEMPLATES_DIR", "web/templates"),
		PostmarkToken: os.Getenv("NODEFLIX_POSTMARK_TOKEN"),
		FromEmail:     getenv("NODEFLIX_FROM_EMAIL", "NodeFlix <nodeflix@gmail.com>"),
	}
	cfg.BaseURL = os.Getenv("NODEFLIX_BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
