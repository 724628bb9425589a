package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Logging
	LogLevel  string
	LogFormat string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from the environment, with a .env file applied
// first if one exists. Every field has a usable default except the Gemini
// key, whose absence just disables the AI features.
func Load() *Config {
	// Missing .env is the normal case; real env vars always win.
	godotenv.Load()

	return &Config{
		Port:         getEnv("SMARTSHOP_PORT", "8080"),
		DBPath:       getEnv("SMARTSHOP_DB_PATH", "smartshop.db"),
		LogLevel:     getEnv("SMARTSHOP_LOG_LEVEL", "info"),
		LogFormat:    getEnv("SMARTSHOP_LOG_FORMAT", "text"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("SMARTSHOP_GEMINI_MODEL", ""),
	}
}

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	if c.DBPath == "" {
		problems = append(problems, "db path must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
