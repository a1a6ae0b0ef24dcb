package main

import (
	"os"

	"github.com/rs/zerolog"
)

// Config holds environment-based configuration for the tool server
type Config struct {
	// TemplateDir is the directory relative template paths resolve under.
	TemplateDir string

	// PricingFile optionally replaces the built-in rate table.
	PricingFile string

	// Level is the log level name ("debug", "info", ...).
	Level string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		TemplateDir: getEnvOrDefault("CDKCOST_TEMPLATE_DIR", "."),
		PricingFile: os.Getenv("CDKCOST_PRICING_FILE"),
		Level:       getEnvOrDefault("CDKCOST_LOG_LEVEL", "info"),
	}
}

// LogLevel parses the configured level, defaulting to info on bad input.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
