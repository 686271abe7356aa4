// Package config provides hierarchical configuration loading for the
// JournalAssistCrew service. Precedence: defaults < YAML file < environment
// variables.
package config

import "time"

// Config holds all runtime configuration for the service.
type Config struct {
	Server  Server  `yaml:"server"`
	Model   Model   `yaml:"model"`
	Logging Logging `yaml:"logging"`
}

// Server holds HTTP server configuration.
type Server struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Model holds language-model provider configuration. Provider API keys are
// not configured here; the SDKs read OPENAI_API_KEY / ANTHROPIC_API_KEY
// from the environment.
type Model struct {
	Provider    string  `yaml:"provider"` // "openai" | "anthropic" | "mock"
	Name        string  `yaml:"name"`     // empty = provider default
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" | "text"
}

// Defaults returns a Config with sensible default values for local
// development.
func Defaults() Config {
	return Config{
		Server: Server{
			Addr:           ":8080",
			RequestTimeout: 60 * time.Second,
		},
		Model: Model{
			Provider:    "openai",
			Temperature: 0.3,
			MaxTokens:   4096,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}
