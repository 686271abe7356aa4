package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "journalassist.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional; a missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg. Only non-empty env
// values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "JOURNALASSIST_ADDR")
	setDuration(&cfg.Server.RequestTimeout, "JOURNALASSIST_REQUEST_TIMEOUT")
	setString(&cfg.Model.Provider, "JOURNALASSIST_MODEL_PROVIDER")
	setString(&cfg.Model.Name, "JOURNALASSIST_MODEL_NAME")
	setFloat64(&cfg.Model.Temperature, "JOURNALASSIST_MODEL_TEMPERATURE")
	setInt64(&cfg.Model.MaxTokens, "JOURNALASSIST_MODEL_MAX_TOKENS")
	setString(&cfg.Logging.Level, "JOURNALASSIST_LOG_LEVEL")
	setString(&cfg.Logging.Format, "JOURNALASSIST_LOG_FORMAT")
}

// validate rejects configurations the service cannot start with.
func validate(cfg *Config) error {
	switch cfg.Model.Provider {
	case "openai", "anthropic", "mock":
	default:
		return fmt.Errorf("unknown model provider %q (want openai, anthropic or mock)", cfg.Model.Provider)
	}

	if cfg.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}

	if cfg.Model.Temperature < 0 || cfg.Model.Temperature > 2 {
		return fmt.Errorf("model temperature %v out of range [0, 2]", cfg.Model.Temperature)
	}

	if cfg.Model.MaxTokens <= 0 {
		return fmt.Errorf("model max_tokens must be positive")
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
