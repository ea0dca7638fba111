// Package config loads the TOML configuration for the demo client: which
// Gemini model to use, how to reach the tool server, and which queries
// the demo runs.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"
)

// Config is the top-level configuration.
type Config struct {
	Model  ModelConfig  `toml:"model"`
	Server ServerConfig `toml:"server"`
	Demo   DemoConfig   `toml:"demo"`
}

// ModelConfig configures the Gemini model and generation parameters.
type ModelConfig struct {
	// Name is the Gemini model identifier.
	Name string `toml:"name" validate:"required"`
	// APIKey is the Gemini API key. When empty, the GEMINI_API_KEY
	// environment variable is used.
	APIKey string `toml:"api_key"`
	// SystemPrompt is an optional system instruction sent with every query.
	SystemPrompt string `toml:"system_prompt"`

	Temperature float64 `toml:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `toml:"max_tokens" validate:"gte=0"`
}

// ServerConfig configures how to reach the MCP tool server.
type ServerConfig struct {
	// Endpoint is the tool server endpoint: a command line for a stdio
	// server, or an http(s):// or sse:// URL for a remote one.
	Endpoint string `toml:"endpoint" validate:"required"`
}

// DemoConfig configures the demo run.
type DemoConfig struct {
	// Queries are run in order, each as an independent conversation.
	Queries []string `toml:"queries"`
}

// Default returns the default configuration: a local stdio tool server
// and the demo queries.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Name:        "gemini-2.5-flash",
			Temperature: 0.5,
			MaxTokens:   8192,
		},
		Server: ServerConfig{
			Endpoint: "stdio://toolserver",
		},
		Demo: DemoConfig{
			Queries: []string{
				"What's the weather like in London?",
				"What is 123 * 45 + 9?",
				"What time is it in Tokyo?",
				"Tell me a fun fact about giraffes.",
			},
		},
	}
}

// Load reads the configuration from path, applying defaults for missing
// fields. A missing file yields the defaults. Path may be empty.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.WithMessagef(err, "failed to read config %s", path)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WithMessagef(err, "failed to parse config %s", path)
		}
	}

	cfg.Model.APIKey = values.StringsCoalesce(cfg.Model.APIKey, os.Getenv("GEMINI_API_KEY"))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.WithMessage(err, "invalid config")
	}
	return cfg, nil
}
