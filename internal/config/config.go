// Package config resolves settings from three layers, strongest first:
// process environment, a local .env file, and the user's YAML config at
// $XDG_CONFIG_HOME/autodidact/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// File is the YAML config file shape.
type File struct {
	LLM struct {
		Provider   string        `yaml:"provider"`
		Anthropic  ProviderEntry `yaml:"anthropic"`
		OpenAI     ProviderEntry `yaml:"openai"`
		OpenRouter ProviderEntry `yaml:"openrouter"`
		Gemini     ProviderEntry `yaml:"gemini"`
	} `yaml:"llm"`
	DBPath         string `yaml:"db_path"`
	LearnerProfile string `yaml:"learner_profile"`
}

// ProviderEntry holds per-provider settings in the config file.
type ProviderEntry struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Path returns the config file location: $AUTODIDACT_CONFIG wins, then
// the XDG config directory.
func Path() string {
	if p := os.Getenv("AUTODIDACT_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "autodidact", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "autodidact", "config.yaml")
}

// Load reads a .env file from the working directory (if present) and the
// YAML config file (if present), then exports file values as
// AUTODIDACT_* environment variables without overriding anything already
// set. A missing file at either layer is not an error.
func Load() (*File, error) {
	// godotenv never overrides existing env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := readFile(Path())
	if err != nil {
		return nil, err
	}
	cfg.export()
	return cfg, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// export publishes file values into the environment for the settings
// readers, keeping env > .env > file precedence.
func (c *File) export() {
	setIfUnset("AUTODIDACT_LLM_PROVIDER", c.LLM.Provider)

	setIfUnset("AUTODIDACT_ANTHROPIC_API_KEY", c.LLM.Anthropic.APIKey)
	setIfUnset("AUTODIDACT_ANTHROPIC_MODEL", c.LLM.Anthropic.Model)

	setIfUnset("AUTODIDACT_OPENAI_API_KEY", c.LLM.OpenAI.APIKey)
	setIfUnset("AUTODIDACT_OPENAI_MODEL", c.LLM.OpenAI.Model)
	setIfUnset("AUTODIDACT_OPENAI_BASE_URL", c.LLM.OpenAI.BaseURL)

	setIfUnset("AUTODIDACT_OPENROUTER_API_KEY", c.LLM.OpenRouter.APIKey)
	setIfUnset("AUTODIDACT_OPENROUTER_MODEL", c.LLM.OpenRouter.Model)
	setIfUnset("AUTODIDACT_OPENROUTER_BASE_URL", c.LLM.OpenRouter.BaseURL)

	setIfUnset("AUTODIDACT_GEMINI_API_KEY", c.LLM.Gemini.APIKey)
	setIfUnset("AUTODIDACT_GEMINI_MODEL", c.LLM.Gemini.Model)

	setIfUnset("AUTODIDACT_DB", c.DBPath)
	setIfUnset("AUTODIDACT_LEARNER_PROFILE", c.LearnerProfile)
}

func setIfUnset(key, value string) {
	if value == "" {
		return
	}
	if _, ok := os.LookupEnv(key); ok {
		return
	}
	_ = os.Setenv(key, value)
}
