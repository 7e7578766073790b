// Package config loads the wikiquiz client configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL targets a locally running quiz service.
const DefaultBaseURL = "http://localhost:8000"

// Config holds client settings read from the config file.
type Config struct {
	// BaseURL is the quiz service root; paths in the API are relative
	// to it.
	BaseURL string `yaml:"base_url"`
	// NoColor disables ANSI styling in the terminal UI.
	NoColor bool `yaml:"no_color"`
}

// Parse decodes a config document, rejecting unknown fields and multiple
// YAML documents.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the parsed settings.
func Validate(cfg Config) error {
	url := strings.TrimSpace(cfg.BaseURL)
	if url == "" {
		return nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("base_url %q must start with http:// or https://", cfg.BaseURL)
	}
	return nil
}
