package config

import (
	"fmt"
	"os"
	"strings"
)

// Load reads and validates the config file and applies defaults and
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	if env := strings.TrimSpace(os.Getenv(EnvBaseURL)); env != "" {
		cfg.BaseURL = env
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}

// LoadDefault loads the config from the standard per-user location.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
