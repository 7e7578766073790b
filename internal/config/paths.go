package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Filesystem layout under the user's home directory.
const (
	// DirName is the per-user state directory.
	DirName = ".wikiquiz"
	// FileName is the config file inside the state directory.
	FileName = "config.yml"
	// TokenFileName holds the single durable bearer token value.
	TokenFileName = "token"
	// AttemptsDirName holds recorded quiz attempts.
	AttemptsDirName = "attempts"
	// EnvHome overrides the state directory location, mainly for tests.
	EnvHome = "WIKIQUIZ_HOME"
	// EnvBaseURL overrides the configured service base URL.
	EnvBaseURL = "WIKIQUIZ_API_URL"
)

// Dir returns the wikiquiz state directory.
func Dir() (string, error) {
	if override := os.Getenv(EnvHome); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Path returns the config file path inside the state directory.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// TokenPath returns the durable token file path.
func TokenPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TokenFileName), nil
}

// AttemptsDir returns the directory holding recorded attempts.
func AttemptsDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AttemptsDirName), nil
}
