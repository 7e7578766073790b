package cli

import (
	"fmt"

	"wikiquiz/internal/api"
	"wikiquiz/internal/attempts"
	"wikiquiz/internal/config"
	"wikiquiz/internal/token"
)

// env bundles the pieces every networked command needs: the loaded
// config, the durable token store, the API client, and the local
// attempt recorder.
type env struct {
	cfg      config.Config
	tokens   *token.Store
	client   *api.Client
	recorder *attempts.Recorder
}

// loadEnv builds the command environment from the per-user state
// directory.
func loadEnv() (env, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}
	tokenPath, err := config.TokenPath()
	if err != nil {
		return env{}, fmt.Errorf("resolve token path: %w", err)
	}
	tokens, err := token.Open(tokenPath)
	if err != nil {
		return env{}, fmt.Errorf("open token store: %w", err)
	}
	client, err := api.New(cfg.BaseURL, tokens, nil)
	if err != nil {
		return env{}, fmt.Errorf("build API client: %w", err)
	}
	attemptsDir, err := config.AttemptsDir()
	if err != nil {
		return env{}, fmt.Errorf("resolve attempts dir: %w", err)
	}
	recorder, err := attempts.NewRecorder(attemptsDir)
	if err != nil {
		return env{}, fmt.Errorf("open attempt recorder: %w", err)
	}
	return env{cfg: cfg, tokens: tokens, client: client, recorder: recorder}, nil
}

// loggedIn reports whether a bearer token is currently stored.
func (e env) loggedIn() bool {
	return e.tokens.Token() != ""
}
