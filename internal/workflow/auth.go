package workflow

import (
	"context"
	"fmt"

	"wikiquiz/internal/api"
	"wikiquiz/internal/token"
)

// Generic auth failure messages. Backend reasons are intentionally not
// surfaced to the user.
const (
	// LoginFailedMessage is shown for any rejected login.
	LoginFailedMessage = "Login failed"
	// RegisterFailedMessage is shown when registration or its chained
	// login fails.
	RegisterFailedMessage = "Registration failed"
)

// Auth drives login, registration, and logout. It is the only writer of
// the token store.
type Auth struct {
	Client *api.Client
	Tokens *token.Store
}

// Login exchanges credentials for a bearer token and persists it durably.
func (a Auth) Login(ctx context.Context, email, password string) error {
	tok, err := a.Client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.Tokens.Save(tok); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Register creates an account and chains into Login with the same
// credentials; registration alone does not yield a session. If either
// call fails the whole operation fails and the token store stays empty.
func (a Auth) Register(ctx context.Context, email, password, fullName string) error {
	if err := a.Client.Register(ctx, email, password, fullName); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := a.Login(ctx, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout deletes the durable token. It performs no network call; requests
// already in flight keep the token they snapshotted at dispatch.
func (a Auth) Logout() error {
	if err := a.Tokens.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// LoggedIn reports whether a bearer token is currently held.
func (a Auth) LoggedIn() bool {
	return a.Tokens.Token() != ""
}
