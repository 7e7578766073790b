package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, false, &result); err != nil {
		return "", err
	}
	if strings.TrimSpace(result.AccessToken) == "" {
		return "", fmt.Errorf("login response has no access token")
	}
	return result.AccessToken, nil
}

// Register creates an account. The full name is optional and omitted from
// the request body when empty. Registration alone does not yield a token.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name,omitempty"`
	}{Email: email, Password: password, FullName: fullName}
	return c.do(ctx, http.MethodPost, "/api/auth/register", payload, false, nil)
}
