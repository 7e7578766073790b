package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wikiquiz/internal/config"
	"wikiquiz/internal/token"
)

// setHome points the per-user state directory at a temp dir.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	return home
}

// setService points commands at a fake quiz service.
func setService(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv(config.EnvBaseURL, server.URL)
	return server
}

// seedToken stores a bearer token as if a login had happened.
func seedToken(t *testing.T, value string) {
	t.Helper()
	path, err := config.TokenPath()
	if err != nil {
		t.Fatalf("token path: %v", err)
	}
	store, err := token.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Save(value); err != nil {
		t.Fatalf("save token: %v", err)
	}
}

// storedToken reads the durable token back.
func storedToken(t *testing.T) string {
	t.Helper()
	path, err := config.TokenPath()
	if err != nil {
		t.Fatalf("token path: %v", err)
	}
	store, err := token.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store.Token()
}

// feedInput replaces stdin for credential prompts.
func feedInput(t *testing.T, input string) {
	t.Helper()
	old := authInput
	authInput = strings.NewReader(input)
	t.Cleanup(func() { authInput = old })
}

// noTTY forces password prompts onto the line-read fallback.
func noTTY(t *testing.T) {
	t.Helper()
	old := terminalFd
	terminalFd = func(int) bool { return false }
	t.Cleanup(func() { terminalFd = old })
}

// quizBody is a minimal valid generation response.
const quizBody = `{
	"id": "q-1",
	"title": "Alan Turing",
	"summary": "Mathematician and computer scientist.",
	"quiz": [
		{
			"question": "Where was Turing born?",
			"options": ["London", "Cambridge"],
			"answer": "London",
			"explanation": "Born in Maida Vale, London.",
			"difficulty": "easy"
		}
	]
}`
