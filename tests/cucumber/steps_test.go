package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"wikiquiz/internal/cli"
	"wikiquiz/internal/config"
	"wikiquiz/internal/quiz"
	"wikiquiz/internal/token"

	"github.com/cucumber/godog"
)

// featureState holds per-scenario state: the fake service, the state
// directory, captured command output, and the answering session.
type featureState struct {
	homeDir        string
	server         *httptest.Server
	generateDetail string
	deleted        []string
	previousEnv    map[string]*string
	stdout         bytes.Buffer
	stderr         bytes.Buffer
	exitCode       int
	session        quiz.Session
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a running quiz service$`, state.aRunningQuizService)
	ctx.Step(`^the quiz service rejects generation with "([^"]*)"$`, state.serviceRejectsGeneration)
	ctx.Step(`^I am logged in$`, state.iAmLoggedIn)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
	ctx.Step(`^the service deleted quiz "([^"]*)"$`, state.theServiceDeletedQuiz)

	ctx.Step(`^a quiz with these questions:$`, state.aQuizWithQuestions)
	ctx.Step(`^I select "([^"]*)" for question (\d+)$`, state.iSelectForQuestion)
	ctx.Step(`^I submit my answers$`, state.iSubmitMyAnswers)
	ctx.Step(`^I try again$`, state.iTryAgain)
	ctx.Step(`^my score is (\d+) out of (\d+)$`, state.myScoreIs)
	ctx.Step(`^the percentage is (\d+)$`, state.thePercentageIs)
	ctx.Step(`^the session is not submitted$`, state.theSessionIsNotSubmitted)
	ctx.Step(`^no answers are selected$`, state.noAnswersAreSelected)
}

// reset prepares a fresh state directory before each scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.generateDetail = ""
	s.deleted = nil
	s.previousEnv = map[string]*string{}
	s.session = quiz.Session{}

	dir, err := os.MkdirTemp("", "wikiquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create temp home: %w", err)
	}
	s.homeDir = dir
	return s.setEnv(config.EnvHome, dir)
}

// cleanup restores the environment and removes scenario artifacts.
func (s *featureState) cleanup() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
	for key, value := range s.previousEnv {
		if value == nil {
			_ = os.Unsetenv(key)
			continue
		}
		_ = os.Setenv(key, *value)
	}
	if s.homeDir != "" {
		_ = os.RemoveAll(s.homeDir)
	}
}

// aRunningQuizService starts the fake service and points commands at it.
func (s *featureState) aRunningQuizService() error {
	if s.server != nil {
		return nil
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s.setEnv(config.EnvBaseURL, s.server.URL)
}

// serveHTTP implements the endpoints the scenarios exercise.
func (s *featureState) serveHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/quiz/generate":
		if s.generateDetail != "" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"detail": %q}`, s.generateDetail)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, turingQuizJSON)
	case r.Method == http.MethodGet && r.URL.Path == "/api/history":
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, historyJSON)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/quiz/"):
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, turingQuizJSON)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/quiz/"):
		s.deleted = append(s.deleted, strings.TrimPrefix(r.URL.Path, "/api/quiz/"))
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

// serviceRejectsGeneration makes generation fail with a detail message.
func (s *featureState) serviceRejectsGeneration(detail string) error {
	s.generateDetail = detail
	return nil
}

// iAmLoggedIn seeds the durable token store.
func (s *featureState) iAmLoggedIn() error {
	store, err := token.Open(filepath.Join(s.homeDir, config.TokenFileName))
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}
	return store.Save("feature-token")
}

// theConfigIsInvalid writes a config file with an unknown field.
func (s *featureState) theConfigIsInvalid() error {
	path := filepath.Join(s.homeDir, config.FileName)
	return os.WriteFile(path, []byte("base_uri: https://quiz.example.com\n"), 0o644)
}

// iRunCommand executes the CLI in-process and captures its output.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "wikiquiz" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr %q)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	if !strings.Contains(s.stderr.String(), "base_uri") {
		return fmt.Errorf("expected error to mention base_uri, got %q", s.stderr.String())
	}
	return nil
}

func (s *featureState) theServiceDeletedQuiz(id string) error {
	for _, deleted := range s.deleted {
		if deleted == id {
			return nil
		}
	}
	return fmt.Errorf("expected delete of %q, got %v", id, s.deleted)
}

// setEnv records and sets an environment variable for the scenario.
func (s *featureState) setEnv(key, value string) error {
	if s.previousEnv == nil {
		s.previousEnv = map[string]*string{}
	}
	if _, exists := s.previousEnv[key]; !exists {
		if current, ok := os.LookupEnv(key); ok {
			saved := current
			s.previousEnv[key] = &saved
		} else {
			s.previousEnv[key] = nil
		}
	}
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}

const turingQuizJSON = `{
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

const historyJSON = `[
	{"id": "q-1", "title": "Alan Turing", "url": "https://en.wikipedia.org/wiki/Alan_Turing", "created_at": "2026-08-27T10:00:00Z", "is_cached": true},
	{"id": "q-2", "title": "Climate change", "url": "https://en.wikipedia.org/wiki/Climate_change", "created_at": "2026-08-26T09:00:00Z", "is_cached": false}
]`
