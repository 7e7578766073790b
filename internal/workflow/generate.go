// Package workflow holds the client's state machines. Transitions are
// value-receiver functions over immutable snapshots; the terminal UI
// renders snapshots and never mutates workflow state directly.
package workflow

import (
	"strings"

	"wikiquiz/internal/api"
	"wikiquiz/internal/quiz"
)

// GeneratePhase identifies where a generation session stands.
type GeneratePhase int

const (
	// GenerateIdle means no request has been attempted yet.
	GenerateIdle GeneratePhase = iota
	// GenerateValidating covers the local pre-flight check of the URL.
	GenerateValidating
	// GenerateLoading means exactly one request is in flight.
	GenerateLoading
	// GenerateSuccess means a quiz was received and is displayed.
	GenerateSuccess
	// GenerateError means the last attempt failed and a message is shown.
	GenerateError
)

// User-facing messages for the generation workflow.
const (
	// ValidationMessage is shown for an empty URL; no request is issued.
	ValidationMessage = "Please enter a Wikipedia URL"
	// GenerateFallback is shown when the service gave no usable detail.
	GenerateFallback = "Error generating quiz"
	// GeneratedMessage confirms a successful generation.
	GeneratedMessage = "✓ Quiz generated successfully!"
)

// GenerateState is the snapshot of one quiz-generation session.
type GenerateState struct {
	Phase   GeneratePhase
	Input   string
	Quiz    *quiz.Quiz
	Message string
}

// NewGenerateState starts an idle generation session.
func NewGenerateState() GenerateState {
	return GenerateState{Phase: GenerateIdle}
}

// SetInput replaces the URL input field.
func (s GenerateState) SetInput(value string) GenerateState {
	s.Input = value
	return s
}

// Submit validates the input and, when it passes, clears any displayed
// quiz and enters the loading phase. The returned string is the trimmed
// URL to send; ok reports whether a request should be issued. Submitting
// while a request is in flight is ignored.
func (s GenerateState) Submit() (GenerateState, string, bool) {
	if s.Phase == GenerateLoading {
		return s, "", false
	}
	s.Phase = GenerateValidating
	trimmed := strings.TrimSpace(s.Input)
	if trimmed == "" {
		s.Phase = GenerateError
		s.Message = ValidationMessage
		return s, "", false
	}
	s.Phase = GenerateLoading
	s.Quiz = nil
	s.Message = ""
	return s, trimmed, true
}

// Complete records a received quiz and clears the input for the next
// generation. The caller publishes the generation-completed notification.
func (s GenerateState) Complete(q quiz.Quiz) GenerateState {
	s.Phase = GenerateSuccess
	s.Quiz = &q
	s.Input = ""
	s.Message = GeneratedMessage
	return s
}

// Fail surfaces the request failure, preferring a server detail message
// and keeping the entered URL so the user can retry.
func (s GenerateState) Fail(err error) GenerateState {
	s.Phase = GenerateError
	s.Message = api.Message(err, GenerateFallback)
	return s
}
