package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"wikiquiz/internal/api"
	"wikiquiz/internal/attempts"
	"wikiquiz/internal/quiz"
	"wikiquiz/internal/workflow"
)

// generateResultMsg carries the outcome of a generation request.
type generateResultMsg struct {
	quiz quiz.Quiz
	err  error
}

// historyResultMsg carries the outcome of a history listing request.
type historyResultMsg struct {
	items []quiz.Summary
	err   error
}

// detailResultMsg carries the outcome of a detail fetch.
type detailResultMsg struct {
	id   string
	quiz quiz.Quiz
	err  error
}

// deleteResultMsg carries the outcome of a delete request.
type deleteResultMsg struct {
	id  string
	err error
}

// historyRefreshMsg asks the history tab to reload; the notifier sends it
// on generation-completed events.
type historyRefreshMsg struct{}

// attemptSavedMsg carries the outcome of recording a local attempt.
type attemptSavedMsg struct {
	err error
}

// generateCmd issues one generation request. A structurally malformed
// quiz in a 2xx response is treated as a failure.
func generateCmd(client *api.Client, url string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Generate(context.Background(), url)
		if err == nil {
			if vErr := quiz.Validate(result); vErr != nil {
				err = fmt.Errorf("malformed quiz: %w", vErr)
			}
		}
		return generateResultMsg{quiz: result, err: err}
	}
}

// historyCmd issues one history listing request.
func historyCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := client.History(context.Background())
		return historyResultMsg{items: items, err: err}
	}
}

// detailCmd fetches the full quiz for an identifier.
func detailCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.QuizDetails(context.Background(), id)
		return detailResultMsg{id: id, quiz: result, err: err}
	}
}

// deleteCmd requests deletion of a quiz by identifier.
func deleteCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteQuiz(context.Background(), id)
		return deleteResultMsg{id: id, err: err}
	}
}

// publishCmd fires the generation-completed notification off the UI
// goroutine.
func publishCmd(notifier *workflow.Notifier) tea.Cmd {
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		notifier.Publish()
		return nil
	}
}

// recordAttemptCmd persists a submitted session locally.
func recordAttemptCmd(recorder *attempts.Recorder, session quiz.Session) tea.Cmd {
	if recorder == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := recorder.Record(session)
		return attemptSavedMsg{err: err}
	}
}
