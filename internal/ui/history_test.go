package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wikiquiz/internal/quiz"
	"wikiquiz/internal/workflow"
)

// summaries builds two listing entries for history tests.
func summaries() []quiz.Summary {
	return []quiz.Summary{
		{
			ID:        "q-1",
			Title:     "Alan Turing",
			URL:       "https://en.wikipedia.org/wiki/Alan_Turing",
			CreatedAt: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
			IsCached:  true,
		},
		{
			ID:    "q-2",
			Title: "Climate change",
			URL:   "https://en.wikipedia.org/wiki/Climate_change",
		},
	}
}

// TestHistoryViewEmptyState verifies the first-run message.
func TestHistoryViewEmptyState(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	out := v.view()
	if !strings.Contains(out, "No quizzes yet") {
		t.Fatalf("expected empty state, got:\n%s", out)
	}
	if !strings.Contains(out, "Generate your first quiz to see it here!") {
		t.Fatalf("expected first-run hint, got:\n%s", out)
	}
}

// TestHistoryViewLoadedListing verifies a refresh result fills the
// table.
func TestHistoryViewLoadedListing(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, cmd := v.refresh(testClient())
	if cmd == nil {
		t.Fatalf("expected listing command")
	}
	if !strings.Contains(v.view(), "Loading quizzes...") {
		t.Fatalf("expected loading message")
	}
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())
	out := v.view()
	if !strings.Contains(out, "Previous Quizzes (2)") {
		t.Fatalf("expected listing header, got:\n%s", out)
	}
	if !strings.Contains(out, "Alan_Turing") {
		t.Fatalf("expected article slug in table, got:\n%s", out)
	}
	if !strings.Contains(out, "2026-08-27") {
		t.Fatalf("expected generation date, got:\n%s", out)
	}
}

// TestHistoryViewLoadFailureKeepsItems verifies a failed refresh shows
// the error without dropping what is on screen.
func TestHistoryViewLoadFailureKeepsItems(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{err: errors.New("boom")}, testClient())
	out := v.view()
	if !strings.Contains(out, workflow.HistoryLoadFailed) {
		t.Fatalf("expected load error, got:\n%s", out)
	}
	if !strings.Contains(out, "Previous Quizzes (2)") {
		t.Fatalf("expected items kept, got:\n%s", out)
	}
}

// TestHistoryViewDeleteConfirm verifies the y/n prompt and that the row
// disappears only after the server confirms.
func TestHistoryViewDeleteConfirm(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())

	v, cmd := v.update(key("d"), testClient())
	if cmd != nil {
		t.Fatalf("expected no delete before confirmation")
	}
	if !strings.Contains(v.view(), `Delete "Alan Turing"? This cannot be undone. (y/n)`) {
		t.Fatalf("expected confirm prompt, got:\n%s", v.view())
	}

	v, cmd = v.update(key("y"), testClient())
	if cmd == nil {
		t.Fatalf("expected delete command after confirmation")
	}
	if len(v.state.Items) != 2 {
		t.Fatalf("expected row kept until server confirms")
	}

	v, _ = v.update(deleteResultMsg{id: "q-1"}, testClient())
	if len(v.state.Items) != 1 || v.state.Items[0].ID != "q-2" {
		t.Fatalf("expected q-1 removed, got %v", v.state.Items)
	}
}

// TestHistoryViewDeleteCancelled verifies "n" dismisses the prompt.
func TestHistoryViewDeleteCancelled(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())
	v, _ = v.update(key("d"), testClient())
	v, cmd := v.update(key("n"), testClient())
	if cmd != nil {
		t.Fatalf("expected no command on cancel")
	}
	if v.confirmID != "" {
		t.Fatalf("expected prompt dismissed")
	}
	if len(v.state.Items) != 2 {
		t.Fatalf("expected items untouched")
	}
}

// TestHistoryViewDeleteFailureKeepsRow verifies a failed delete keeps
// the listing intact and reports the error.
func TestHistoryViewDeleteFailureKeepsRow(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())
	v, _ = v.update(key("d"), testClient())
	v, _ = v.update(key("y"), testClient())
	v, _ = v.update(deleteResultMsg{id: "q-1", err: errors.New("boom")}, testClient())
	if len(v.state.Items) != 2 {
		t.Fatalf("expected row kept after failed delete")
	}
	if !strings.Contains(v.view(), workflow.HistoryDeleteFailed) {
		t.Fatalf("expected delete error in view")
	}
}

// TestHistoryViewDetailOpensAndCloses verifies enter opens the fetched
// quiz and esc returns to the listing.
func TestHistoryViewDetailOpensAndCloses(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())

	v, cmd := v.update(key("enter"), testClient())
	if cmd == nil {
		t.Fatalf("expected detail command")
	}
	if !v.loadingDetail {
		t.Fatalf("expected detail fetch in flight")
	}
	v, repeat := v.update(key("enter"), testClient())
	if repeat != nil {
		t.Fatalf("expected repeated enter ignored while fetching")
	}

	v, _ = v.update(detailResultMsg{id: "q-1", quiz: displayQuiz()}, testClient())
	if v.detail == nil {
		t.Fatalf("expected detail view")
	}
	if !strings.Contains(v.view(), "Where was Turing born?") {
		t.Fatalf("expected quiz content in detail view")
	}

	v, _ = v.update(key("esc"), testClient())
	if v.detail != nil {
		t.Fatalf("expected listing restored")
	}
}

// TestHistoryViewDetailFailure verifies a failed detail fetch reports
// and stays on the listing.
func TestHistoryViewDetailFailure(t *testing.T) {
	v := newHistoryView(newStyles(true), nil)
	v, _ = v.refresh(testClient())
	v, _ = v.update(historyResultMsg{items: summaries()}, testClient())
	v, _ = v.update(key("enter"), testClient())
	v, _ = v.update(detailResultMsg{id: "q-1", err: errors.New("boom")}, testClient())
	if v.detail != nil {
		t.Fatalf("expected no detail view after failure")
	}
	if !strings.Contains(v.view(), workflow.HistoryDetailsFailed) {
		t.Fatalf("expected detail error in view")
	}
}
