package workflow

import (
	"testing"

	"wikiquiz/internal/quiz"
)

// summaries builds a small history listing.
func summaries(ids ...string) []quiz.Summary {
	items := make([]quiz.Summary, 0, len(ids))
	for _, id := range ids {
		items = append(items, quiz.Summary{ID: id, Title: "Quiz " + id})
	}
	return items
}

// TestLoadedReplacesCollection verifies a refresh fully replaces the
// held items in service order.
func TestLoadedReplacesCollection(t *testing.T) {
	s := NewHistoryState().Loaded(summaries("a", "b"))
	s = s.Loaded(summaries("c"))
	if len(s.Items) != 1 || s.Items[0].ID != "c" {
		t.Fatalf("expected full replacement, got %+v", s.Items)
	}
}

// TestStartLoadIgnoresConcurrentRefresh verifies the single in-flight
// rule for refreshes.
func TestStartLoadIgnoresConcurrentRefresh(t *testing.T) {
	s, ok := NewHistoryState().StartLoad()
	if !ok {
		t.Fatalf("expected first refresh to start")
	}
	if _, ok := s.StartLoad(); ok {
		t.Fatalf("expected refresh while loading to be ignored")
	}
}

// TestLoadFailedKeepsItems verifies a failed refresh leaves the held
// collection unchanged and surfaces the static message.
func TestLoadFailedKeepsItems(t *testing.T) {
	s := NewHistoryState().Loaded(summaries("a", "b"))
	s, _ = s.StartLoad()
	s = s.LoadFailed()
	if len(s.Items) != 2 {
		t.Fatalf("expected items unchanged, got %+v", s.Items)
	}
	if s.Message != HistoryLoadFailed {
		t.Fatalf("expected static message, got %q", s.Message)
	}
	if s.Loading {
		t.Fatalf("expected loading cleared")
	}
}

// TestRemovedDropsConfirmedID verifies local removal after server
// confirmation.
func TestRemovedDropsConfirmedID(t *testing.T) {
	s := NewHistoryState().Loaded(summaries("a", "b", "c"))
	s = s.Removed("b")
	if len(s.Items) != 2 || s.Items[0].ID != "a" || s.Items[1].ID != "c" {
		t.Fatalf("expected b removed, got %+v", s.Items)
	}
}

// TestRemovedAbsentIDIsSilentNoop verifies deleting an id that is not
// held locally leaves the collection as-is without a message.
func TestRemovedAbsentIDIsSilentNoop(t *testing.T) {
	s := NewHistoryState().Loaded(summaries("a"))
	s = s.Removed("zzz")
	if len(s.Items) != 1 || s.Items[0].ID != "a" {
		t.Fatalf("expected collection unchanged, got %+v", s.Items)
	}
	if s.Message != "" {
		t.Fatalf("expected no message, got %q", s.Message)
	}
}

// TestRemoveFailedKeepsCollection verifies delete failures change
// nothing except the surfaced message.
func TestRemoveFailedKeepsCollection(t *testing.T) {
	s := NewHistoryState().Loaded(summaries("a", "b"))
	s = s.RemoveFailed()
	if len(s.Items) != 2 {
		t.Fatalf("expected items unchanged, got %+v", s.Items)
	}
	if s.Message != HistoryDeleteFailed {
		t.Fatalf("expected delete message, got %q", s.Message)
	}
}

// TestDetailsFailedMessage verifies the static detail failure message.
func TestDetailsFailedMessage(t *testing.T) {
	s := NewHistoryState().DetailsFailed()
	if s.Message != HistoryDetailsFailed {
		t.Fatalf("expected details message, got %q", s.Message)
	}
}
