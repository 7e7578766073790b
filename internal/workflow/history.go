package workflow

import "wikiquiz/internal/quiz"

// Static per-action messages for history failures. Server details are
// deliberately not surfaced here.
const (
	// HistoryLoadFailed is shown when the listing request fails.
	HistoryLoadFailed = "Failed to load quiz history"
	// HistoryDetailsFailed is shown when a detail fetch fails.
	HistoryDetailsFailed = "Failed to load quiz details"
	// HistoryDeleteFailed is shown when a delete request fails.
	HistoryDeleteFailed = "Failed to delete quiz"
)

// HistoryState is the snapshot of the history collection.
type HistoryState struct {
	Loading bool
	Items   []quiz.Summary
	Message string
}

// NewHistoryState starts an empty, not-yet-loaded history.
func NewHistoryState() HistoryState {
	return HistoryState{}
}

// StartLoad enters the loading phase for a refresh; ok reports whether a
// request should be issued. A refresh while one is in flight is ignored.
func (s HistoryState) StartLoad() (HistoryState, bool) {
	if s.Loading {
		return s, false
	}
	s.Loading = true
	s.Message = ""
	return s, true
}

// Loaded replaces the whole collection with the service's listing,
// preserving the service's order.
func (s HistoryState) Loaded(items []quiz.Summary) HistoryState {
	s.Loading = false
	s.Items = items
	s.Message = ""
	return s
}

// LoadFailed surfaces the static listing failure message and leaves the
// held collection unchanged.
func (s HistoryState) LoadFailed() HistoryState {
	s.Loading = false
	s.Message = HistoryLoadFailed
	return s
}

// Removed drops an identifier from the collection after the server
// confirmed deletion. Absent identifiers are a silent no-op.
func (s HistoryState) Removed(id string) HistoryState {
	items := make([]quiz.Summary, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.Items = items
	s.Message = ""
	return s
}

// RemoveFailed surfaces the static delete failure message; the collection
// is left unchanged.
func (s HistoryState) RemoveFailed() HistoryState {
	s.Message = HistoryDeleteFailed
	return s
}

// DetailsFailed surfaces the static detail failure message.
func (s HistoryState) DetailsFailed() HistoryState {
	s.Message = HistoryDetailsFailed
	return s
}
