package workflow

import "sync"

// Notifier delivers generation-completed notifications. The history
// workflow subscribes and refreshes on publish; this replaces the
// original's toggled-flag refresh signal with an explicit event.
type Notifier struct {
	mu          sync.Mutex
	subscribers []func()
}

// Subscribe registers a callback invoked on every publish.
func (n *Notifier) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Publish notifies all subscribers of a completed generation.
func (n *Notifier) Publish() {
	n.mu.Lock()
	subscribers := make([]func(), len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}
