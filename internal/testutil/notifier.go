package testutil

import (
	"context"
	"sync"
)

// Notification is one recorded delivery.
type Notification struct {
	Target string
	Text   string
}

// RecordingNotifier records every Notify call and returns Err.
type RecordingNotifier struct {
	mu    sync.Mutex
	calls []Notification
	Err   error
}

func (n *RecordingNotifier) Notify(_ context.Context, target, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, Notification{Target: target, Text: text})
	return n.Err
}

// Calls returns a copy of the recorded deliveries.
func (n *RecordingNotifier) Calls() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.calls...)
}
