package ui

import (
	"sync"
	"time"
)

// StatusMessage is one line shown on the status bar
type StatusMessage struct {
	Text string
	At   time.Time
}

// StatusLog keeps the most recent status messages for `:messages`
type StatusLog struct {
	mu      sync.Mutex
	entries []StatusMessage
	limit   int
	now     func() time.Time
}

// NewStatusLog creates a log holding at most limit messages
func NewStatusLog(limit int) *StatusLog {
	if limit < 1 {
		limit = 1
	}
	return &StatusLog{
		entries: make([]StatusMessage, 0, limit),
		limit:   limit,
		now:     time.Now,
	}
}

// Add records text; empty text is ignored
func (l *StatusLog) Add(text string) {
	if text == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, StatusMessage{Text: text, At: l.now()})
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Latest returns the newest message
func (l *StatusLog) Latest() (StatusMessage, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return StatusMessage{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Newest returns a copy of all messages, newest first
func (l *StatusLog) Newest() []StatusMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]StatusMessage, len(l.entries))
	for i, m := range l.entries {
		out[len(l.entries)-1-i] = m
	}
	return out
}

// Lines formats the history for the overlay
func (l *StatusLog) Lines() []string {
	msgs := l.Newest()
	if len(msgs) == 0 {
		return []string{"No messages"}
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, m.At.Format("15:04:05")+"  "+m.Text)
	}
	return lines
}

// Len returns the number of stored messages
func (l *StatusLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
