// Package notify carries user-facing messages from the services to whichever
// surface is showing them (the dashboard's notification panel or stderr).
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Level represents the severity of a notification
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a single message with a severity level
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives user-facing messages
type Notifier interface {
	Notify(level Level, message string)
}

// Nop discards every notification
type Nop struct{}

func (Nop) Notify(Level, string) {}

// Writer prints warnings and errors as single lines, e.g. to stderr for CLI commands.
// Success and info messages are dropped because the command output already covers them.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer notifier
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(level Level, message string) {
	if level < LevelWarning {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, "%s: %s\n", level, message)
}

// DefaultCapacity is the number of notifications a Queue keeps
const DefaultCapacity = 5

// Queue keeps the most recent notifications for display
type Queue struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	now      func() time.Time
}

// NewQueue creates a queue holding at most capacity notifications
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{capacity: capacity, now: time.Now}
}

// Notify appends a notification, evicting the oldest when full
func (q *Queue) Notify(level Level, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, Notification{Level: level, Message: message, At: q.now()})
	if over := len(q.items) - q.capacity; over > 0 {
		q.items = q.items[over:]
	}
}

// All returns a copy of the current notifications, oldest first
func (q *Queue) All() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Notification(nil), q.items...)
}

// Expire drops notifications older than ttl
func (q *Queue) Expire(ttl time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	cutoff := q.now().Add(-ttl)
	kept := q.items[:0]
	for _, n := range q.items {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	q.items = kept
}

// Clear removes all notifications
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}
