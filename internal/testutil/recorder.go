package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/huddle/internal/events"
	"github.com/thenoetrevino/huddle/internal/notify"
)

// EventRecorder is an events.EventPublisher that records every event sent
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

// NewEventRecorder creates an empty recorder
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) SendEvent(event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *EventRecorder) Listen(ctx context.Context) (<-chan events.Event, error) {
	return nil, errors.New("recorder does not support listening")
}

func (r *EventRecorder) Close() error { return nil }

// Events returns a copy of the recorded events
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// Types returns the type of every recorded event in order
func (r *EventRecorder) Types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.EventType, 0, len(r.events))
	for _, ev := range r.events {
		types = append(types, ev.Type)
	}
	return types
}

// NotifyRecorder is a notify.Notifier that records every notification
type NotifyRecorder struct {
	mu    sync.Mutex
	items []notify.Notification
}

func (r *NotifyRecorder) Notify(level notify.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, notify.Notification{Level: level, Message: message})
}

// All returns a copy of the recorded notifications
func (r *NotifyRecorder) All() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.items...)
}

// Count returns how many notifications of level were recorded
func (r *NotifyRecorder) Count(level notify.Level) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.Level == level {
			n++
		}
	}
	return n
}
