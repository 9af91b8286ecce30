package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const listenerBuffer = 16

// Bus is an in-process fan-out of change events. Events only trigger a
// re-render, so a listener whose buffer is full misses the event instead of
// blocking the sender.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	closed    bool
	done      chan struct{}
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
	}
}

// SendEvent stamps the event with a sequence id and fans it out
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Debug("dropping event for slow listener", "listener", id, "event_type", event.Type)
		}
	}
	return nil
}

// Listen registers a listener. The channel closes when ctx is done or the bus closes.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.remove(id)
	}()

	return ch, nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
	}
}

// Close closes every listener channel. Safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	close(b.done)
	return nil
}
