package events

import (
	"errors"
	"log/slog"
)

// Publish sends one change event. A nil client or a closed bus is not an
// error: the change already happened and nobody is left to redraw. Any other
// send failure is logged and returned.
func Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil // one-shot CLI commands run without a bus
	}

	err := client.SendEvent(event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrClosed):
		slog.Debug("event bus closed, dropping event", "event_type", event.Type)
		return nil
	default:
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"project_id", event.ProjectID,
			"member_id", event.MemberID,
			"error", err)
		return err
	}
}
