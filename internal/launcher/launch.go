// Package launcher runs the interactive dashboard
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/cli"
	"github.com/thenoetrevino/huddle/internal/notify"
	"github.com/thenoetrevino/huddle/internal/tui"
)

// shutdownGrace bounds how long Launch waits for the program after a signal
const shutdownGrace = 2 * time.Second

// Launch opens the dashboard data with open and runs the TUI until the user
// quits or the process is signalled. Notifications go to the on-screen queue.
func Launch(ctx context.Context, open cli.Opener, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	queue := notify.NewQueue(notify.DefaultCapacity)
	c, err := open(ctx, app.WithNotifier(queue))
	if err != nil {
		return err
	}

	// Final save and storage cleanup
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing dashboard", "error", err)
		}
	}()

	model := tui.New(ctx, c.App, c.Config, queue)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		// A cancelled context also stops the program; that is not a failure
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not stop in time")
		}
	}

	return nil
}
