package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/notify"
)

// RunFunc is the body of a command once the CLI context is open
type RunFunc func(ctx context.Context, c *CLI, f *OutputFormatter) error

// Run opens the CLI for cmd, runs fn and closes the CLI again. Any error of fn
// is reported through the formatter and returned tagged with its exit code.
func Run(cmd *cobra.Command, open Opener, fn RunFunc) error {
	f := NewFormatter(cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := open(ctx, app.WithNotifier(notify.NewWriter(f.err())))
	if err != nil {
		return f.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := fn(ctx, cliInstance, f); err != nil {
		return f.Fail(err)
	}
	return nil
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

// MarkdownStyle picks the glamour style for w: "dark" on a terminal,
// "notty" when output is piped
func MarkdownStyle(w io.Writer) string {
	if IsTerminal(w) {
		return "dark"
	}
	return "notty"
}
