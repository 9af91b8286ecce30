package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/huddle/internal/app"
	"github.com/thenoetrevino/huddle/internal/config"
	"github.com/thenoetrevino/huddle/internal/kv"
	"github.com/thenoetrevino/huddle/internal/kv/memory"
	"github.com/thenoetrevino/huddle/internal/logging"
	"github.com/thenoetrevino/huddle/internal/notify"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logCloser io.Closer
}

// Opener builds the CLI context for one command run. Extra app options
// override the defaults, so a command can redirect notifications.
type Opener func(ctx context.Context, opts ...app.Option) (*CLI, error)

// NewCLI loads the configuration, starts logging and opens the configured storage
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	return newCLI(ctx, nil, opts...)
}

// NewEphemeralCLI is NewCLI on an in-memory store: the session starts from the
// sample data and nothing is written to disk.
func NewEphemeralCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	return newCLI(ctx, memory.New(), opts...)
}

// newCLI opens kvStore, or the configured storage when kvStore is nil
func newCLI(ctx context.Context, kvStore kv.Store, opts ...app.Option) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Init(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	opts = append([]app.Option{
		app.WithLogger(logging.Logger),
		app.WithNotifier(notify.NewWriter(os.Stderr)),
	}, opts...)

	var application *app.App
	if kvStore != nil {
		application, err = app.NewWithStore(ctx, kvStore, opts...)
	} else {
		application, err = app.New(ctx, cfg.Storage, opts...)
	}
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	return &CLI{
		App:       application,
		Config:    cfg,
		logCloser: logCloser,
	}, nil
}

// StoreOpener returns an Opener that builds every CLI on kvStore with cfg
// instead of the configured storage. Used for in-memory sessions and tests.
func StoreOpener(cfg *config.Config, kvStore kv.Store, opts ...app.Option) Opener {
	return func(ctx context.Context, extra ...app.Option) (*CLI, error) {
		all := append(append([]app.Option{}, opts...), extra...)
		application, err := app.NewWithStore(ctx, kvStore, all...)
		if err != nil {
			return nil, err
		}
		return &CLI{App: application, Config: cfg}, nil
	}
}

// Close performs the final save and cleans up CLI resources
func (c *CLI) Close() error {
	err := c.App.Close()
	if c.logCloser != nil {
		err = errors.Join(err, c.logCloser.Close())
	}
	return err
}
