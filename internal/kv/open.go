// Package kv selects and opens the key-value backend named in the configuration.
package kv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/thenoetrevino/huddle/internal/config"
	"github.com/thenoetrevino/huddle/internal/kv/core"
	"github.com/thenoetrevino/huddle/internal/kv/fs"
	"github.com/thenoetrevino/huddle/internal/kv/memory"
	"github.com/thenoetrevino/huddle/internal/kv/s3"
	"github.com/thenoetrevino/huddle/internal/kv/sqlite"
)

// Store re-exports the backend interface so callers need only this package.
type Store = core.Store

// Open returns the backend selected by cfg.Driver. An empty driver means sqlite.
func Open(ctx context.Context, cfg config.Storage) (Store, error) {
	switch core.Driver(cfg.Driver) {
	case core.DriverSQLite, "":
		return sqlite.Open(ctx, filepath.Join(cfg.DataDir, "huddle.db"))
	case core.DriverFilesystem:
		return fs.New(filepath.Join(cfg.DataDir, "records"))
	case core.DriverMemory:
		return memory.New(), nil
	case core.DriverS3:
		return s3.New(ctx, s3.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Prefix:    cfg.S3.Prefix,
			PathStyle: cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
