// Package core defines the key-value byte store abstraction the persistence
// adapter writes its records to.
package core

import (
	"context"
	"errors"
)

// Driver identifies a concrete key-value backend implementation.
type Driver string

const (
	// DriverSQLite stores records in a local SQLite file (default).
	DriverSQLite Driver = "sqlite"
	// DriverFilesystem stores one file per key.
	DriverFilesystem Driver = "fs"
	// DriverMemory keeps records in process memory (tests, ephemeral runs).
	DriverMemory Driver = "memory"
	// DriverS3 stores one object per key in an S3 / MinIO bucket.
	DriverS3 Driver = "s3"
)

// Store is a flat key → bytes map with overwrite semantics.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
	Driver() Driver
}

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// ErrInvalidKey is returned for empty keys or keys that would escape a namespace.
var ErrInvalidKey = errors.New("kv: invalid key")
