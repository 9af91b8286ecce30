package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/huddle/internal/config"
	"github.com/thenoetrevino/huddle/internal/kv/core"
)

func TestOpen_SelectsDriver(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		driver string
		want   core.Driver
	}{
		{"", core.DriverSQLite},
		{config.DriverSQLite, core.DriverSQLite},
		{config.DriverFS, core.DriverFilesystem},
		{config.DriverMemory, core.DriverMemory},
	}

	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+tt.driver, func(t *testing.T) {
			s, err := Open(ctx, config.Storage{Driver: tt.driver, DataDir: dir})
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			assert.Equal(t, tt.want, s.Driver())

			require.NoError(t, s.Put(ctx, "health", []byte("ok")))
			got, err := s.Get(ctx, "health")
			require.NoError(t, err)
			assert.Equal(t, "ok", string(got))
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Storage{Driver: "redis"})
	require.Error(t, err)
}

func TestOpen_S3RequiresBucket(t *testing.T) {
	_, err := Open(context.Background(), config.Storage{Driver: config.DriverS3})
	require.Error(t, err)
}
