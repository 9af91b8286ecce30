package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/huddle/internal/kv/core"
)

func TestFilesystemStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "nested", "data")

	s, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, core.DriverFilesystem, s.Driver())

	_, err = s.Get(ctx, "dashboard_projects")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Put(ctx, "dashboard_projects", []byte(`{"projects":[]}`)))
	require.NoError(t, s.Put(ctx, "dashboard_projects", []byte(`{"projects":[1]}`)))

	got, err := s.Get(ctx, "dashboard_projects")
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[1]}`, string(got))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "dashboard_projects.json", entries[0].Name())

	require.NoError(t, s.Delete(ctx, "dashboard_projects"))
	require.NoError(t, s.Delete(ctx, "dashboard_projects"))
	_, err = s.Get(ctx, "dashboard_projects")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestFilesystemStore_RejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Put(context.Background(), "../escape", []byte("x")), core.ErrInvalidKey)
	_, err = s.Get(context.Background(), "a/b")
	assert.ErrorIs(t, err, core.ErrInvalidKey)
}
