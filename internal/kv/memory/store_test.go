package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/huddle/internal/kv/core"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	assert.Equal(t, core.DriverMemory, s.Driver())

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)

	buf := []byte("hello")
	require.NoError(t, s.Put(ctx, "greeting", buf))
	buf[0] = 'j'

	got, err := s.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got), "stored value must not alias the caller's buffer")

	require.NoError(t, s.Put(ctx, "greeting", []byte("bye")))
	got, _ = s.Get(ctx, "greeting")
	assert.Equal(t, "bye", string(got))

	require.NoError(t, s.Delete(ctx, "greeting"))
	require.NoError(t, s.Delete(ctx, "greeting"))
	_, err = s.Get(ctx, "greeting")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestMemoryStore_InvalidKey(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Put(context.Background(), "../etc", nil), core.ErrInvalidKey)
	assert.ErrorIs(t, s.Put(context.Background(), " ", nil), core.ErrInvalidKey)
}

func TestMemoryStore_FailPuts(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("disk full")

	s.FailPuts(boom)
	assert.ErrorIs(t, s.Put(ctx, "k", []byte("v")), boom)
	assert.Equal(t, 0, s.Keys())

	s.FailPuts(nil)
	assert.NoError(t, s.Put(ctx, "k", []byte("v")))
	assert.Equal(t, 1, s.Keys())
}
