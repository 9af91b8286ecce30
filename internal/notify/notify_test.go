package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_KeepsMostRecent(t *testing.T) {
	q := NewQueue(2)
	q.Notify(LevelInfo, "one")
	q.Notify(LevelSuccess, "two")
	q.Notify(LevelWarning, "three")

	all := q.All()
	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Message)
	assert.Equal(t, LevelWarning, all[1].Level)

	q.Clear()
	assert.Empty(t, q.All())
}

func TestQueue_Expire(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	q := NewQueue(0)
	q.now = func() time.Time { return now }

	q.Notify(LevelInfo, "old")
	now = now.Add(4 * time.Second)
	q.Notify(LevelInfo, "new")

	q.Expire(3 * time.Second)

	all := q.All()
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].Message)
}

func TestWriter_OnlyWarningsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Notify(LevelSuccess, "created")
	w.Notify(LevelInfo, "loaded")
	w.Notify(LevelWarning, "changes could not be saved")
	w.Notify(LevelError, "boom")

	assert.Equal(t, "warning: changes could not be saved\nerror: boom\n", buf.String())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "unknown", Level(42).String())
}
