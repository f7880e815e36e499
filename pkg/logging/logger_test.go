package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.log")

	log, err := NewLogger(path)
	require.NoError(t, err)

	log.Info(CategoryLayout, "relayout", map[string]any{"width": 80, "height": 24})
	log.Debug(CategoryFocus, "focus moved", nil)
	require.NoError(t, log.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}

	require.Len(t, events, 2)
	assert.Equal(t, LevelInfo, events[0].Level)
	assert.Equal(t, CategoryLayout, events[0].Category)
	assert.Equal(t, "relayout", events[0].Message)
	assert.EqualValues(t, 80, events[0].Details["width"])
	assert.Equal(t, CategoryFocus, events[1].Category)
}

func TestNilLoggerDiscards(t *testing.T) {
	var log *Logger

	// Must not panic.
	log.Info(CategoryLoop, "ignored", nil)
	assert.NoError(t, log.Close())
}

func TestLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.log")

	log, err := NewLogger(path)
	require.NoError(t, err)
	require.NoError(t, log.Close())

	// Must not panic or write.
	log.Error(CategoryRender, "after close", nil)
}
