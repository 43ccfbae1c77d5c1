package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToLogFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir, false)
	require.NoError(t, err)

	log.Info("hello from test")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "medimind.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "session_id")
}

func TestDebugLevelGate(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir, false)
	require.NoError(t, err)
	log.Debug("should be dropped")
	require.NoError(t, log.Sync())

	data, _ := os.ReadFile(filepath.Join(dir, "logs", "medimind.log"))
	assert.False(t, strings.Contains(string(data), "should be dropped"))

	dbg, err := New(dir, true)
	require.NoError(t, err)
	dbg.Debug("kept in debug mode")
	require.NoError(t, dbg.Sync())

	data, err = os.ReadFile(filepath.Join(dir, "logs", "medimind.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept in debug mode")
}
