package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, f, err := Setup(dir, false)
	require.NoError(t, err)
	assert.Nil(t, f)
	require.NotNil(t, log)

	// Logging must not panic or create anything
	log.Debug("dropped")
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "log directory should not be created")
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, f, err := Setup(dir, true)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Debug("frame drawn", "frame", 7)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger initialized")
	assert.Contains(t, string(data), "frame drawn")
	assert.Contains(t, string(data), "frame=7")
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, FileName)

	large := make([]byte, MaxSize+1)
	require.NoError(t, os.WriteFile(logPath, large, 0644))

	_, f, err := Setup(dir, true)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		name := entry.Name()
		if name != FileName && strings.HasPrefix(name, "scb-demo-") && filepath.Ext(name) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(MaxSize))
}

func TestSetup_SmallFileIsAppended(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0644))

	_, f, err := Setup(dir, true)
	require.NoError(t, err)
	f.Close()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous run\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
