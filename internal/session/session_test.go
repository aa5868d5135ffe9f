package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withScratchConfigDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old := configDir
	configDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDir = old })
}

func TestRestoreWithNoPriorSession(t *testing.T) {
	withScratchConfigDir(t)

	_, ok, err := Restore()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveThenRestoreRoundTrips(t *testing.T) {
	withScratchConfigDir(t)

	require.NoError(t, Save("/tmp/example.kig"))

	got, ok, err := Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/tmp/example.kig", got)
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	withScratchConfigDir(t)

	require.NoError(t, Save("/tmp/first.kig"))
	require.NoError(t, Save("/tmp/second.kig"))

	got, ok, err := Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/tmp/second.kig", got)
}
