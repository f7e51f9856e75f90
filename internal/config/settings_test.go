package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), SettingsFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	body := "media_dir: recordings\nmax_chunk_mb: 10\nhistory:\n  backend: none\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "recordings", s.MediaDir)
	assert.Equal(t, 10, s.MaxChunkMB)
	assert.Equal(t, "none", s.History.Backend)
	assert.Equal(t, "transcripts", s.TranscriptDir)
}

func TestLoadRejectsOversizedChunkCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("max_chunk_mb: 40\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownHistoryBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("history:\n  backend: mysql\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("media_dir: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMaxChunkBytes(t *testing.T) {
	s := Settings{MaxChunkMB: 25}
	assert.Equal(t, int64(25*1024*1024), s.MaxChunkBytes())
}
