package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAllocatesEmptyTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "transcripts")
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	doc, err := Create(dir, "team_standup", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "team_standup_20250314_092653.txt"), doc.Path)

	content, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestAppendSeparatesChunksWithBlankLine(t *testing.T) {
	doc, err := Create(t.TempDir(), "talk", time.Now())
	require.NoError(t, err)

	require.NoError(t, doc.Append("first chunk text"))
	require.NoError(t, doc.Append("second chunk text"))

	content, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, "first chunk text\n\nsecond chunk text\n\n", string(content))
}

func TestCreateTruncatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	stale := filepath.Join(dir, "talk_20250314_092653.txt")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	doc, err := Create(dir, "talk", now)
	require.NoError(t, err)

	content, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Empty(t, content)
}
