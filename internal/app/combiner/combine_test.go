package combiner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCombineJoinsFilesInNameOrder(t *testing.T) {
	inputDir := t.TempDir()
	write(t, inputDir, "b_meeting.txt", " Beta content \n")
	write(t, inputDir, "a_talk.txt", "Alpha content\n\n")
	write(t, inputDir, "notes.md", "ignored")

	outputPath := filepath.Join(t.TempDir(), "combined.txt")
	count, err := New(zap.NewNop()).Combine(inputDir, outputPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rule := strings.Repeat("=", 80)
	want := "# Transcript from: a_talk.txt\n" + rule + "\n\n" +
		"Alpha content" +
		"\n\n" + rule + "\n\n" +
		"# Transcript from: b_meeting.txt\n" + rule + "\n\n" +
		"Beta content"

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestCombineSingleFileHasNoTrailingSeparator(t *testing.T) {
	inputDir := t.TempDir()
	write(t, inputDir, "only.txt", "solo\n")

	outputPath := filepath.Join(t.TempDir(), "combined.txt")
	count, err := New(zap.NewNop()).Combine(inputDir, outputPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rule := strings.Repeat("=", 80)
	got, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "# Transcript from: only.txt\n"+rule+"\n\nsolo", string(got))
}

func TestCombineEmptyDirWritesNothing(t *testing.T) {
	inputDir := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	count, err := New(zap.NewNop()).Combine(inputDir, outputPath)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err), "no output file may be created for an empty directory")
}

func TestCombineMissingDirFails(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "combined.txt")

	_, err := New(zap.NewNop()).Combine(filepath.Join(t.TempDir(), "absent"), outputPath)
	require.Error(t, err)

	_, err = os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func TestCombineUnreadableFileFails(t *testing.T) {
	inputDir := t.TempDir()
	write(t, inputDir, "fine.txt", "ok")
	require.NoError(t, os.Symlink(filepath.Join(inputDir, "nowhere"), filepath.Join(inputDir, "zz_broken.txt")))

	outputPath := filepath.Join(t.TempDir(), "combined.txt")
	_, err := New(zap.NewNop()).Combine(inputDir, outputPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zz_broken.txt")
}

func TestDefaultOutputName(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "combined_transcript_20250314_092653.txt", DefaultOutputName(now))
}
