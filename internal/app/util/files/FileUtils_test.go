package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     model.MediaKind
	}{
		{"mp4_lowercase", "talk.mp4", model.KindVideo},
		{"mp4_uppercase", "talk.MP4", model.KindVideo},
		{"webm", "clip.webm", model.KindVideo},
		{"3gp", "clip.3gp", model.KindVideo},
		{"mp3_mixed_case", "voice.Mp3", model.KindAudio},
		{"flac_uppercase", "voice.FLAC", model.KindAudio},
		{"aiff", "memo.aiff", model.KindAudio},
		{"amr", "memo.amr", model.KindAudio},
		{"multiple_dots", "talk.v2.final.mp4", model.KindVideo},
		{"text_file", "notes.txt", model.KindUnsupported},
		{"archive", "archive.zip", model.KindUnsupported},
		{"no_extension", "audiofile", model.KindUnsupported},
		{"trailing_space", "voice.mp3 ", model.KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.fileName))
		})
	}
}

func TestGetAllMediaFilesFiltersUnsupported(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "talk.mp4")
	touch(t, dir, "voice.m4a")
	touch(t, dir, "notes.txt")
	touch(t, dir, "README.md")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp4"), 0o755))

	found, skipped, err := GetAllMediaFiles(dir)
	require.NoError(t, err)

	kinds := make(map[string]model.MediaKind, len(found))
	for _, f := range found {
		kinds[f.Name] = f.Kind
		assert.Equal(t, filepath.Join(dir, f.Name), f.FullPath)
	}
	assert.Equal(t, map[string]model.MediaKind{
		"talk.mp4":  model.KindVideo,
		"voice.m4a": model.KindAudio,
	}, kinds)

	// Directories are ignored outright, only unsupported files are reported.
	assert.ElementsMatch(t, []string{"notes.txt", "README.md"}, skipped)
}

func TestGetAllMediaFilesMissingDir(t *testing.T) {
	_, _, err := GetAllMediaFiles(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestGetAllTextFilesSortedByName(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.txt")
	touch(t, dir, "a.txt")
	touch(t, dir, "c.TXT")
	touch(t, dir, "skip.mp3")

	found, err := GetAllTextFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.TXT"),
	}, found)
}

func TestEnsureDirDeeplyNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "level1", "level2", "level3", "out")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureDir(dir))
}

func TestEnsureDirExistingFileAtPath(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "occupied")

	assert.Error(t, EnsureDir(filepath.Join(dir, "occupied")))
}

func TestSweepChunks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "chunk_one.mp3")
	touch(t, dir, "chunk_two.mp3")
	touch(t, dir, "full_estimate.mp3")
	touch(t, dir, "chunk_notes.txt")
	touch(t, dir, "song.mp3")

	removed, err := SweepChunks(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{"chunk_notes.txt", "song.mp3"}, left)
}

func TestSweepChunksMissingDir(t *testing.T) {
	removed, err := SweepChunks(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestReadTrimmed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello world \n\n"), 0o644))

	got, err := ReadTrimmed(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}
