package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

// TimestampLayout names generated artifacts down to the second.
const TimestampLayout = "20060102_150405"

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true, ".flv": true,
	".mkv": true, ".webm": true, ".m4v": true, ".3gp": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".aac": true, ".ogg": true, ".wma": true,
	".m4a": true, ".opus": true, ".flac": true, ".aiff": true, ".amr": true,
}

// KindOf classifies a file name by extension, case-insensitively.
func KindOf(name string) model.MediaKind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case videoExtensions[ext]:
		return model.KindVideo
	case audioExtensions[ext]:
		return model.KindAudio
	default:
		return model.KindUnsupported
	}
}

// GetAllMediaFiles returns the supported media files in inputDir, in the
// order the directory lists them, plus the names of skipped unsupported
// files so the caller can report them.
func GetAllMediaFiles(inputDir string) ([]model.MediaFile, []string, error) {
	dir, err := os.Open(inputDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open input directory: %w", err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, nil, fmt.Errorf("read input directory: %w", err)
	}

	var found []model.MediaFile
	var skipped []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind := KindOf(entry.Name())
		if kind == model.KindUnsupported {
			skipped = append(skipped, entry.Name())
			continue
		}
		found = append(found, model.MediaFile{
			FullPath: filepath.Join(inputDir, entry.Name()),
			Name:     entry.Name(),
			Kind:     kind,
		})
	}
	return found, skipped, nil
}

// GetAllTextFiles returns the .txt files in inputDir sorted by file name.
func GetAllTextFiles(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".txt" {
			continue
		}
		found = append(found, filepath.Join(inputDir, entry.Name()))
	}
	return found, nil
}

// EnsureDir creates dir, including parents, if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// SweepChunks removes leftover chunk and full-track estimate artifacts from
// tempDir and reports how many were removed. A missing tempDir is not an
// error.
func SweepChunks(tempDir string) (int, error) {
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read temp directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".mp3") {
			continue
		}
		if !strings.HasPrefix(name, "chunk_") && !strings.HasPrefix(name, "full_") {
			continue
		}
		if err := os.Remove(filepath.Join(tempDir, name)); err != nil {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}

// ReadTrimmed reads the file at path and returns its content with
// surrounding whitespace removed.
func ReadTrimmed(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}
