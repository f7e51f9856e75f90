package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OkhDev/media-to-text/internal/app/util/files"
)

// Document is the transcript file for one source media file. It is created
// empty before any chunk is submitted, so an interrupted run still leaves
// the finished chunks on disk.
type Document struct {
	Path string
}

// Create allocates an empty transcript file for the given source stem in
// dir, named with the timestamp of now.
func Create(dir, stem string, now time.Time) (*Document, error) {
	if err := files.EnsureDir(dir); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", stem, now.Format(files.TimestampLayout)))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create transcript %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("create transcript %s: %w", path, err)
	}

	return &Document{Path: path}, nil
}

// Append writes the chunk text followed by a blank line. The file is opened
// per append so each finished chunk is durable on its own.
func (d *Document) Append(text string) error {
	f, err := os.OpenFile(d.Path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open transcript %s: %w", d.Path, err)
	}
	if _, err := f.WriteString(text + "\n\n"); err != nil {
		f.Close()
		return fmt.Errorf("append transcript %s: %w", d.Path, err)
	}
	return f.Close()
}
