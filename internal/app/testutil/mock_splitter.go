package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

// MockSplitter fabricates chunk artifacts on disk without running ffmpeg.
type MockSplitter struct {
	TempDir   string
	ChunksPer int              // chunks per file, 0 means 1
	Duration  float64          // seconds per track, 0 means 60
	Err       error            // global failure
	ErrFor    map[string]error // failure keyed by file name
}

func (m *MockSplitter) Split(ctx context.Context, file model.MediaFile) ([]model.MediaChunk, float64, error) {
	if err, ok := m.ErrFor[file.Name]; ok {
		return nil, 0, err
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}

	count := m.ChunksPer
	if count == 0 {
		count = 1
	}
	duration := m.Duration
	if duration == 0 {
		duration = 60
	}
	span := duration / float64(count)

	chunks := make([]model.MediaChunk, 0, count)
	for i := 0; i < count; i++ {
		path := filepath.Join(m.TempDir, fmt.Sprintf("chunk_%s.mp3", uuid.NewString()))
		if err := os.WriteFile(path, []byte("fake chunk"), 0o644); err != nil {
			return nil, 0, err
		}
		chunks = append(chunks, model.MediaChunk{
			Source: file.FullPath,
			Index:  i,
			Start:  float64(i) * span,
			End:    float64(i+1) * span,
			Size:   10,
			Path:   path,
		})
	}
	return chunks, duration, nil
}
