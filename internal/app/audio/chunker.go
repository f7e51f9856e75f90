package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/util/files"
)

// ErrChunkTooLarge reports a chunk artifact that still exceeds the upload
// cap after splitting. The source cannot be transcribed as configured.
var ErrChunkTooLarge = errors.New("audio chunk exceeds upload size limit")

// Chunker splits a media file's audio track into MP3 artifacts that each
// fit under the transcription service's upload cap.
type Chunker struct {
	tempDir  string
	maxBytes int64
	logger   *zap.Logger
}

func NewChunker(tempDir string, maxBytes int64, logger *zap.Logger) *Chunker {
	return &Chunker{tempDir: tempDir, maxBytes: maxBytes, logger: logger}
}

// Split probes the source duration, estimates the encoded size of the full
// audio track, and cuts the track into equal time spans sized so each
// encoded chunk stays under the cap. Chunks are encoded one at a time; on
// any failure every artifact written so far is removed. The track duration
// in seconds is returned alongside the chunks.
func (c *Chunker) Split(ctx context.Context, file model.MediaFile) ([]model.MediaChunk, float64, error) {
	duration, err := GetAudioDuration(ctx, file.FullPath)
	if err != nil {
		return nil, 0, fmt.Errorf("probe %s: %w", file.Name, err)
	}
	if duration <= 0 {
		return nil, 0, fmt.Errorf("no playable duration in %s", file.Name)
	}

	if err := files.EnsureDir(c.tempDir); err != nil {
		return nil, 0, err
	}

	estimated, err := c.estimateEncodedSize(ctx, file.FullPath)
	if err != nil {
		return nil, 0, fmt.Errorf("estimate encoded size of %s: %w", file.Name, err)
	}

	chunkCount, span := splitPlan(duration, estimated, c.maxBytes)

	c.logger.Info("splitting audio track",
		zap.String("file", file.Name),
		zap.Float64("duration_s", duration),
		zap.Int64("estimated_bytes", estimated),
		zap.Int("chunks", chunkCount))

	chunks := make([]model.MediaChunk, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		start, end := spanBounds(i, span, duration)

		chunkPath := filepath.Join(c.tempDir, fmt.Sprintf("chunk_%s.mp3", uuid.NewString()))
		if err := ExtractAudioRange(ctx, file.FullPath, chunkPath, start, end-start); err != nil {
			discardArtifacts(chunks, chunkPath)
			return nil, 0, fmt.Errorf("extract chunk %d of %s: %w", i+1, file.Name, err)
		}

		info, err := os.Stat(chunkPath)
		if err != nil {
			discardArtifacts(chunks, chunkPath)
			return nil, 0, fmt.Errorf("stat chunk %d of %s: %w", i+1, file.Name, err)
		}
		if info.Size() > c.maxBytes {
			discardArtifacts(chunks, chunkPath)
			return nil, 0, fmt.Errorf("chunk %d of %s is %d bytes: %w", i+1, file.Name, info.Size(), ErrChunkTooLarge)
		}

		chunks = append(chunks, model.MediaChunk{
			Source: file.FullPath,
			Index:  i,
			Start:  start,
			End:    end,
			Size:   info.Size(),
			Path:   chunkPath,
		})
	}

	return chunks, duration, nil
}

// estimateEncodedSize encodes the whole audio track once, takes the size of
// the result, and discards it.
func (c *Chunker) estimateEncodedSize(ctx context.Context, src string) (int64, error) {
	probePath := filepath.Join(c.tempDir, fmt.Sprintf("full_%s.mp3", uuid.NewString()))
	defer os.Remove(probePath)

	if err := ExtractAudioTrack(ctx, src, probePath); err != nil {
		return 0, err
	}
	info, err := os.Stat(probePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// splitPlan returns how many chunks the track needs and the length in
// seconds of each equal time span. A track at or under the cap stays a
// single chunk.
func splitPlan(duration float64, estimated, maxBytes int64) (int, float64) {
	chunkCount := 1
	if estimated > maxBytes {
		chunkCount = int(math.Ceil(float64(estimated) / float64(maxBytes)))
	}
	return chunkCount, duration / float64(chunkCount)
}

// spanBounds returns the half-open time window of chunk i. The final window
// is clamped to the track duration.
func spanBounds(i int, span, duration float64) (start, end float64) {
	start = float64(i) * span
	end = math.Min(float64(i+1)*span, duration)
	return start, end
}

func discardArtifacts(chunks []model.MediaChunk, extra string) {
	os.Remove(extra)
	for _, ch := range chunks {
		os.Remove(ch.Path)
	}
}
