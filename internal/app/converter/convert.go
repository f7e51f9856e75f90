package converter

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/OkhDev/media-to-text/internal/app/api"
	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/repository"
	"github.com/OkhDev/media-to-text/internal/app/transcript"
	"github.com/OkhDev/media-to-text/internal/app/util/files"
	"github.com/OkhDev/media-to-text/internal/config"
)

// Splitter cuts a media file's audio track into chunk artifacts that fit
// the transcription upload cap.
type Splitter interface {
	Split(ctx context.Context, file model.MediaFile) ([]model.MediaChunk, float64, error)
}

// Converter drives the pipeline over the media directory: discover files,
// split each into chunks, submit the chunks in order, and assemble one
// transcript document per source file.
type Converter struct {
	transcriber api.Transcriber
	splitter    Splitter
	db          repository.HistoryDAO
	settings    config.Settings
	heartbeat   *Heartbeat
	logger      *zap.Logger
}

func NewConverter(transcriber api.Transcriber, splitter Splitter, db repository.HistoryDAO,
	settings config.Settings, heartbeat *Heartbeat, logger *zap.Logger) *Converter {
	return &Converter{
		transcriber: transcriber,
		splitter:    splitter,
		db:          db,
		settings:    settings,
		heartbeat:   heartbeat,
		logger:      logger,
	}
}

func (c *Converter) Close() error {
	c.heartbeat.Shutdown()
	return c.db.Close()
}

// Do runs the pipeline once and returns the per-file outcomes. Files are
// processed strictly in the order the directory lists them; one file's
// failure never stops the rest of the run.
func (c *Converter) Do(ctx context.Context) (*model.RunSummary, error) {
	mediaDir := c.settings.MediaDir
	if _, err := os.Stat(mediaDir); os.IsNotExist(err) {
		if err := files.EnsureDir(mediaDir); err != nil {
			return nil, err
		}
		c.logger.Warn("media directory was missing and has been created, add media files and rerun",
			zap.String("dir", mediaDir))
		return &model.RunSummary{}, nil
	}

	if removed, err := files.SweepChunks(c.settings.TempDir); err != nil {
		c.logger.Warn("temp sweep failed", zap.Error(err))
	} else if removed > 0 {
		c.logger.Info("removed stale chunk artifacts", zap.Int("count", removed))
	}
	defer func() {
		if _, err := files.SweepChunks(c.settings.TempDir); err != nil {
			c.logger.Warn("final temp sweep failed", zap.Error(err))
		}
	}()

	discovered, skipped, err := files.GetAllMediaFiles(mediaDir)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		c.logger.Warn("skipping unsupported files",
			zap.Int("count", len(skipped)),
			zap.Strings("files", skipped))
	}
	if len(discovered) == 0 {
		c.logger.Warn("no supported media files found", zap.String("dir", mediaDir))
		return &model.RunSummary{}, nil
	}

	c.logger.Info("starting transcription run",
		zap.Int("files", len(discovered)),
		zap.String("dir", mediaDir),
		zap.String("model", c.settings.Model))

	summary := &model.RunSummary{}
	for i, file := range discovered {
		if ctx.Err() != nil {
			c.logger.Warn("run interrupted", zap.Int("files_remaining", len(discovered)-i))
			return summary, ctx.Err()
		}

		c.logger.Info("processing file",
			zap.Int("index", i+1),
			zap.Int("total", len(discovered)),
			zap.String("file", file.Name),
			zap.String("kind", file.Kind.String()))

		summary.Add(c.processFile(ctx, file))
	}
	return summary, nil
}

// processFile takes one source through split, transcribe and assemble. The
// transcript document is created before the first chunk is submitted. A chunk
// that fails to transcribe is logged and omitted while the remaining chunks
// still run; only a document write failure gives up on the file.
func (c *Converter) processFile(ctx context.Context, file model.MediaFile) model.FileOutcome {
	outcome := model.FileOutcome{File: file}

	stopChunking := c.heartbeat.Start(fmt.Sprintf("Chunking %s", file.Name))
	chunks, duration, err := c.splitter.Split(ctx, file)
	stopChunking()
	if err != nil {
		outcome.Err = err
		c.logger.Error("chunking failed", zap.String("file", file.Name), zap.Error(err))
		c.record(file, "", 0, 0, 0, err)
		return outcome
	}

	doc, err := transcript.Create(c.settings.TranscriptDir, file.Stem(), time.Now())
	if err != nil {
		discardChunks(chunks)
		outcome.Err = err
		c.logger.Error("creating transcript file failed", zap.String("file", file.Name), zap.Error(err))
		c.record(file, "", duration, len(chunks), 0, err)
		return outcome
	}
	outcome.TranscriptPath = doc.Path

	done := 0
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			discardChunks(chunks[i:])
			outcome.Err = ctx.Err()
			c.record(file, doc.Path, duration, len(chunks), done, outcome.Err)
			return outcome
		}

		stop := c.heartbeat.Start(fmt.Sprintf("Transcribing %s [chunk %d/%d]", file.Name, i+1, len(chunks)))
		text, terr := c.transcriber.Transcript(ctx, chunk.Path)
		stop()

		if rmErr := os.Remove(chunk.Path); rmErr != nil {
			c.logger.Warn("failed to remove chunk artifact", zap.String("path", chunk.Path), zap.Error(rmErr))
		}

		if terr != nil {
			if ctx.Err() != nil {
				discardChunks(chunks[i+1:])
				outcome.Err = ctx.Err()
				c.record(file, doc.Path, duration, len(chunks), done, outcome.Err)
				return outcome
			}
			c.logger.Error("chunk transcription failed, its text is omitted",
				zap.String("file", file.Name),
				zap.Int("chunk", i+1),
				zap.Int("total", len(chunks)),
				zap.Error(terr))
			continue
		}

		if aerr := doc.Append(text); aerr != nil {
			discardChunks(chunks[i+1:])
			outcome.Err = fmt.Errorf("append to %s: %w", doc.Path, aerr)
			c.logger.Error("appending to transcript failed, giving up on file",
				zap.String("file", file.Name),
				zap.Error(aerr))
			c.record(file, doc.Path, duration, len(chunks), done, outcome.Err)
			return outcome
		}

		done++
		c.logger.Info("chunk transcribed",
			zap.String("file", file.Name),
			zap.Int("chunk", i+1),
			zap.Int("total", len(chunks)))
	}

	if done < len(chunks) {
		c.logger.Warn("transcript is missing failed chunks",
			zap.String("file", file.Name),
			zap.Int("chunks_done", done),
			zap.Int("chunks", len(chunks)))
	}
	c.logger.Info("transcript written",
		zap.String("file", file.Name),
		zap.String("transcript", doc.Path),
		zap.Int("chunks", len(chunks)))
	c.record(file, doc.Path, duration, len(chunks), done, nil)
	return outcome
}

// record journals the outcome. Journal failures are logged and swallowed so
// bookkeeping can never fail a run.
func (c *Converter) record(file model.MediaFile, transcriptPath string, duration float64,
	chunkCount, chunksDone int, runErr error) {
	rec := model.HistoryRecord{
		FileName:       file.Name,
		InputDir:       c.settings.MediaDir,
		TranscriptFile: transcriptPath,
		AudioDuration:  duration,
		ChunkCount:     chunkCount,
		ChunksDone:     chunksDone,
		Model:          c.settings.Model,
		FinishedAt:     time.Now(),
	}
	if runErr != nil {
		rec.HasError = 1
		rec.ErrorMessage = runErr.Error()
	}
	if err := c.db.Record(rec); err != nil {
		c.logger.Warn("history journal write failed", zap.Error(err))
	}
}

func discardChunks(chunks []model.MediaChunk) {
	for _, ch := range chunks {
		os.Remove(ch.Path)
	}
}
