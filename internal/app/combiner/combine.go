package combiner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/OkhDev/media-to-text/internal/app/util/files"
)

// rule is the divider line between transcript blocks.
var rule = strings.Repeat("=", 80)

// DefaultOutputName returns the timestamped file name used when the caller
// does not pick one.
func DefaultOutputName(now time.Time) string {
	return fmt.Sprintf("combined_transcript_%s.txt", now.Format(files.TimestampLayout))
}

// Combiner merges transcript text files into a single document.
type Combiner struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Combiner {
	return &Combiner{logger: logger}
}

// Combine concatenates every .txt file in inputDir, sorted by file name,
// into outputPath, and returns how many files went in. Each file
// contributes a named header block. When inputDir holds no transcripts no
// output file is written.
func (c *Combiner) Combine(inputDir, outputPath string) (int, error) {
	if _, err := os.Stat(inputDir); err != nil {
		return 0, fmt.Errorf("input directory %s: %w", inputDir, err)
	}

	txtFiles, err := files.GetAllTextFiles(inputDir)
	if err != nil {
		return 0, err
	}
	if len(txtFiles) == 0 {
		c.logger.Warn("no transcript files to combine", zap.String("dir", inputDir))
		return 0, nil
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", outputPath, err)
	}

	for i, path := range txtFiles {
		name := filepath.Base(path)
		c.logger.Info("adding transcript", zap.String("file", name))

		content, err := files.ReadTrimmed(path)
		if err != nil {
			out.Close()
			return 0, fmt.Errorf("read %s: %w", name, err)
		}

		if _, err := fmt.Fprintf(out, "# Transcript from: %s\n%s\n\n%s", name, rule, content); err != nil {
			out.Close()
			return 0, fmt.Errorf("write %s: %w", outputPath, err)
		}
		if i < len(txtFiles)-1 {
			if _, err := out.WriteString("\n\n" + rule + "\n\n"); err != nil {
				out.Close()
				return 0, fmt.Errorf("write %s: %w", outputPath, err)
			}
		}
	}

	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", outputPath, err)
	}

	c.logger.Info("combined transcripts",
		zap.Int("count", len(txtFiles)),
		zap.String("output", outputPath))
	return len(txtFiles), nil
}
