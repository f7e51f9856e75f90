package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

// GetAudioDuration returns the duration of the media container in seconds,
// as reported by ffprobe.
func GetAudioDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "quiet", "-print_format", "json", "-show_format", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe error: %w", err)
	}

	var probe model.FFProbeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(probe.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}

// ExtractAudioTrack re-encodes the audio track of src into an MP3 at dst,
// dropping any video stream.
func ExtractAudioTrack(ctx context.Context, src, dst string) error {
	return runFFmpeg(ctx, "-y", "-i", src, "-vn", "-acodec", "libmp3lame", dst)
}

// ExtractAudioRange re-encodes the window of src's audio track that starts
// at start seconds and lasts length seconds into an MP3 at dst.
func ExtractAudioRange(ctx context.Context, src, dst string, start, length float64) error {
	return runFFmpeg(ctx, "-y", "-i", src,
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-vn", "-acodec", "libmp3lame", dst)
}

func runFFmpeg(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
