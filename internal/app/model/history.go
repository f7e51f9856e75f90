package model

import "time"

// HistoryRecord is one journal row describing how a single source media file
// ended up in a transcription run. The journal is written after each file
// completes and is never consulted to skip or resume work.
type HistoryRecord struct {
	ID             int
	FileName       string
	InputDir       string
	TranscriptFile string
	AudioDuration  float64
	ChunkCount     int
	ChunksDone     int
	Model          string
	FinishedAt     time.Time
	HasError       int
	ErrorMessage   string
}
