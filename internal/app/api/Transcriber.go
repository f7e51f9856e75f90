package api

import "context"

// Transcriber converts one audio file to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}
