package whisper

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements transcription against the OpenAI audio API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a RemoteTranscriber that submits audio to the
// given model.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, model: model}
}

// Transcript uploads the audio file and returns the recognized text. The
// verbose JSON response format is requested so the reply carries timing
// metadata alongside the text.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
