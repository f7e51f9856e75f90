package openai

import "github.com/sashabaranov/go-openai"

// NewClient builds an OpenAI API client for the given key. Construction is
// explicit so callers decide when configuration is read and how failures
// surface.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
