package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/OkhDev/media-to-text/internal/app/api"
)

// TranscriptionCall records one Transcript invocation.
type TranscriptionCall struct {
	InputFilePath string
	Timestamp     time.Time
	Response      string
	Error         error
}

// MockTranscriber is a configurable in-memory api.Transcriber. Chunk
// artifact names are random, so behavior is keyed by call order rather than
// by path.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	Responses       []string // scripted per-call responses, then DefaultResponse
	FailOnCall      int      // 1-based call index that fails, 0 disables
	FailError       error

	CallCount   int
	CallHistory []TranscriptionCall
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
	}
}

// WithDefaultResponse sets the text returned for unscripted calls.
func (m *MockTranscriber) WithDefaultResponse(response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultResponse = response
	return m
}

// WithDefaultError makes every call fail with err.
func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

// WithResponses scripts the responses for the first len(responses) calls.
func (m *MockTranscriber) WithResponses(responses ...string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses = responses
	return m
}

// FailingOn makes the n-th call (1-based) fail with err.
func (m *MockTranscriber) FailingOn(n int, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailOnCall = n
	m.FailError = err
	return m
}

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.CallCount++
	call := TranscriptionCall{InputFilePath: inputFilePath, Timestamp: time.Now()}

	err := m.DefaultError
	if m.FailOnCall == m.CallCount {
		err = m.FailError
		if err == nil {
			err = errors.New("mock transcription failure")
		}
	}
	if err != nil {
		call.Error = err
		m.CallHistory = append(m.CallHistory, call)
		return "", err
	}

	response := m.DefaultResponse
	if m.CallCount-1 < len(m.Responses) {
		response = m.Responses[m.CallCount-1]
	}
	call.Response = response
	m.CallHistory = append(m.CallHistory, call)
	return response, nil
}

// GetCallCount returns how many times Transcript ran.
func (m *MockTranscriber) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// GetCallHistory returns a copy of the recorded calls.
func (m *MockTranscriber) GetCallHistory() []TranscriptionCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := make([]TranscriptionCall, len(m.CallHistory))
	copy(history, m.CallHistory)
	return history
}

var _ api.Transcriber = (*MockTranscriber)(nil)
