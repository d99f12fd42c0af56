package mock

import (
	"context"
	"sync"
)

// MockImageReader is a test double for ai.ImageReader.
type MockImageReader struct {
	// ImageToTextFunc is called by ImageToText if set.
	// If nil, the image bytes are returned as text.
	ImageToTextFunc func(ctx context.Context, image []byte) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockImageReader creates a mock OCR reader that echoes the image bytes.
func NewMockImageReader() *MockImageReader {
	return &MockImageReader{}
}

// WithImageToTextFunc sets ImageToTextFunc and returns the reader for chaining.
func (m *MockImageReader) WithImageToTextFunc(fn func(ctx context.Context, image []byte) (string, error)) *MockImageReader {
	m.ImageToTextFunc = fn
	return m
}

// ImageToText returns the injected result, or the image bytes as a string.
func (m *MockImageReader) ImageToText(ctx context.Context, image []byte) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.ImageToTextFunc != nil {
		return m.ImageToTextFunc(ctx, image)
	}
	return string(image), nil
}

// CallCount returns the number of times ImageToText was called.
func (m *MockImageReader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// MockTranscriber is a test double for ai.Transcriber.
type MockTranscriber struct {
	// AudioToTextFunc is called by AudioToText if set.
	// If nil, the audio bytes are returned as text.
	AudioToTextFunc func(ctx context.Context, audio []byte) (string, error)

	mu        sync.Mutex
	callCount int
}

// NewMockTranscriber creates a mock transcriber that echoes the audio bytes.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// WithAudioToTextFunc sets AudioToTextFunc and returns the transcriber for chaining.
func (m *MockTranscriber) WithAudioToTextFunc(fn func(ctx context.Context, audio []byte) (string, error)) *MockTranscriber {
	m.AudioToTextFunc = fn
	return m
}

// AudioToText returns the injected result, or the audio bytes as a string.
func (m *MockTranscriber) AudioToText(ctx context.Context, audio []byte) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.AudioToTextFunc != nil {
		return m.AudioToTextFunc(ctx, audio)
	}
	return string(audio), nil
}

// CallCount returns the number of times AudioToText was called.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
