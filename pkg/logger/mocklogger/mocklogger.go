package mocklogger

import (
	"context"
	"log/slog"
	"sync"
)

// MockHandler is an slog.Handler that records what was logged so tests can
// assert on it.
type MockHandler struct {
	mu sync.Mutex

	LoggedMessages []string
	LoggedLevels   []slog.Level
}

// Enabled implements slog.Handler.
func (h *MockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *MockHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LoggedMessages = append(h.LoggedMessages, r.Message)
	h.LoggedLevels = append(h.LoggedLevels, r.Level)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *MockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements slog.Handler.
func (h *MockHandler) WithGroup(name string) slog.Handler {
	return h
}

// Reset drops everything recorded so far.
func (h *MockHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LoggedMessages = h.LoggedMessages[:0]
	h.LoggedLevels = h.LoggedLevels[:0]
}

// NewMockLogger creates a new logger with the mock handler.
func NewMockLogger() *slog.Logger {
	handler := &MockHandler{
		LoggedMessages: []string{},
		LoggedLevels:   []slog.Level{},
	}
	return slog.New(handler)
}
