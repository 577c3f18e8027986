// Package gohook delivers global key events from libuiohook via github.com/robotn/gohook.
package gohook

import (
	"errors"
	"log/slog"

	"github.com/aretw0/vibinremote/internal/logging"
)

var (
	// ErrHookStopped is returned when the hook ends without being asked to.
	ErrHookStopped = errors.New("global key hook stopped unexpectedly")
	// ErrUnsupported is returned by builds without cgo.
	ErrUnsupported = errors.New("global key capture requires a cgo build")
)

// Source is a capture.Source backed by the process-wide gohook event stream.
// Only one Source may listen at a time.
type Source struct {
	logger *slog.Logger
}

// Option configures the source.
type Option func(*Source)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a hook source.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}
