package capture

import (
	"context"
	"log/slog"

	"github.com/aretw0/vibinremote/internal/logging"
	"github.com/aretw0/vibinremote/pkg/dispatch"
	"github.com/aretw0/vibinremote/pkg/keymap"
)

// Result classifies what the loop did with a key release.
type Result string

const (
	ResultDispatched    Result = "dispatched"
	ResultIgnored       Result = "ignored"
	ResultEnqueueFailed Result = "enqueue_failed"
)

// Enqueuer accepts resolved envelopes for dispatch.
type Enqueuer interface {
	Enqueue(env dispatch.Envelope) error
}

// Recorder receives the result of every key release (e.g. for metrics).
type Recorder interface {
	ObserveKeyEvent(result Result)
}

// Loop turns key releases into dispatch envelopes.
type Loop struct {
	table    *keymap.Table
	baseURL  string
	queue    Enqueuer
	logger   *slog.Logger
	recorder Recorder
}

// Option configures the loop.
type Option func(*Loop)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithRecorder registers a key event observer.
func WithRecorder(r Recorder) Option {
	return func(l *Loop) {
		l.recorder = r
	}
}

// NewLoop creates a capture loop. baseURL is prefixed verbatim to every action path.
func NewLoop(table *keymap.Table, baseURL string, queue Enqueuer, opts ...Option) *Loop {
	l := &Loop{
		table:   table,
		baseURL: baseURL,
		queue:   queue,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.NewNop()
	}
	return l
}

// Run listens on src until it stops. A source failure is logged and returned
// as a *TerminationError; a normal stop returns nil.
func (l *Loop) Run(ctx context.Context, src Source) error {
	l.logger.Info("Listening for key presses...")

	if err := src.Listen(ctx, l.Handle); err != nil {
		l.logger.Error("Keypress listener error", "error", err)
		return &TerminationError{Err: err}
	}

	l.logger.Info("Key capture stopped")
	return nil
}

// Handle processes one event. Only releases of registered keys are dispatched.
func (l *Loop) Handle(ev Event) {
	if ev.Kind != KindRelease {
		return
	}

	action, ok := l.table.Lookup(ev.Key)
	if !ok {
		l.logger.Debug("Ignoring unregistered key", "key", ev.Key)
		l.observe(ResultIgnored)
		return
	}

	url := l.baseURL + action.URL
	if err := l.queue.Enqueue(dispatch.Envelope{Key: ev.Key, URL: url}); err != nil {
		l.logger.Error("Could not send URL to command executor", "key", ev.Key, "url", url, "error", err)
		l.observe(ResultEnqueueFailed)
		return
	}

	l.logger.Info("Key dispatched", "key", ev.Key, "url", url)
	l.observe(ResultDispatched)
}

func (l *Loop) observe(r Result) {
	if l.recorder != nil {
		l.recorder.ObserveKeyEvent(r)
	}
}
