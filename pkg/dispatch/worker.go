package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/vibinremote/internal/logging"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = time.Second

// Outcome classifies the result of one dispatch.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeHTTPError      Outcome = "http_error"
	OutcomeTransportError Outcome = "transport_error"
)

// Recorder receives the outcome of every dispatch (e.g. for metrics).
type Recorder interface {
	ObserveDispatch(outcome Outcome, elapsed time.Duration)
}

// Worker drains a Queue, sending one POST per envelope.
// Requests are strictly sequential and never retried.
type Worker struct {
	queue    *Queue
	client   *http.Client
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
}

// Option configures the worker.
type Option func(*Worker)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Worker) {
		w.client = c
	}
}

// WithTimeout sets the deadline applied to each request.
func WithTimeout(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

// WithRecorder registers an outcome observer.
func WithRecorder(r Recorder) Option {
	return func(w *Worker) {
		w.recorder = r
	}
}

// NewWorker creates a worker bound to queue.
func NewWorker(queue *Queue, opts ...Option) *Worker {
	w := &Worker{
		queue:   queue,
		client:  &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	return w
}

// Run processes envelopes until the queue is closed and drained.
// ctx is the parent of every request context; cancelling it fails in-flight and
// remaining requests quickly but does not stop the drain.
func (w *Worker) Run(ctx context.Context) {
	for env := range w.queue.Receive() {
		w.process(ctx, env)
	}
	w.logger.Debug("Dispatch worker stopped")
}

func (w *Worker) process(ctx context.Context, env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("Dispatch panicked", "url", env.URL, "panic", r)
		}
	}()

	start := time.Now()
	err := w.Send(ctx, env.URL)
	elapsed := time.Since(start)

	outcome := OutcomeOK
	var statusErr *StatusError
	switch {
	case err == nil:
		w.logger.Debug("Dispatched", "key", env.Key, "url", env.URL, "elapsed", elapsed)
	case errors.As(err, &statusErr):
		outcome = OutcomeHTTPError
		w.logger.Error("HTTP error", "status", statusErr.StatusCode, "url", env.URL)
	default:
		outcome = OutcomeTransportError
		w.logger.Error("Dispatch failed", "url", env.URL, "error", err)
	}

	if w.recorder != nil {
		w.recorder.ObserveDispatch(outcome, elapsed)
	}
}

// Send performs a single POST with an empty body against url.
// Any status other than 200 is returned as a *StatusError.
func (w *Worker) Send(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}
	return nil
}
