package vibinremote

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/vibinremote/internal/logging"
	"github.com/aretw0/vibinremote/pkg/capture"
	"github.com/aretw0/vibinremote/pkg/config"
	"github.com/aretw0/vibinremote/pkg/dispatch"
	"github.com/aretw0/vibinremote/pkg/keymap"
	"github.com/aretw0/vibinremote/pkg/observability"
)

// DefaultDrainTimeout is how long Run waits for queued commands after capture stops.
const DefaultDrainTimeout = 2 * time.Second

// Remote wires a validated keymap to the capture loop and the dispatch worker.
// All of its fields are derived once in New and never change afterwards.
type Remote struct {
	table        *keymap.Table
	baseURL      string
	timeout      time.Duration
	host         string
	logger       *slog.Logger
	client       *http.Client
	metrics      *observability.Metrics
	queueSize    int
	drainTimeout time.Duration
}

// Option defines a functional option for configuring the Remote.
type Option func(*Remote)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Remote) {
		r.logger = logger
	}
}

// WithHTTPClient replaces the client used for dispatching commands.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Remote) {
		r.client = c
	}
}

// WithMetrics records pipeline activity in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Remote) {
		r.metrics = m
	}
}

// WithQueueCapacity overrides dispatch.DefaultQueueCapacity.
func WithQueueCapacity(n int) Option {
	return func(r *Remote) {
		r.queueSize = n
	}
}

// WithDrainTimeout bounds the wait for queued commands once capture stops.
// Zero disables waiting.
func WithDrainTimeout(d time.Duration) Option {
	return func(r *Remote) {
		r.drainTimeout = d
	}
}

// New validates cfg and compiles its keymap. An invalid key name is returned
// as is and nothing is started.
func New(cfg config.AppConfig, opts ...Option) (*Remote, error) {
	r := &Remote{
		baseURL:      cfg.BaseURL(),
		timeout:      cfg.Timeout(),
		host:         cfg.Vibin,
		client:       &http.Client{},
		drainTimeout: DefaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNop() // Default to no-op
	}

	table, err := keymap.Build(cfg)
	if err != nil {
		return nil, err
	}
	r.table = table

	return r, nil
}

// Table returns the compiled keymap.
func (r *Remote) Table() *keymap.Table {
	return r.table
}

// BaseURL returns the prefix applied to every action path.
func (r *Remote) BaseURL() string {
	return r.baseURL
}

// Run starts the dispatch worker and blocks in the capture loop until src stops.
// Capture failures are returned as *capture.TerminationError.
func (r *Remote) Run(ctx context.Context, src capture.Source) error {
	r.logger.Info("Using vibin", "host", r.host, "timeout", r.timeout)
	r.logger.Info("Registered keys for intercept", "count", r.table.Len())

	queue := dispatch.NewQueue(r.queueSize)

	workerOpts := []dispatch.Option{
		dispatch.WithHTTPClient(r.client),
		dispatch.WithTimeout(r.timeout),
		dispatch.WithLogger(r.logger),
	}
	loopOpts := []capture.Option{
		capture.WithLogger(r.logger),
	}
	if r.metrics != nil {
		workerOpts = append(workerOpts, dispatch.WithRecorder(r.metrics))
		loopOpts = append(loopOpts, capture.WithRecorder(r.metrics))
	}

	worker := dispatch.NewWorker(queue, workerOpts...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Shutdown signals stop capture; in-flight requests are bounded by their own timeout.
		worker.Run(context.WithoutCancel(ctx))
	}()

	loop := capture.NewLoop(r.table, r.baseURL, queue, loopOpts...)
	err := loop.Run(ctx, src)

	queue.Close()
	r.drain(done, queue)

	return err
}

func (r *Remote) drain(done <-chan struct{}, queue *dispatch.Queue) {
	if r.drainTimeout <= 0 {
		return
	}
	t := time.NewTimer(r.drainTimeout)
	defer t.Stop()

	select {
	case <-done:
	case <-t.C:
		r.logger.Warn("Abandoning queued commands", "pending", queue.Len())
	}
}
