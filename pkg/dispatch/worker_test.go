package dispatch

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vibinremote/internal/testutils"
	"github.com/aretw0/vibinremote/pkg/keys"
)

type hit struct {
	Method string
	Path   string
	Body   string
}

// newRemote starts a fake server answering each path with the given status.
func newRemote(t *testing.T, statuses map[string]int) (*httptest.Server, func() []hit) {
	t.Helper()
	var mu sync.Mutex
	var hits []hit

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		hits = append(hits, hit{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		mu.Unlock()

		status, ok := statuses[r.URL.Path]
		if !ok {
			status = http.StatusOK
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []hit {
		mu.Lock()
		defer mu.Unlock()
		return append([]hit(nil), hits...)
	}
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (r *outcomeRecorder) ObserveDispatch(o Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func runWorker(t *testing.T, w *Worker) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		w.Run(t.Context())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not drain the queue")
	}
}

func TestWorker_SuccessLogsNoError(t *testing.T) {
	srv, hits := newRemote(t, nil)
	logger, logs := testutils.NewLogRecorder()
	rec := &outcomeRecorder{}

	q := NewQueue(4)
	require.NoError(t, q.Enqueue(Envelope{Key: keys.PageUp, URL: srv.URL + "/api/next"}))
	q.Close()

	runWorker(t, NewWorker(q, WithLogger(logger), WithRecorder(rec)))

	got := hits()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodPost, got[0].Method)
	assert.Equal(t, "/api/next", got[0].Path)
	assert.Empty(t, got[0].Body)

	assert.Equal(t, 0, logs.Count(slog.LevelError))
	assert.Equal(t, []Outcome{OutcomeOK}, rec.outcomes)
}

func TestWorker_HTTPErrorLogsOnceAndContinues(t *testing.T) {
	srv, hits := newRemote(t, map[string]int{"/broken": http.StatusInternalServerError})
	logger, logs := testutils.NewLogRecorder()
	rec := &outcomeRecorder{}

	q := NewQueue(4)
	require.NoError(t, q.Enqueue(Envelope{Key: keys.KeyA, URL: srv.URL + "/broken"}))
	require.NoError(t, q.Enqueue(Envelope{Key: keys.KeyB, URL: srv.URL + "/fine"}))
	q.Close()

	runWorker(t, NewWorker(q, WithLogger(logger), WithRecorder(rec)))

	got := hits()
	require.Len(t, got, 2)
	assert.Equal(t, "/broken", got[0].Path)
	assert.Equal(t, "/fine", got[1].Path)

	errs := logs.At(slog.LevelError)
	require.Len(t, errs, 1)
	assert.Equal(t, "HTTP error", errs[0].Message)
	assert.EqualValues(t, http.StatusInternalServerError, errs[0].Attrs["status"])
	assert.Equal(t, srv.URL+"/broken", errs[0].Attrs["url"])

	assert.Equal(t, []Outcome{OutcomeHTTPError, OutcomeOK}, rec.outcomes)
}

func TestWorker_TransportErrorLogsOnceAndContinues(t *testing.T) {
	// Reserve a port, then close it so connections are refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadURL := "http://" + ln.Addr().String() + "/x"
	require.NoError(t, ln.Close())

	srv, hits := newRemote(t, nil)
	logger, logs := testutils.NewLogRecorder()
	rec := &outcomeRecorder{}

	q := NewQueue(4)
	require.NoError(t, q.Enqueue(Envelope{Key: keys.KeyA, URL: deadURL}))
	require.NoError(t, q.Enqueue(Envelope{Key: keys.KeyB, URL: srv.URL + "/after"}))
	q.Close()

	runWorker(t, NewWorker(q, WithLogger(logger), WithRecorder(rec)))

	require.Len(t, hits(), 1)

	errs := logs.At(slog.LevelError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Dispatch failed", errs[0].Message)
	assert.Equal(t, deadURL, errs[0].Attrs["url"])

	assert.Equal(t, []Outcome{OutcomeTransportError, OutcomeOK}, rec.outcomes)
}

func TestWorker_TimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(slow.Close)
	t.Cleanup(func() { close(release) })

	logger, logs := testutils.NewLogRecorder()
	q := NewQueue(1)
	require.NoError(t, q.Enqueue(Envelope{URL: slow.URL + "/slow"}))
	q.Close()

	start := time.Now()
	runWorker(t, NewWorker(q, WithLogger(logger), WithTimeout(50*time.Millisecond)))

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 1, logs.Count(slog.LevelError))
}

func TestWorker_Send(t *testing.T) {
	srv, _ := newRemote(t, map[string]int{"/missing": http.StatusNotFound})
	w := NewWorker(NewQueue(1))

	require.NoError(t, w.Send(context.Background(), srv.URL+"/ok"))

	err := w.Send(context.Background(), srv.URL+"/missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "HTTP error [404] "+srv.URL+"/missing", err.Error())
}
