package dispatch

import (
	"errors"
	"sync"

	"github.com/aretw0/vibinremote/pkg/keys"
)

// DefaultQueueCapacity is far beyond what a human can type while one request is in flight.
const DefaultQueueCapacity = 1024

var (
	// ErrQueueClosed is returned by Enqueue after Close.
	ErrQueueClosed = errors.New("dispatch queue closed")
	// ErrQueueFull is returned when the buffer is exhausted.
	ErrQueueFull = errors.New("dispatch queue full")
)

// Envelope is one fully resolved request waiting to be sent.
type Envelope struct {
	Key keys.Key
	URL string
}

// Queue is a FIFO hand-off between the capture loop (single producer) and the
// worker (single consumer). Enqueue never blocks.
type Queue struct {
	mu     sync.RWMutex
	ch     chan Envelope
	closed bool
}

// NewQueue creates a queue buffering up to capacity envelopes.
// A non-positive capacity selects DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{ch: make(chan Envelope, capacity)}
}

// Enqueue appends env without blocking.
func (q *Queue) Enqueue(env Envelope) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- env:
		return nil
	default:
		return ErrQueueFull
	}
}

// Receive returns the consumer side. It is closed once Close has been called
// and every buffered envelope has been received.
func (q *Queue) Receive() <-chan Envelope {
	return q.ch
}

// Close stops accepting envelopes. Buffered envelopes remain available to the consumer.
// It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}

// Len reports the number of buffered envelopes.
func (q *Queue) Len() int {
	return len(q.ch)
}
