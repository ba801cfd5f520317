package cj

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/donaldgifford/dropship-gateway/internal/metrics"
)

// ErrQueueClosed is returned for tasks submitted after Close.
var ErrQueueClosed = errors.New("request queue closed")

const defaultQueueCapacity = 256

// queuedTask is one pending partner call. Created per call, destroyed
// after completion; its error is delivered only to its own caller.
type queuedTask struct {
	ctx        context.Context
	fn         func(context.Context) error
	done       chan error
	enqueuedAt time.Time
}

// RequestQueue serializes concurrent callers into a single well-paced
// request stream. A single runner goroutine drains tasks in FIFO order,
// waiting out the pacing interval before each dispatch, so at most one
// outbound call is in flight per account and no caller races the shared
// pacing clock or session state.
type RequestQueue struct {
	limiter *RateLimiter
	tasks   chan *queuedTask

	closeOnce sync.Once
	closed    chan struct{}
	drained   chan struct{}
}

// QueueOption configures the RequestQueue.
type QueueOption func(*RequestQueue)

// WithQueueCapacity overrides the pending-task buffer size. Enqueue blocks
// once the buffer is full.
func WithQueueCapacity(n int) QueueOption {
	return func(q *RequestQueue) {
		q.tasks = make(chan *queuedTask, n)
	}
}

// NewRequestQueue creates a RequestQueue and starts its runner goroutine.
func NewRequestQueue(limiter *RateLimiter, opts ...QueueOption) *RequestQueue {
	q := &RequestQueue{
		limiter: limiter,
		tasks:   make(chan *queuedTask, defaultQueueCapacity),
		closed:  make(chan struct{}),
		drained: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.run()
	return q
}

// Enqueue submits fn and blocks until it has run to completion or the
// queue rejects it. The task's error is returned only to this caller;
// sibling tasks are unaffected. Tasks never jump the queue: a task
// enqueued while another is mid-flight waits for its turn.
func (q *RequestQueue) Enqueue(ctx context.Context, fn func(context.Context) error) error {
	t := &queuedTask{
		ctx:        ctx,
		fn:         fn,
		done:       make(chan error, 1),
		enqueuedAt: time.Now(),
	}

	select {
	case q.tasks <- t:
		metrics.QueueDepth.Inc()
	case <-q.closed:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-q.drained:
		// The runner exited; the task may have slipped in after the final
		// drain pass.
		select {
		case err := <-t.done:
			return err
		default:
			return ErrQueueClosed
		}
	}
}

// Close stops the runner. Tasks still in the buffer fail with
// ErrQueueClosed; the in-flight task, if any, runs to completion.
func (q *RequestQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
	<-q.drained
}

func (q *RequestQueue) run() {
	defer close(q.drained)

	for {
		select {
		case <-q.closed:
			q.drain()
			return
		case t := <-q.tasks:
			// The select above picks randomly when both channels are
			// ready; a task still buffered at close time must not run.
			select {
			case <-q.closed:
				metrics.QueueDepth.Dec()
				t.done <- ErrQueueClosed
				q.drain()
				return
			default:
			}
			q.process(t)
		}
	}
}

func (q *RequestQueue) process(t *queuedTask) {
	metrics.QueueDepth.Dec()
	metrics.QueueWaitDuration.Observe(time.Since(t.enqueuedAt).Seconds())

	// A caller that gave up while queued should not consume the pacing
	// slot.
	if err := t.ctx.Err(); err != nil {
		t.done <- err
		return
	}

	if err := q.limiter.Wait(t.ctx); err != nil {
		t.done <- err
		return
	}

	t.done <- t.fn(t.ctx)
}

func (q *RequestQueue) drain() {
	for {
		select {
		case t := <-q.tasks:
			metrics.QueueDepth.Dec()
			t.done <- ErrQueueClosed
		default:
			return
		}
	}
}
