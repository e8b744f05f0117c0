package store

import (
	"context"
	"time"
)

// writeFunc performs one mutation on the writer goroutine. It reports
// whether the collection changed and the live query should be re-published.
type writeFunc func(ctx context.Context, c *clock) (changed bool, err error)

type task struct {
	fn   writeFunc
	done chan error
}

// writer serializes every mutation on one goroutine. Callers hand it a task
// and wait on the task's done channel.
type writer struct {
	clock   *clock
	publish func(ctx context.Context, c *clock) error
	tasks   chan task
	quit    chan struct{}
	stopped chan struct{}
}

func newWriter(c *clock, publish func(ctx context.Context, c *clock) error) *writer {
	w := &writer{
		clock:   c,
		publish: publish,
		tasks:   make(chan task),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

// submit queues fn and waits for its result. ctx only bounds the wait for a
// free writer; once accepted the task runs to completion and its result is
// returned even if ctx is cancelled meanwhile.
func (w *writer) submit(ctx context.Context, fn writeFunc) error {
	t := task{fn: fn, done: make(chan error, 1)}
	select {
	case <-w.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case w.tasks <- t:
	}
	return <-t.done
}

// stop refuses new tasks, finishes the ones already handed over and returns
// once the goroutine has exited. Safe to call more than once.
func (w *writer) stop() {
	select {
	case <-w.quit:
	default:
		close(w.quit)
	}
	<-w.stopped
}

func (w *writer) run() {
	defer close(w.stopped)
	for {
		select {
		case t := <-w.tasks:
			w.exec(t)
		case <-w.quit:
			for {
				select {
				case t := <-w.tasks:
					w.exec(t)
				default:
					return
				}
			}
		}
	}
}

func (w *writer) exec(t task) {
	ctx := context.Background()
	changed, err := t.fn(ctx, w.clock)
	if err == nil && changed {
		// Subscribers see the new collection before the caller is released.
		// The write is committed either way; publish logs its own failures.
		_ = w.publish(ctx, w.clock)
	}
	t.done <- err
}

// clock hands out strictly increasing millisecond stamps. Only the writer
// goroutine touches it.
type clock struct {
	now  func() time.Time
	last int64
}

// next returns a stamp later than every stamp handed out or observed so far.
func (c *clock) next() int64 {
	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}

// observe records a stamp written by someone else.
func (c *clock) observe(ms int64) {
	if ms > c.last {
		c.last = ms
	}
}
