package timer

import (
	"context"
	"sync"
	"time"
)

// Ticker delivers a value on C once per interval between Start and Stop.
// It never touches timer state; the receiver applies each tick.
type Ticker struct {
	c        chan time.Time
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
	mu       sync.Mutex
}

// NewTicker returns a stopped ticker.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}

	return &Ticker{
		interval: interval,
		c:        make(chan time.Time, 1),
	}
}

// C returns the channel on which ticks are delivered.
func (t *Ticker) C() <-chan time.Time {
	return t.c
}

// Running reports whether the ticker has been started and neither stopped
// nor cancelled through its context.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running()
}

// running must be called with mu held.
func (t *Ticker) running() bool {
	if t.cancel == nil {
		return false
	}

	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Start begins delivering ticks until Stop is called or ctx is cancelled.
// Starting a running ticker has no effect.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running() {
		return
	}

	if t.cancel != nil {
		t.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)

	t.cancel = cancel
	t.done = make(chan struct{})

	go t.loop(ctx, t.done)
}

// Stop halts tick delivery and waits for the delivery goroutine to exit.
// It is safe to call Stop more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return
	}

	t.cancel()
	<-t.done

	t.cancel = nil
	t.done = nil
}

func (t *Ticker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tk.C:
			// a tick the receiver has not collected yet is not queued twice
			select {
			case t.c <- now:
			default:
			}
		}
	}
}
