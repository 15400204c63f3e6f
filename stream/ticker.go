package stream

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ilpoo/elastic-momentum/anim"
)

// Ticker is the frame clock of the app. It runs scheduled frame callbacks,
// and functions passed to Do, on the goroutine that calls Run, so an
// anim.Engine driven by it is only ever touched from that goroutine.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	next    anim.FrameID
	pending map[anim.FrameID]func()
	calls   []func()
	wake    chan struct{}
}

// NewTicker creates a Ticker firing frameRate times per second.
func NewTicker(frameRate float64) *Ticker {
	t := new(Ticker)
	t.interval = time.Duration(float64(time.Second) / frameRate)
	t.pending = make(map[anim.FrameID]func())
	t.wake = make(chan struct{}, 1)
	return t
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Schedule runs fn on the next frame.
func (t *Ticker) Schedule(fn func()) anim.FrameID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.pending[t.next] = fn
	return t.next
}

// Cancel drops a scheduled callback.
func (t *Ticker) Cancel(id anim.FrameID) {
	t.mu.Lock()
	delete(t.pending, id)
	t.mu.Unlock()
}

// Do runs fn on the Run goroutine as soon as possible. It never blocks and
// may be called from any goroutine, including from inside fn.
func (t *Ticker) Do(fn func()) {
	t.mu.Lock()
	t.calls = append(t.calls, fn)
	t.mu.Unlock()
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Run delivers frames until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	frameTimer := time.NewTicker(t.interval)
	defer frameTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.wake:
			t.runCalls()
		case <-frameTimer.C:
			t.runCalls()
			t.runFrame()
		}
	}
}

func (t *Ticker) runCalls() {
	t.mu.Lock()
	calls := t.calls
	t.calls = nil
	t.mu.Unlock()
	for _, fn := range calls {
		fn()
	}
}

// runFrame runs the callbacks pending when the frame starts. Callbacks they
// schedule wait for the next frame; callbacks cancelled by an earlier one in
// the same frame are skipped.
func (t *Ticker) runFrame() int {
	t.mu.Lock()
	ids := make([]anim.FrameID, 0, len(t.pending))
	for id := range t.pending {
		ids = append(ids, id)
	}
	t.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		t.mu.Lock()
		fn, ok := t.pending[id]
		delete(t.pending, id)
		t.mu.Unlock()
		if ok {
			fn()
			ran++
		}
	}
	return ran
}
