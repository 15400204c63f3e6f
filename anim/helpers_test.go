package anim

import (
	"sort"
	"testing"

	"github.com/ilpoo/elastic-momentum/curve"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 {
	return c.now
}

// manualFrames runs callbacks only when flushed, like a display refresh.
type manualFrames struct {
	next    FrameID
	pending map[FrameID]func()
}

func newManualFrames() *manualFrames {
	return &manualFrames{pending: make(map[FrameID]func())}
}

func (f *manualFrames) Schedule(fn func()) FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

func (f *manualFrames) Cancel(id FrameID) {
	delete(f.pending, id)
}

// flush runs the callbacks pending now; callbacks they schedule wait for the
// next flush.
func (f *manualFrames) flush() int {
	ids := make([]FrameID, 0, len(f.pending))
	for id := range f.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn, ok := f.pending[id]
		if !ok {
			continue
		}
		delete(f.pending, id)
		fn()
	}
	return len(ids)
}

type harness struct {
	clock  *fakeClock
	frames *manualFrames
	engine *Engine
}

func newHarness(t *testing.T, defaults ...Option) *harness {
	t.Helper()
	h := &harness{clock: &fakeClock{now: 1000}, frames: newManualFrames()}
	h.engine = New(h.frames, h.clock, defaults...)
	return h
}

// tick advances the clock by ms and delivers one frame.
func (h *harness) tick(ms int64) {
	h.clock.now += ms
	h.frames.flush()
}

type sample struct {
	value float64
	res   Result
}

type recorder struct {
	samples []sample
}

func (r *recorder) sink(value float64, res Result) {
	r.samples = append(r.samples, sample{value, res})
}

func (r *recorder) last(t *testing.T) sample {
	t.Helper()
	require.NotEmpty(t, r.samples)
	return r.samples[len(r.samples)-1]
}

func linearTo(target float64, ms int64) []Option {
	return []Option{WithDuration(ms), WithTarget(target), WithEasing(curve.Linear)}
}
