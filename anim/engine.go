package anim

import (
	"fmt"
	"log"
	"math"

	"github.com/ilpoo/elastic-momentum/curve"
)

// Rejection messages.
const (
	ReasonStopped     = "Animation stopped manually"
	ReasonChanged     = "Animation changed before it was completed"
	ReasonUnreachable = "An animation in the queue is set to loop infinitely, so requested animation would never be executed. Consider using Loop or ClearQueue before queuing."
)

// Result is what a Sink receives on every frame.
type Result struct {
	// Milliseconds since the current pass started.
	DeltaTime    float64
	PercentTime  float64
	PercentValue float64
	// PercentValue scaled by Target.
	DeltaValue float64
	Value      float64
	// Angle of the value change per millisecond since the previous frame.
	Tangent float64
}

// A Sink receives the animated value once per frame.
type Sink func(value float64, r Result)

// Engine runs one animation at a time from a queue.
type Engine struct {
	frames   Frames
	clock    Clock
	defaults Options
	logger   *log.Logger

	queue     []*record
	paused    bool
	pauseTime int64
	frame     FrameID
	pending   bool

	tangent    float64
	deltaTime  float64
	deltaValue float64
}

// New creates an idle Engine. defaults are applied over DefaultOptions and
// then to every animation before its own options. A nil clock means
// SystemClock.
func New(frames Frames, clock Clock, defaults ...Option) *Engine {
	e := new(Engine)
	e.frames = frames
	e.clock = clock
	if e.clock == nil {
		e.clock = SystemClock
	}
	e.defaults = DefaultOptions()
	for _, opt := range defaults {
		opt(&e.defaults)
	}
	e.paused = true
	return e
}

// SetLogger sets where validation failures are reported. nil disables it.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

// Defaults returns the options every animation starts from.
func (e *Engine) Defaults() Options {
	return e.defaults
}

// Animate replaces whatever is running, and everything queued, with a new
// animation that starts now. Replaced animations are rejected with
// ErrReplaced. When something was running, the new easing curve is blended
// with a line of the last frame's tangent so the motion does not kink.
func (e *Engine) Animate(sink Sink, opts ...Option) (*Completion, error) {
	r, err := e.validate(sink, opts)
	if err != nil {
		return nil, err
	}

	if len(e.queue) > 0 {
		tangent := e.tangent
		e.stop(ReasonChanged, ErrReplaced)
		r.Easing = curve.MergeCurveToLine(tangent, r.Easing)
	}
	e.queue = []*record{r}
	e.startNext()
	return r.completion, nil
}

// Queue appends an animation. It starts immediately if nothing else is
// queued. Queuing behind an animation that loops forever rejects the new
// one with ErrUnreachable.
func (e *Engine) Queue(sink Sink, opts ...Option) (*Completion, error) {
	r, err := e.validate(sink, opts)
	if err != nil {
		return nil, err
	}

	for _, q := range e.queue {
		if q.Loop == Infinite {
			r.completion.reject(&StopError{Message: ReasonUnreachable, Engine: e, Err: ErrUnreachable})
			return r.completion, nil
		}
	}

	e.queue = append(e.queue, r)
	if len(e.queue) == 1 {
		e.startNext()
	}
	return r.completion, nil
}

// Pause freezes the running animation. Time spent paused does not count
// towards its progress.
func (e *Engine) Pause() *Engine {
	if !e.paused {
		e.cancel()
		e.paused = true
		e.pauseTime = e.clock.Now()
	}
	return e
}

// Resume continues a paused animation.
func (e *Engine) Resume() *Engine {
	if e.paused && len(e.queue) > 0 {
		e.queue[0].startTime += e.clock.Now() - e.pauseTime
		e.paused = false
		e.schedule()
	}
	return e
}

// Stop rejects every queued animation, including the running one, with
// reason and leaves the Engine idle. An empty reason means ReasonStopped.
func (e *Engine) Stop(reason string) *Engine {
	if reason == "" {
		reason = ReasonStopped
	}
	e.stop(reason, ErrStopped)
	return e
}

func (e *Engine) stop(reason string, cause error) {
	e.cancel()
	queue := e.queue
	e.queue = nil
	e.paused = true
	for _, r := range queue {
		r.completion.reject(&StopError{Message: reason, Engine: e, Err: cause})
	}
}

// ClearQueue drops every animation waiting behind the running one. Their
// Completions never settle. With resetLoop the running animation finishes
// its current pass and stops looping.
func (e *Engine) ClearQueue(resetLoop bool) *Engine {
	if len(e.queue) > 1 {
		for i := 1; i < len(e.queue); i++ {
			e.queue[i] = nil
		}
		e.queue = e.queue[:1]
	}
	if resetLoop && len(e.queue) > 0 {
		e.queue[0].Loop = 0
	}
	return e
}

// Loop sets the remaining loop count of the running animation.
func (e *Engine) Loop(iterations int) error {
	return e.LoopAt(0, iterations)
}

// LoopAt sets the remaining loop count of the animation at queue position
// which, 0 being the running one.
func (e *Engine) LoopAt(which, iterations int) error {
	if which < 0 || which >= len(e.queue) {
		return fmt.Errorf("loop %d: %w", which, ErrNoRecord)
	}
	if !validLoop(iterations) {
		return &ConfigError{Field: "loop", Reason: "must be a positive integer, zero or Infinite"}
	}
	e.queue[which].Loop = iterations
	return nil
}

// Paused reports whether no frame is pending, either because the Engine is
// idle or because Pause was called.
func (e *Engine) Paused() bool {
	return e.paused
}

// Tangent returns the tangent computed on the most recent frame.
func (e *Engine) Tangent() float64 {
	return e.tangent
}

// Snapshot describes a queued animation.
type Snapshot struct {
	Options
	// StartTime is 0 until the animation becomes active.
	StartTime int64
	Iteration int
	// Completion settles when the animation does.
	Completion *Completion
}

// CurrentQueue returns a copy of the queue, the running animation first.
func (e *Engine) CurrentQueue() []Snapshot {
	out := make([]Snapshot, len(e.queue))
	for i, r := range e.queue {
		out[i] = Snapshot{Options: r.Options, StartTime: r.startTime, Iteration: r.iteration, Completion: r.completion}
	}
	return out
}

func (e *Engine) schedule() {
	e.frame = e.frames.Schedule(e.step)
	e.pending = true
}

func (e *Engine) cancel() {
	if e.pending {
		e.frames.Cancel(e.frame)
		e.pending = false
	}
}

func (e *Engine) startNext() {
	r := e.queue[0]
	r.startTime = e.clock.Now()
	e.paused = false
	e.deltaValue = r.progress(0) * r.Target
	e.deltaTime = 0
	e.schedule()
}

func (e *Engine) step() {
	e.pending = false
	if e.paused || len(e.queue) == 0 {
		return
	}
	r := e.queue[0]

	var res Result
	res.DeltaTime = float64(e.clock.Now() - r.startTime)
	res.PercentTime = math.Max(0, math.Min(res.DeltaTime/float64(r.Duration), 1))
	res.PercentValue = r.progress(res.PercentTime)
	res.DeltaValue = res.PercentValue * r.Target
	res.Value = res.DeltaValue + r.Start
	res.Tangent = math.Atan2(res.DeltaValue-e.deltaValue, res.DeltaTime-e.deltaTime)
	e.tangent = res.Tangent
	e.deltaValue = res.DeltaValue
	e.deltaTime = res.DeltaTime
	r.sink(res.Value, res)

	// The sink may have paused, stopped or replaced the animation.
	if e.paused || e.pending || len(e.queue) == 0 || e.queue[0] != r {
		return
	}

	switch {
	case res.PercentTime < 1:
		e.schedule()
	case r.Loop != 0:
		if r.Loop != Infinite {
			r.Loop--
		}
		r.iteration++
		e.startNext()
	default:
		e.queue[0] = nil
		e.queue = e.queue[1:]
		r.completion.resolve(e)
		if len(e.queue) > 0 {
			e.startNext()
		} else {
			e.paused = true
		}
	}
}
