package anim

import (
	"errors"

	"github.com/ilpoo/elastic-momentum/curve"
)

// Infinite makes an animation loop until stopped.
const Infinite = -1

// Options describe one animation. Target is a delta added to Start, not
// the final value.
type Options struct {
	// Duration of one pass in milliseconds.
	Duration  int64
	Easing    curve.Operator
	Loop      int
	Alternate bool
	Start     float64
	Target    float64
}

// DefaultOptions returns the defaults an Engine starts with.
func DefaultOptions() Options {
	return Options{
		Duration: 300,
		Easing:   curve.Linear,
		Target:   1,
	}
}

// An Option overrides one field of Options.
type Option func(*Options)

// WithDuration sets the duration of one pass in milliseconds.
func WithDuration(ms int64) Option {
	return func(o *Options) { o.Duration = ms }
}

// WithEasing sets the easing curve.
func WithEasing(f curve.Operator) Option {
	return func(o *Options) { o.Easing = f }
}

// WithLoop sets how many extra passes to run. Use Infinite to loop forever.
func WithLoop(n int) Option {
	return func(o *Options) { o.Loop = n }
}

// WithAlternate makes every other pass run backwards.
func WithAlternate(alternate bool) Option {
	return func(o *Options) { o.Alternate = alternate }
}

// WithStart sets the value at progress 0.
func WithStart(v float64) Option {
	return func(o *Options) { o.Start = v }
}

// WithTarget sets the change in value between progress 0 and 1.
func WithTarget(delta float64) Option {
	return func(o *Options) { o.Target = delta }
}

// WithOptions replaces every field at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Validate reports every invalid field, joined.
func (o Options) Validate() error {
	var errs []error
	if o.Easing == nil {
		errs = append(errs, &ConfigError{Field: "easing", Reason: "must be a function"})
	}
	if o.Duration <= 0 {
		errs = append(errs, &ConfigError{Field: "duration", Reason: "must be a positive integer"})
	}
	if !validLoop(o.Loop) {
		errs = append(errs, &ConfigError{Field: "loop", Reason: "must be a positive integer, zero or Infinite"})
	}
	return errors.Join(errs...)
}

func validLoop(n int) bool {
	return n >= 0 || n == Infinite
}

type record struct {
	Options
	sink       Sink
	completion *Completion
	startTime  int64
	iteration  int
}

// progress evaluates the easing curve, reversed on odd passes when
// alternating.
func (r *record) progress(percentTime float64) float64 {
	if r.Alternate && r.iteration%2 == 1 {
		return curve.FlipY(r.Easing)(percentTime)
	}
	return r.Easing(percentTime)
}

func (e *Engine) validate(sink Sink, opts []Option) (*record, error) {
	o := e.defaults
	for _, opt := range opts {
		opt(&o)
	}

	err := o.Validate()
	if sink == nil {
		err = errors.Join(&ConfigError{Field: "sink", Reason: "must be a function"}, err)
	}
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("anim: rejected animation: %v", err)
		}
		return nil, err
	}

	return &record{
		Options:    o,
		sink:       sink,
		completion: newCompletion(),
	}, nil
}
