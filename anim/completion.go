package anim

import (
	"context"
	"sync"
)

// A Completion settles once when its animation finishes or is rejected.
// It may be waited on from any goroutine.
type Completion struct {
	done   chan struct{}
	once   sync.Once
	engine *Engine
	err    error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func (c *Completion) settle(e *Engine, err error) bool {
	settled := false
	c.once.Do(func() {
		c.engine = e
		c.err = err
		settled = true
		close(c.done)
	})
	return settled
}

func (c *Completion) resolve(e *Engine) bool {
	return c.settle(e, nil)
}

func (c *Completion) reject(err error) bool {
	return c.settle(nil, err)
}

// Done is closed once the Completion has settled.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Settled reports whether the Completion has settled.
func (c *Completion) Settled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Err returns the rejection reason, or nil while pending or after success.
func (c *Completion) Err() error {
	if !c.Settled() {
		return nil
	}
	return c.err
}

// Wait blocks until the Completion settles or ctx is done. On success it
// returns the Engine that ran the animation.
func (c *Completion) Wait(ctx context.Context) (*Engine, error) {
	select {
	case <-c.done:
		return c.engine, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
