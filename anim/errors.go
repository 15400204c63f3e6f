package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrStopped marks animations rejected by Stop.
	ErrStopped = errors.New("animation stopped")
	// ErrReplaced marks animations rejected because Animate replaced them.
	ErrReplaced = errors.New("animation replaced")
	// ErrUnreachable marks animations queued behind one that loops forever.
	ErrUnreachable = errors.New("animation unreachable")
	// ErrNoRecord is returned when a queue position holds no animation.
	ErrNoRecord = errors.New("no animation at queue position")
)

// A ConfigError describes an invalid animation parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// A StopError is the reason an animation's Completion was rejected.
type StopError struct {
	Message string
	Engine  *Engine
	Err     error
}

func (e *StopError) Error() string {
	return e.Message
}

func (e *StopError) Unwrap() error {
	return e.Err
}
