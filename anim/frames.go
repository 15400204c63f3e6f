package anim

import "time"

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Frames schedules callbacks for the next display refresh.
type Frames interface {
	// Schedule arranges for fn to run once on the next frame.
	Schedule(fn func()) FrameID
	// Cancel drops a callback that has not run yet.
	Cancel(id FrameID)
}

// A Clock reports wall time in milliseconds.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() int64

// Now calls f.
func (f ClockFunc) Now() int64 {
	return f()
}

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(func() int64 {
	return time.Now().UnixMilli()
})
