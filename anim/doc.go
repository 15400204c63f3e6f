/*
Package anim schedules time based numeric animations.

An Engine owns a FIFO queue of animations. The head of the queue is active:
once per frame the Engine samples its easing curve, hands the value to the
animation's Sink and decides whether to keep going, loop, or move on to the
next queued animation. Every animation settles a Completion exactly once.

The Engine is not safe for concurrent use. All calls, including the frame
callbacks it schedules, must happen on one goroutine; stream.Ticker provides
such a loop.
*/
package anim
