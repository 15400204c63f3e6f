package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ilpoo/elastic-momentum/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerRunsPendingInOrder(t *testing.T) {
	tk := NewTicker(30)
	var got []int
	tk.Schedule(func() { got = append(got, 1) })
	id := tk.Schedule(func() { got = append(got, 2) })
	tk.Schedule(func() {
		got = append(got, 3)
		tk.Schedule(func() { got = append(got, 4) })
	})
	tk.Cancel(id)

	assert.Equal(t, 2, tk.runFrame())
	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, 1, tk.runFrame())
	assert.Equal(t, []int{1, 3, 4}, got)
	assert.Zero(t, tk.runFrame())
}

func TestTickerCancelWithinFrame(t *testing.T) {
	tk := NewTicker(30)
	ran := false
	var later anim.FrameID
	tk.Schedule(func() { tk.Cancel(later) })
	later = tk.Schedule(func() { ran = true })

	assert.Equal(t, 1, tk.runFrame())
	assert.False(t, ran)
}

func TestTickerInterval(t *testing.T) {
	assert.Equal(t, 40*time.Millisecond, NewTicker(25).Interval())
}

func TestTickerRun(t *testing.T) {
	tk := NewTicker(1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- tk.Run(ctx) }()

	var wg sync.WaitGroup
	frames := make(chan struct{}, 1)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tk.Do(func() {
				tk.Schedule(func() {
					select {
					case frames <- struct{}{}:
					default:
					}
				})
			})
		}()
	}
	wg.Wait()

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}
