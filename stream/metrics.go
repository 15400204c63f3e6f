package stream

import (
	"errors"

	"github.com/ilpoo/elastic-momentum/anim"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the streamer and controller do.
type Metrics struct {
	FramesPublished prometheus.Counter
	PublishErrors   prometheus.Counter
	Animations      *prometheus.CounterVec
	Commands        *prometheus.CounterVec
	QueueLength     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledtx_frames_published_total",
			Help: "Frames published to the strip.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledtx_publish_errors_total",
			Help: "Frames that failed to publish.",
		}),
		Animations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledtx_animations_total",
			Help: "Animations by outcome, including those discarded from the queue.",
		}, []string{"result"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledtx_commands_total",
			Help: "Control commands received by type.",
		}, []string{"type"}),
		QueueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledtx_queue_length",
			Help: "Animations queued, the running one included.",
		}),
	}
	reg.MustRegister(m.FramesPublished, m.PublishErrors, m.Animations, m.Commands, m.QueueLength)
	return m
}

// outcome labels how a Completion settled.
func outcome(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, anim.ErrReplaced):
		return "replaced"
	case errors.Is(err, anim.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, anim.ErrStopped):
		return "stopped"
	}
	return "failed"
}
