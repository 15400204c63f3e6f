package stream

import (
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
	metrics *Metrics
}

// NewStreamer creates an instance of a Streamer. A publish that takes longer
// than timeout counts as failed.
func NewStreamer(client Publisher, topic string, qos byte, timeout time.Duration, metrics *Metrics) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.qos = qos
	s.timeout = timeout
	s.metrics = metrics
	return s
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		s.metrics.PublishErrors.Inc()
		return err
	}
	token := s.client.Publish(s.topic, s.qos, false, b)
	if !token.WaitTimeout(s.timeout) {
		s.metrics.PublishErrors.Inc()
		return fmt.Errorf("publish to %s: timed out after %v", s.topic, s.timeout)
	}
	if err := token.Error(); err != nil {
		s.metrics.PublishErrors.Inc()
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}
	s.metrics.FramesPublished.Inc()
	return nil
}
