package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/ilpoo/elastic-momentum/anim"
)

// Loop is the single goroutine a Controller and its Engine live on.
type Loop interface {
	anim.Frames
	// Do runs fn on the loop goroutine.
	Do(fn func())
}

// Command is a control message received over MQTT.
type Command struct {
	// Type is one of animate, queue, pause, resume, stop, clear, loop or
	// restart.
	Type      string     `json:"type"`
	Step      StepConfig `json:"step"`
	Reason    string     `json:"reason"`
	ResetLoop bool       `json:"resetLoop"`
	Loop      int        `json:"loop"`
	Which     int        `json:"which"`
}

// Controller turns animated values into frames. It owns an anim.Engine and
// renders the scene of the running step on every frame.
type Controller struct {
	ctx      context.Context
	loop     Loop
	engine   *anim.Engine
	streamer *Streamer
	metrics  *Metrics

	scenes   map[string]Scene
	frame    *Frame
	sequence []StepConfig
	repeat   bool
	topic    string

	mu       sync.Mutex
	watching map[*anim.Completion]chan struct{}
}

// NewController creates a Controller for cfg. Completions are watched until
// ctx is done.
func NewController(ctx context.Context, cfg Config, loop Loop, clock anim.Clock,
	streamer *Streamer, metrics *Metrics) (*Controller, error) {

	defaults, err := cfg.Defaults.Options()
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	c := new(Controller)
	c.ctx = ctx
	c.loop = loop
	c.engine = anim.New(loop, clock, defaults...)
	c.engine.SetLogger(log.Default())
	c.streamer = streamer
	c.metrics = metrics
	c.frame = NewFrame(cfg.Pixels)
	c.sequence = cfg.Sequence
	c.repeat = cfg.Repeat
	c.topic = cfg.Mqtt.Topics.Control
	c.watching = make(map[*anim.Completion]chan struct{})

	c.scenes = make(map[string]Scene, len(cfg.Scenes))
	for _, sc := range cfg.Scenes {
		scene, err := NewScene(sc)
		if err != nil {
			return nil, err
		}
		c.scenes[sc.Name] = scene
	}

	return c, nil
}

// Engine returns the engine driving the controller. Only use it on the loop
// goroutine.
func (c *Controller) Engine() *anim.Engine {
	return c.engine
}

// Start queues the configured sequence behind whatever is running. With
// repeat set, the sequence is queued again once its last step completes.
func (c *Controller) Start() {
	for i, step := range c.sequence {
		last := i == len(c.sequence)-1
		if _, err := c.play(step, false, c.repeat && last); err != nil {
			log.Printf("sequence[%d]: %v", i, err)
		}
	}
}

// Play runs step, either behind the queue or replacing it.
func (c *Controller) Play(step StepConfig, replace bool) (*anim.Completion, error) {
	return c.play(step, replace, false)
}

func (c *Controller) play(step StepConfig, replace, restart bool) (*anim.Completion, error) {
	scene, ok := c.scenes[step.Scene]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", step.Scene)
	}
	opts, err := step.Options()
	if err != nil {
		return nil, err
	}

	var comp *anim.Completion
	if replace {
		comp, err = c.engine.Animate(c.sink(scene), opts...)
	} else {
		comp, err = c.engine.Queue(c.sink(scene), opts...)
	}
	if err != nil {
		return nil, err
	}
	c.updateQueueLength()

	release := make(chan struct{})
	c.mu.Lock()
	c.watching[comp] = release
	c.mu.Unlock()
	go c.watch(comp, release, restart)
	return comp, nil
}

func (c *Controller) sink(scene Scene) anim.Sink {
	return func(value float64, r anim.Result) {
		scene.Render(c.frame, value)
		if err := c.streamer.SendFrame(c.frame); err != nil {
			log.Println(err)
		}
		c.updateQueueLength()
	}
}

// watch counts how comp ends. It returns early when the animation is
// discarded from the queue, since its Completion then never settles.
func (c *Controller) watch(comp *anim.Completion, release <-chan struct{}, restart bool) {
	defer c.forget(comp)

	select {
	case <-comp.Done():
		err := comp.Err()
		c.metrics.Animations.WithLabelValues(outcome(err)).Inc()
		if restart && err == nil {
			c.loop.Do(c.Start)
		}
	case <-release:
		c.metrics.Animations.WithLabelValues("discarded").Inc()
		if restart {
			log.Println("repeat cancelled: last step of the sequence was cleared")
		}
	case <-c.ctx.Done():
	}
}

func (c *Controller) forget(comp *anim.Completion) {
	c.mu.Lock()
	delete(c.watching, comp)
	c.mu.Unlock()
}

// discard releases the watchers of animations dropped from the queue.
func (c *Controller) discard(dropped []anim.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range dropped {
		if release, ok := c.watching[s.Completion]; ok {
			delete(c.watching, s.Completion)
			close(release)
		}
	}
}

// watchers returns the number of animations still being watched.
func (c *Controller) watchers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.watching)
}

func (c *Controller) updateQueueLength() {
	c.metrics.QueueLength.Set(float64(len(c.engine.CurrentQueue())))
}

// HandleCommand applies a command to the engine. Call it on the loop
// goroutine.
func (c *Controller) HandleCommand(cmd Command) error {
	c.metrics.Commands.WithLabelValues(cmd.Type).Inc()
	defer c.updateQueueLength()

	switch cmd.Type {
	case "animate", "queue":
		_, err := c.Play(cmd.Step, cmd.Type == "animate")
		return err
	case "pause":
		c.engine.Pause()
	case "resume":
		c.engine.Resume()
	case "stop":
		c.engine.Stop(cmd.Reason)
	case "clear":
		queue := c.engine.CurrentQueue()
		c.engine.ClearQueue(cmd.ResetLoop)
		if len(queue) > 1 {
			c.discard(queue[1:])
		}
	case "loop":
		return c.engine.LoopAt(cmd.Which, cmd.Loop)
	case "restart":
		c.Start()
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}
	return nil
}

func (c *Controller) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("bad command: %v", err)
		return
	}
	c.loop.Do(func() {
		if err := c.HandleCommand(cmd); err != nil {
			log.Printf("command %s: %v", cmd.Type, err)
		}
	})
}

// Subscribe listens for commands on the control topic. It does nothing when
// no control topic is configured.
func (c *Controller) Subscribe(client mqtt.Client) error {
	if c.topic == "" {
		return nil
	}
	if token := client.Subscribe(c.topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}
