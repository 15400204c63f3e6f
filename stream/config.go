package stream

import (
	"fmt"
	"os"

	"github.com/ilpoo/elastic-momentum/anim"
	"github.com/ilpoo/elastic-momentum/curve"
	"gopkg.in/yaml.v2"
)

// Config is the YAML file the app starts from.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Listen    string        `yaml:"listen"`
	Pixels    int           `yaml:"pixels"`
	FrameRate float64       `yaml:"frameRate"`
	Defaults  StepConfig    `yaml:"defaults"`
	Scenes    []SceneConfig `yaml:"scenes"`
	Sequence  []StepConfig  `yaml:"sequence"`
	Repeat    bool          `yaml:"repeat"`
}

// SceneConfig describes a Scene. Type is "fill" (From, To as hex colours) or
// "trail" (Gradient, TrailLength, Saturation, Luminance).
type SceneConfig struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	From        string         `yaml:"from"`
	To          string         `yaml:"to"`
	Gradient    []GradientStop `yaml:"gradient"`
	TrailLength int            `yaml:"trailLength"`
	Saturation  float64        `yaml:"saturation"`
	Luminance   float64        `yaml:"luminance"`
}

// StepConfig is one animation of a sequence. Unset fields fall back to the
// engine defaults. Loop -1 loops forever.
type StepConfig struct {
	Scene     string   `yaml:"scene" json:"scene"`
	Duration  *int64   `yaml:"duration" json:"duration"`
	Easing    string   `yaml:"easing" json:"easing"`
	Loop      *int     `yaml:"loop" json:"loop"`
	Alternate *bool    `yaml:"alternate" json:"alternate"`
	Start     *float64 `yaml:"start" json:"start"`
	Target    *float64 `yaml:"target" json:"target"`
}

// Options converts the step to engine options.
func (s StepConfig) Options() ([]anim.Option, error) {
	var opts []anim.Option
	if s.Duration != nil {
		opts = append(opts, anim.WithDuration(*s.Duration))
	}
	if s.Easing != "" {
		f, err := curve.Lookup(s.Easing)
		if err != nil {
			return nil, err
		}
		opts = append(opts, anim.WithEasing(f))
	}
	if s.Loop != nil {
		opts = append(opts, anim.WithLoop(*s.Loop))
	}
	if s.Alternate != nil {
		opts = append(opts, anim.WithAlternate(*s.Alternate))
	}
	if s.Start != nil {
		opts = append(opts, anim.WithStart(*s.Start))
	}
	if s.Target != nil {
		opts = append(opts, anim.WithTarget(*s.Target))
	}
	return opts, nil
}

// LoadConfig reads and checks a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills in defaults and checks that every step
// names a known scene and resolves to valid animation options.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if c.Pixels <= 0 {
		c.Pixels = DefaultPixels
	}
	if c.Pixels > MaxPixels {
		return Config{}, fmt.Errorf("pixels: %d exceeds %d", c.Pixels, MaxPixels)
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtx"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Listen == "" {
		c.Listen = ":3000"
	}

	defaults, err := c.Defaults.Options()
	if err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	base := resolve(anim.DefaultOptions(), defaults)
	if err := base.Validate(); err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	scenes := make(map[string]bool, len(c.Scenes))
	for _, s := range c.Scenes {
		if _, err := NewScene(s); err != nil {
			return Config{}, err
		}
		scenes[s.Name] = true
	}
	for i, step := range c.Sequence {
		if !scenes[step.Scene] {
			return Config{}, fmt.Errorf("sequence[%d]: unknown scene %q", i, step.Scene)
		}
		opts, err := step.Options()
		if err != nil {
			return Config{}, fmt.Errorf("sequence[%d]: %w", i, err)
		}
		if err := resolve(base, opts).Validate(); err != nil {
			return Config{}, fmt.Errorf("sequence[%d]: %w", i, err)
		}
	}
	return c, nil
}

// resolve applies opts over base the way an Engine does.
func resolve(base anim.Options, opts []anim.Option) anim.Options {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
