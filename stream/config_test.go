package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ilpoo/elastic-momentum/anim"
	"github.com/ilpoo/elastic-momentum/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
mqtt:
  url: tcp://localhost:1883
  topics:
    control: tree/control
defaults:
  duration: 1500
  easing: ease
scenes:
  - name: warm
    from: "#000005"
    to: "#808040"
  - name: rainbow
    type: trail
    trailLength: 180
sequence:
  - scene: warm
    easing: sharpIncline(3)
    loop: -1
    alternate: true
  - scene: rainbow
    target: 4
repeat: true
`

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, DefaultPixels, c.Pixels)
	assert.Equal(t, 30.0, c.FrameRate)
	assert.Equal(t, "ledtx", c.Mqtt.ClientID)
	assert.Equal(t, "home/xmastree/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, "tree/control", c.Mqtt.Topics.Control)
	assert.Equal(t, ":3000", c.Listen)
	require.Len(t, c.Scenes, 2)
	require.Len(t, c.Sequence, 2)
	assert.True(t, c.Repeat)

	step := c.Sequence[0]
	require.NotNil(t, step.Loop)
	assert.Equal(t, anim.Infinite, *step.Loop)
	assert.Nil(t, step.Duration)
}

func TestStepOptions(t *testing.T) {
	c, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)

	defaults, err := c.Defaults.Options()
	require.NoError(t, err)
	opts, err := c.Sequence[0].Options()
	require.NoError(t, err)

	o := anim.DefaultOptions()
	for _, opt := range append(defaults, opts...) {
		opt(&o)
	}
	assert.Equal(t, int64(1500), o.Duration)
	assert.Equal(t, anim.Infinite, o.Loop)
	assert.True(t, o.Alternate)
	assert.Equal(t, 0.0, o.Start)
	assert.Equal(t, 1.0, o.Target)
	assert.InDelta(t, curve.SharpIncline(3)(0.3), o.Easing(0.3), 1e-12)
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "colour: red\n",
		"unknown scene": "sequence:\n  - scene: nowhere\n",
		"bad easing": `
scenes:
  - name: s
    from: "#000000"
    to: "#ffffff"
sequence:
  - scene: s
    easing: wobble
`,
		"bad default easing": "defaults:\n  easing: wobble\n",
		"bad scene":          "scenes:\n  - name: s\n    type: trail\n",
		"zero duration step": `
scenes:
  - name: s
    from: "#000000"
    to: "#ffffff"
sequence:
  - scene: s
    duration: 0
  - scene: s
`,
		"negative default loop": "defaults:\n  loop: -5\n",
		"zero default duration": "defaults:\n  duration: 0\n",
		"too many pixels":       "pixels: 70000\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, c.Sequence, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
