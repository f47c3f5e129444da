package stream

import (
	"strings"
	"testing"

	"github.com/matt-g-everett/ledanim/anim"
)

const sampleConfig = `
mqtt:
  url: tcp://localhost:1883
  topics:
    stream: home/xmastree/stream
    control: home/xmastree/control
frameRate: 50
pixels: 20
animations:
  - name: glow
    max: 1
    duration: 2s
    delay: 500ms
    iterations: -1
    direction: pingpong
    easing: easeInOutSine
    autoplay: true
  - name: wipe
    min: 0
    max: 10
    duration: 1s
    easing: outBounce
channels:
  - animation: glow
    start: 0
    end: 10
    from: "#000005"
    to: "#808080"
  - animation: wipe
    start: 10
    from: "#100505"
    to: "#ff0000"
`

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if c.FrameRate != 50 || c.Pixels != 20 {
		t.Errorf("frameRate/pixels = %v/%d", c.FrameRate, c.Pixels)
	}
	if c.Mqtt.ClientID != "ledanim" {
		t.Errorf("clientID = %q, want default", c.Mqtt.ClientID)
	}
	if c.Mqtt.Topics.Control != "home/xmastree/control" {
		t.Errorf("control topic = %q", c.Mqtt.Topics.Control)
	}
	if len(c.Animations) != 2 {
		t.Fatalf("animations = %d, want 2", len(c.Animations))
	}
	if got := c.Animations[0].Delay.Seconds(); got != 0.5 {
		t.Errorf("delay = %v, want 0.5s", got)
	}
}

func TestRegisterFromConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	r := anim.NewRegistry()
	if err := c.Register(r); err != nil {
		t.Fatalf("Register: %v", err)
	}

	glow, ok := r.Lookup("glow")
	if !ok {
		t.Fatal("glow not registered")
	}
	cfg := glow.Config()
	if cfg.Duration != 2 || cfg.Delay != 0.5 || cfg.Direction != anim.PingPong {
		t.Errorf("glow config = %+v", cfg)
	}
	if !glow.IsRunning() || !glow.IsInfinite() {
		t.Error("glow should autoplay forever")
	}

	wipe, _ := r.Lookup("wipe")
	if wipe.IsRunning() {
		t.Error("wipe should not autoplay")
	}
	if wipe.Config().Max != 10 || wipe.Config().Iterations != 1 {
		t.Errorf("wipe config = %+v", wipe.Config())
	}

	channels, err := c.BuildChannels()
	if err != nil {
		t.Fatalf("BuildChannels: %v", err)
	}
	if len(channels) != 2 || channels[1].End != 20 {
		t.Errorf("channels = %+v", channels)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if c.FrameRate != defaultFrameRate || c.Pixels != defaultPixels {
		t.Errorf("defaults = %v/%d", c.FrameRate, c.Pixels)
	}
}

func TestReadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unnamed":     "animations:\n  - max: 1\n",
		"duplicate":   "animations:\n  - name: a\n  - name: a\n",
		"direction":   "animations:\n  - name: a\n    direction: sideways\n",
		"easing":      "animations:\n  - name: a\n    easing: wobble\n",
		"channel ref": "channels:\n  - animation: nope\n    from: \"#000000\"\n    to: \"#ffffff\"\n",
		"colour":      "animations:\n  - name: a\nchannels:\n  - animation: a\n    from: red\n    to: \"#ffffff\"\n",
		"span":        "pixels: 5\nanimations:\n  - name: a\nchannels:\n  - animation: a\n    start: 7\n    from: \"#000000\"\n    to: \"#ffffff\"\n",
		"yaml":        "animations: [",
		"master":      "master: nope\n",
		"pixels":      "pixels: 70000\n",
	}
	for name, doc := range cases {
		if _, err := ReadConfig(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
