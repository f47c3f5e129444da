package stream

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/easing"
	"gopkg.in/yaml.v2"
)

// Config is the host configuration read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Listen     string            `yaml:"listen"`
	FrameRate  float64           `yaml:"frameRate"`
	Pixels     int               `yaml:"pixels"`
	Master     string            `yaml:"master"`
	Animations []AnimationConfig `yaml:"animations"`
	Channels   []ChannelConfig   `yaml:"channels"`
}

// AnimationConfig describes one named animation.
type AnimationConfig struct {
	Name       string        `yaml:"name"`
	Min        float64       `yaml:"min"`
	Max        *float64      `yaml:"max"`
	Duration   time.Duration `yaml:"duration"`
	Delay      time.Duration `yaml:"delay"`
	Iterations int           `yaml:"iterations"`
	Direction  string        `yaml:"direction"`
	Easing     string        `yaml:"easing"`
	Autoplay   bool          `yaml:"autoplay"`
}

// ChannelConfig paints pixels [Start, End) by blending From to To with the
// value of Animation.
type ChannelConfig struct {
	Animation string `yaml:"animation"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	From      string `yaml:"from"`
	To        string `yaml:"to"`
}

const (
	defaultFrameRate = 30.0
	defaultPixels    = 500
)

// ReadConfig decodes and validates a YAML configuration.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("stream: decode config: %w", err)
	}

	if c.FrameRate <= 0 {
		c.FrameRate = defaultFrameRate
	}
	if c.Pixels <= 0 {
		c.Pixels = defaultPixels
	}
	if c.Pixels > math.MaxUint16 {
		return c, fmt.Errorf("stream: %d pixels exceeds the frame limit of %d", c.Pixels, math.MaxUint16)
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledanim"
	}

	seen := make(map[string]bool, len(c.Animations))
	for _, a := range c.Animations {
		if a.Name == "" {
			return c, fmt.Errorf("stream: animation without a name")
		}
		if seen[a.Name] {
			return c, fmt.Errorf("stream: duplicate animation %q", a.Name)
		}
		seen[a.Name] = true
		if _, err := a.Options(); err != nil {
			return c, err
		}
	}
	if c.Master != "" && !seen[c.Master] {
		return c, fmt.Errorf("stream: unknown master animation %q", c.Master)
	}
	for i, ch := range c.Channels {
		if !seen[ch.Animation] {
			return c, fmt.Errorf("stream: channel %d: unknown animation %q", i, ch.Animation)
		}
		if _, err := ch.channel(c.Pixels); err != nil {
			return c, fmt.Errorf("stream: channel %d: %w", i, err)
		}
	}

	return c, nil
}

// ReadConfigFile opens path and reads it with ReadConfig.
func ReadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("stream: open config: %w", err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// Options converts the entry to animation options. A missing max keeps the
// default range end of 1.
func (a AnimationConfig) Options() ([]anim.Option, error) {
	dir, err := anim.ParseDirection(a.Direction)
	if err != nil {
		return nil, fmt.Errorf("stream: animation %q: %w", a.Name, err)
	}
	fn, ok := easing.Lookup(a.Easing)
	if !ok {
		return nil, fmt.Errorf("stream: animation %q: unknown easing %q", a.Name, a.Easing)
	}

	max := 1.0
	if a.Max != nil {
		max = *a.Max
	}
	opts := []anim.Option{
		anim.WithRange(a.Min, max),
		anim.WithDirection(dir),
		anim.WithEasing(fn),
	}
	if a.Duration != 0 {
		opts = append(opts, anim.WithDuration(a.Duration.Seconds()))
	}
	if a.Delay != 0 {
		opts = append(opts, anim.WithDelay(a.Delay.Seconds()))
	}
	if a.Iterations != 0 {
		opts = append(opts, anim.WithIterations(a.Iterations))
	}

	return opts, nil
}

// Register adds every configured animation to r and starts the autoplay ones.
func (c Config) Register(r *anim.Registry) error {
	for _, ac := range c.Animations {
		opts, err := ac.Options()
		if err != nil {
			return err
		}
		a := r.Register(ac.Name, opts...)
		if ac.Autoplay {
			a.Play()
		}
	}
	return nil
}

func (cc ChannelConfig) channel(pixels int) (*Channel, error) {
	from, err := colorful.Hex(cc.From)
	if err != nil {
		return nil, fmt.Errorf("from colour: %w", err)
	}
	to, err := colorful.Hex(cc.To)
	if err != nil {
		return nil, fmt.Errorf("to colour: %w", err)
	}
	end := cc.End
	if end == 0 || end > pixels {
		end = pixels
	}
	if cc.Start < 0 || cc.Start >= end {
		return nil, fmt.Errorf("empty pixel span [%d,%d)", cc.Start, end)
	}

	return NewChannel(cc.Animation, cc.Start, end, from, to), nil
}

// BuildChannels creates the configured channels.
func (c Config) BuildChannels() ([]*Channel, error) {
	channels := make([]*Channel, 0, len(c.Channels))
	for i, cc := range c.Channels {
		ch, err := cc.channel(c.Pixels)
		if err != nil {
			return nil, fmt.Errorf("stream: channel %d: %w", i, err)
		}
		channels = append(channels, ch)
	}
	return channels, nil
}
