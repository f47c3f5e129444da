package anim

import "github.com/matt-g-everett/ledanim/easing"

const (
	// MinDuration is the shortest phase an animation will run.
	MinDuration = 0.001
	// Infinite repeats forever.
	Infinite = -1
)

// Config is the immutable configuration of an Animation. Durations are in
// seconds.
type Config struct {
	Min        float64
	Max        float64
	Duration   float64
	Delay      float64
	Iterations int
	Direction  Direction
	Easing     easing.Func
	Output     Output
}

// DefaultConfig is a one second, single iteration, linear 0 to 1 sweep.
func DefaultConfig() Config {
	return Config{
		Min:        0,
		Max:        1,
		Duration:   1,
		Iterations: 1,
		Direction:  Forward,
		Easing:     easing.Linear,
	}
}

func (c Config) sanitized() Config {
	if !(c.Duration >= MinDuration) {
		c.Duration = MinDuration
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Iterations == 0 {
		c.Iterations = 1
	} else if c.Iterations < 0 {
		c.Iterations = Infinite
	}
	if c.Direction > PingPong {
		c.Direction = Forward
	}
	c.Easing = easing.OrLinear(c.Easing)
	return c
}

// An Option adjusts a Config.
type Option func(*Config)

// WithRange sets the output range.
func WithRange(min, max float64) Option {
	return func(c *Config) {
		c.Min = min
		c.Max = max
	}
}

// WithDuration sets the length of one phase in seconds.
func WithDuration(seconds float64) Option {
	return func(c *Config) { c.Duration = seconds }
}

// WithDelay sets the wait before playback in seconds.
func WithDelay(seconds float64) Option {
	return func(c *Config) { c.Delay = seconds }
}

// WithIterations sets the iteration count; Infinite repeats forever.
func WithIterations(n int) Option {
	return func(c *Config) { c.Iterations = n }
}

// WithDirection sets the playback direction.
func WithDirection(d Direction) Option {
	return func(c *Config) { c.Direction = d }
}

// WithEasing sets the easing curve. nil keeps Linear.
func WithEasing(fn easing.Func) Option {
	return func(c *Config) { c.Easing = fn }
}

// WithOutput mirrors every value change into out.
func WithOutput(out Output) Option {
	return func(c *Config) { c.Output = out }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
