package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Channel paints a span of pixels with a colour blended between From and
// To by the value of a named animation. Values outside [0,1], for example
// from overshooting curves, extrapolate the blend and are clamped on output.
type Channel struct {
	Animation string
	Start     int
	End       int
	From      colorful.Color
	To        colorful.Color
}

// NewChannel creates a Channel covering pixels [start, end).
func NewChannel(animation string, start, end int, from, to colorful.Color) *Channel {
	c := new(Channel)
	c.Animation = animation
	c.Start = start
	c.End = end
	c.From = from
	c.To = to
	return c
}

// Color is the channel colour for an animation value.
func (c *Channel) Color(value float64) colorful.Color {
	return c.From.BlendHcl(c.To, value).Clamped()
}

// Render paints the channel's span of f.
func (c *Channel) Render(f *Frame, value float64) {
	colour := c.Color(value)
	end := c.End
	if end > len(f.pixels) {
		end = len(f.pixels)
	}
	for i := c.Start; i < end; i++ {
		f.pixels[i] = colour
	}
}
