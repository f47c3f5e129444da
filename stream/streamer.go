package stream

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledanim/anim"
)

// Streamer drives a registry frame by frame and streams the rendered pixels
// to an ledrx device.
type Streamer struct {
	registry   *anim.Registry
	channels   []*Channel
	sink       Sink
	topic      string
	master     string
	pixels     int
	frameRate  float64
	backColour colorful.Color

	frames atomic.Int64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, registry *anim.Registry, channels []*Channel, sink Sink) *Streamer {
	s := new(Streamer)
	s.registry = registry
	s.channels = channels
	s.sink = sink
	s.topic = config.Mqtt.Topics.Stream
	s.master = config.Master
	s.pixels = config.Pixels
	s.frameRate = config.FrameRate
	s.backColour, _ = colorful.Hex("#000000")

	return s
}

// RenderFrame paints every channel with the current value of its animation.
// Channels whose animation is not registered are left at the back colour.
// When a master animation is configured, its value fades the whole frame in
// from the back colour.
func (s *Streamer) RenderFrame() *Frame {
	f := NewFrame(s.pixels)
	f.Fill(s.backColour)
	for _, c := range s.channels {
		a, ok := s.registry.Lookup(c.Animation)
		if !ok {
			continue
		}
		c.Render(f, a.Value())
	}

	if s.master == "" {
		return f
	}
	m, ok := s.registry.Lookup(s.master)
	if !ok {
		return f
	}
	back := NewFrame(s.pixels)
	back.Fill(s.backColour)
	return back.InterpolateFrame(f, m.Value())
}

// SendFrame renders a frame and sends it to the sink.
func (s *Streamer) SendFrame() error {
	b, err := s.RenderFrame().MarshalBinary()
	if err != nil {
		return err
	}
	s.frames.Add(1)
	return s.sink.Send(s.topic, b)
}

// Frames is the number of frames sent so far.
func (s *Streamer) Frames() int64 {
	return s.frames.Load()
}

// Run advances the animations and sends a frame at the configured frame rate
// until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	return s.registry.Run(ctx, s.frameRate, func(float64) {
		if err := s.SendFrame(); err != nil {
			log.Println(err)
		}
	})
}
