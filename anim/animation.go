// Package anim advances named scalar values over time. An Animation walks a
// value between a minimum and a maximum through an easing curve, honouring a
// start delay, an iteration count and a direction. Time only moves inside
// Update; there is no background timer.
package anim

import (
	"math"
	"sync"
)

// An Animation is the timeline of one scalar value.
//
// Methods may be called from any goroutine, but Update, Play, PlayReverse and
// Stop are expected to come from a single frame loop per instance.
type Animation struct {
	mu  sync.Mutex
	cfg Config

	progress      float64 // normalized progress within the current phase
	value         float64
	delayLeft     float64
	iterations    int
	direction     Direction
	movingForward bool
	sweepStart    bool // movingForward at the start of a PingPong iteration
	state         State
}

// New creates a stopped animation. Call Play to start it.
func New(opts ...Option) *Animation {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := new(Animation)
	a.cfg = cfg.sanitized()
	a.reset(a.cfg.Direction)
	a.state = Stopped

	return a
}

// reset restores the playback state for a run in direction d. Callers hold mu.
func (a *Animation) reset(d Direction) {
	a.iterations = a.cfg.Iterations
	a.delayLeft = a.cfg.Delay
	a.progress = 0
	a.direction = d
	a.movingForward = true
	a.sweepStart = true
	a.value = a.startValue()
}

func (a *Animation) startValue() float64 {
	if a.direction == Backward || (a.direction == PingPong && !a.movingForward) {
		return a.cfg.Max
	}
	return a.cfg.Min
}

// mapped converts eased progress into the output range for the current sweep.
func (a *Animation) mapped(eased float64) float64 {
	span := a.cfg.Max - a.cfg.Min
	switch {
	case a.direction == Forward:
		return a.cfg.Min + span*eased
	case a.direction == Backward:
		return a.cfg.Max - span*eased
	case a.movingForward:
		return a.cfg.Min + span*eased
	}
	return a.cfg.Max - span*eased
}

// Update advances the animation by dt seconds. Time left over after a phase
// completes carries into the next phase within the same call.
func (a *Animation) Update(dt float64) {
	a.mu.Lock()
	if a.state == Stopped || !(dt > 0) || math.IsInf(dt, 1) {
		a.mu.Unlock()
		return
	}
	a.step(dt)
	value, out := a.value, a.cfg.Output
	a.mu.Unlock()

	if out != nil {
		out(value)
	}
}

func (a *Animation) step(dt float64) {
	if a.delayLeft > 0 {
		a.delayLeft -= dt
		if a.delayLeft > 0 {
			return
		}
		dt = -a.delayLeft
		a.delayLeft = 0
		if dt <= 0 {
			return
		}
	}

	if a.cfg.Max == a.cfg.Min {
		a.value = a.cfg.Min
		a.state = Stopped
		return
	}

	remaining := dt
	for remaining > 0 && a.state == Running {
		if a.progress == 0 {
			remaining = a.skipWhole(remaining)
		}

		norm := remaining / a.cfg.Duration
		left := 1 - a.progress
		if norm < left {
			a.progress += norm
			remaining = 0
		} else {
			a.progress = 1
			if next := remaining - left*a.cfg.Duration; next < remaining {
				remaining = next
			} else {
				remaining = 0
			}
		}

		a.value = a.mapped(a.cfg.Easing(a.progress))

		if a.progress < 1 {
			break
		}
		a.completePhase()
	}
}

// skipWhole drops whole cycles from remaining at a phase boundary, so a dt
// far larger than the duration costs a bounded number of loop passes. It
// leaves one cycle (or the final phase) to run normally, which keeps the
// resulting state identical to stepping through every phase.
func (a *Animation) skipWhole(remaining float64) float64 {
	d := a.cfg.Duration

	if a.iterations == Infinite {
		cycle := d
		if a.direction == PingPong {
			cycle = 2 * d
		}
		if remaining < 2*cycle {
			return remaining
		}
		return cycle + math.Mod(remaining, cycle)
	}

	phases := float64(a.iterations)
	if a.direction == PingPong {
		phases *= 2
		if a.movingForward != a.sweepStart {
			phases--
		}
	}
	if remaining <= phases*d {
		return remaining
	}

	// Enough time to finish: only the last phase is left to run.
	a.iterations = 1
	if a.direction == PingPong {
		a.movingForward = !a.sweepStart
	}
	return d
}

// completePhase resolves a phase that reached progress 1.
func (a *Animation) completePhase() {
	a.progress = 0

	if a.direction == PingPong {
		a.movingForward = !a.movingForward
		if a.movingForward != a.sweepStart {
			return
		}
	}

	if a.iterations == Infinite {
		return
	}
	a.iterations--
	if a.iterations > 0 {
		return
	}

	a.iterations = 0
	a.state = Stopped
	switch {
	case a.direction == Forward:
		a.value = a.cfg.Max
	case a.direction == PingPong && !a.sweepStart:
		a.value = a.cfg.Max
	default:
		a.value = a.cfg.Min
	}
}

// Play restarts the animation from its configured initial state.
func (a *Animation) Play() {
	a.mu.Lock()
	a.reset(a.cfg.Direction)
	a.state = Running
	value, out := a.value, a.cfg.Output
	a.mu.Unlock()

	if out != nil {
		out(value)
	}
}

// PlayReverse restarts the animation running against its configured
// direction. The reversal lasts until the next Play or Stop. A PingPong
// animation starts at the maximum, sweeps down first, and an iteration is
// the round trip back up to the maximum.
func (a *Animation) PlayReverse() {
	a.mu.Lock()
	a.reset(a.cfg.Direction.reversed())
	if a.direction == PingPong {
		a.movingForward = false
		a.sweepStart = false
		a.value = a.startValue()
	}
	a.state = Running
	value, out := a.value, a.cfg.Output
	a.mu.Unlock()

	if out != nil {
		out(value)
	}
}

// Stop halts playback and rewinds to the start of the configured direction.
func (a *Animation) Stop() {
	a.mu.Lock()
	a.reset(a.cfg.Direction)
	a.state = Stopped
	value, out := a.value, a.cfg.Output
	a.mu.Unlock()

	if out != nil {
		out(value)
	}
}

// Value returns the last computed output.
func (a *Animation) Value() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// State returns the playback state.
func (a *Animation) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// IsRunning reports whether the animation is playing.
func (a *Animation) IsRunning() bool {
	return a.State() == Running
}

// IsInfinite reports whether the animation repeats forever.
func (a *Animation) IsInfinite() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.iterations == Infinite
}

// Progress returns the normalized progress within the current phase.
func (a *Animation) Progress() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress
}

// Direction returns the direction of the current run, which differs from
// the configured one after PlayReverse.
func (a *Animation) Direction() Direction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.direction
}

// MovingForward reports whether a PingPong animation is on its upward sweep.
func (a *Animation) MovingForward() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.movingForward
}

// IterationsRemaining returns the iterations left, or Infinite.
func (a *Animation) IterationsRemaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.iterations
}

// Config returns the sanitized configuration.
func (a *Animation) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}
