package anim

import (
	"fmt"
	"strings"
)

// Direction selects how a phase maps onto the output range.
type Direction uint8

const (
	// Forward sweeps min to max. One iteration is one phase.
	Forward Direction = iota
	// Backward sweeps max to min. One iteration is one phase.
	Backward
	// PingPong sweeps min to max and back. One iteration is both sweeps.
	PingPong
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case PingPong:
		return "pingpong"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// reversed swaps Forward and Backward. PingPong has no linear reverse and is
// returned as is.
func (d Direction) reversed() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	}
	return d
}

// ParseDirection reads a direction name. The empty string is Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return Forward, nil
	case "backward", "reverse":
		return Backward, nil
	case "pingpong", "ping-pong", "ping_pong":
		return PingPong, nil
	}
	return Forward, fmt.Errorf("anim: unknown direction %q", s)
}

// State is the playback state of an Animation.
type State uint8

const (
	// Stopped animations ignore Update until played again.
	Stopped State = iota
	// Running animations advance on every Update.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}
