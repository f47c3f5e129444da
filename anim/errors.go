package anim

import "errors"

var (
	// ErrNotFound is returned for names that are not registered.
	ErrNotFound = errors.New("animation not found")
	// ErrInfinite is returned when waiting on an animation that never ends.
	ErrInfinite = errors.New("animation repeats forever")
	// ErrNotDriven is returned when waiting while no frame loop is running.
	ErrNotDriven = errors.New("registry has no running frame loop")
)
