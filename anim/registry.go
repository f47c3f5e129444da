package anim

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is how often Wait checks an animation.
const DefaultPollInterval = 50 * time.Millisecond

// Registry holds named animations and fans frame updates out to them. The
// host owns its lifetime: construct it with NewRegistry and end it with
// Shutdown.
//
// Handles returned by Register and Lookup stay valid after the name is
// replaced or removed, but they then observe a stopped animation that the
// registry no longer updates.
type Registry struct {
	// PollInterval overrides DefaultPollInterval for Wait when positive.
	PollInterval time.Duration

	mu         sync.Mutex
	animations map[string]*Animation

	frameMu sync.Mutex
	driven  atomic.Bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.animations = make(map[string]*Animation)
	return r
}

// Register creates the animation name, replacing and stopping any previous
// animation with that name. The new animation starts stopped.
func (r *Registry) Register(name string, opts ...Option) *Animation {
	a := New(opts...)

	r.mu.Lock()
	old := r.animations[name]
	r.animations[name] = a
	r.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	return a
}

// Lookup finds an animation by name.
func (r *Registry) Lookup(name string) (*Animation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.animations[name]
	return a, ok
}

// Remove stops and forgets name. It reports whether name was registered.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	a, ok := r.animations[name]
	delete(r.animations, name)
	r.mu.Unlock()

	if ok {
		a.Stop()
	}
	return ok
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.animations))
	for n := range r.animations {
		names = append(names, n)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Len is the number of registered animations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.animations)
}

func (r *Registry) snapshot() []*Animation {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*Animation, 0, len(r.animations))
	for _, a := range r.animations {
		list = append(list, a)
	}
	return list
}

// UpdateAll advances every registered animation by dt seconds. The map lock
// is only held while taking a snapshot, so outputs may call back into the
// registry. Concurrent calls are serialized so no animation is updated twice
// at once.
func (r *Registry) UpdateAll(dt float64) {
	r.frameMu.Lock()
	defer r.frameMu.Unlock()

	for _, a := range r.snapshot() {
		a.Update(dt)
	}
}

// Shutdown stops and removes every animation.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	old := r.animations
	r.animations = make(map[string]*Animation)
	r.mu.Unlock()

	for _, a := range old {
		a.Stop()
	}
}

// Run drives UpdateAll at frameRate frames per second until ctx is done,
// passing the measured wall-clock time since the previous frame. afterFrame,
// if set, is called once each frame has been applied.
func (r *Registry) Run(ctx context.Context, frameRate float64, afterFrame func(dt float64)) error {
	if !(frameRate > 0) {
		return fmt.Errorf("anim: invalid frame rate %v", frameRate)
	}
	if !r.driven.CompareAndSwap(false, true) {
		return fmt.Errorf("anim: registry is already driven")
	}
	defer r.driven.Store(false)

	ticker := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.UpdateAll(dt)
			if afterFrame != nil {
				afterFrame(dt)
			}
		}
	}
}

// Wait blocks until the named animation stops or ctx is done. It refuses to
// wait on unknown or infinite animations and when no Run loop is active,
// since none of those can finish. Wait must not be called from afterFrame or
// an Output: the frame loop would block on itself until ctx ends.
func (r *Registry) Wait(ctx context.Context, name string) error {
	a, ok := r.Lookup(name)
	if !ok {
		return r.waitFailed(name, ErrNotFound)
	}
	if !r.driven.Load() {
		return r.waitFailed(name, ErrNotDriven)
	}
	if a.IsInfinite() {
		return r.waitFailed(name, ErrInfinite)
	}

	interval := r.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for a.IsRunning() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("anim: wait %q: %w", name, ctx.Err())
		case <-ticker.C:
		}
	}
	return nil
}

func (r *Registry) waitFailed(name string, err error) error {
	log.Printf("anim: wait called for %q: %v", name, err)
	return fmt.Errorf("anim: wait %q: %w", name, err)
}
