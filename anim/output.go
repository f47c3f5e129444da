package anim

import "sync"

// Output receives the current value after every update, play and stop.
// It is called without any animation lock held.
type Output func(value float64)

// BindFloat mirrors values into p. The caller keeps p alive for as long as
// the animation is updated, and reads it only from the updating goroutine.
func BindFloat(p *float64) Output {
	if p == nil {
		return nil
	}
	return func(v float64) { *p = v }
}

// Table is caller-owned storage for animation outputs addressed by index.
// Reads and writes are safe across goroutines.
type Table struct {
	mu     sync.RWMutex
	values []float64
}

// NewTable allocates a table of n zeroed slots.
func NewTable(n int) *Table {
	return &Table{values: make([]float64, n)}
}

// Slot returns an Output writing into index i. Writes to an index outside
// the table are dropped.
func (t *Table) Slot(i int) Output {
	return func(v float64) {
		t.mu.Lock()
		if i >= 0 && i < len(t.values) {
			t.values[i] = v
		}
		t.mu.Unlock()
	}
}

// Get reads index i, returning 0 when it is out of range.
func (t *Table) Get(i int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i < 0 || i >= len(t.values) {
		return 0
	}
	return t.values[i]
}

// Len is the number of slots.
func (t *Table) Len() int {
	return len(t.values)
}
