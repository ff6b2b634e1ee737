// Package clock supplies registration timestamps.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time to the engine.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fake is a deterministic Clock. Every call to Now returns the current
// value and then moves it forward by step, so consecutive registrations get
// distinct, predictable timestamps. A zero step freezes time.
type Fake struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewFake creates a Fake starting at start.
func NewFake(start time.Time, step time.Duration) *Fake {
	return &Fake{current: start, step: step}
}

// Now returns the current fake time and advances it by step.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set moves the fake time to t.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
