// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"sync"
	"time"
)

// ReferenceTime is the default instant for fixed clocks
var ReferenceTime = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

// Clock is a manually advanced time source
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock stopped at start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
