package stats

import (
	"sync/atomic"
	"time"
)

// CostCounter is a monotonic counter of work done. Operations report the
// difference between two readings taken around their body.
type CostCounter interface {
	// Read returns the current counter value
	Read() uint64
}

// Measure returns the counter delta across fn together with fn's error
func Measure(c CostCounter, fn func() error) (uint64, error) {
	before := c.Read()
	err := fn()
	after := c.Read()
	if after < before {
		return 0, err
	}
	return after - before, err
}

// ClockCounter counts nanoseconds on the monotonic clock since it was created
type ClockCounter struct {
	base time.Time
}

// NewClockCounter creates a counter starting at zero
func NewClockCounter() *ClockCounter {
	return &ClockCounter{base: time.Now()}
}

// Read returns the nanoseconds elapsed since the counter was created
func (c *ClockCounter) Read() uint64 {
	return uint64(time.Since(c.base).Nanoseconds())
}

// ManualCounter is advanced explicitly. Components that account for their own
// work, and tests that need deterministic costs, use it.
type ManualCounter struct {
	v atomic.Uint64
}

// NewManualCounter creates a counter starting at zero
func NewManualCounter() *ManualCounter {
	return &ManualCounter{}
}

// Add advances the counter by n
func (c *ManualCounter) Add(n uint64) {
	c.v.Add(n)
}

// Read returns the current value
func (c *ManualCounter) Read() uint64 {
	return c.v.Load()
}
