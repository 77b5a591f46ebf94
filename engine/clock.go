package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock abstracts the time source so the frame loop can run on wall
// time in play and on a scripted source in tests.
type Clock interface {
	Now() time.Time
}

// MonotonicClock reads the system clock with monotonic readings.
type MonotonicClock struct{}

func NewMonotonicClock() *MonotonicClock { return &MonotonicClock{} }

func (c *MonotonicClock) Now() time.Time { return time.Now() }

// MockClock is a hand-advanced time source for tests.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Advance moves the mocked time forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// PausableClock layers a freezable game time over an underlying clock.
// While paused, Now holds still; accumulated pause time is subtracted
// from the real elapsed so the simulation never sees the gap.
type PausableClock struct {
	mu   sync.RWMutex
	real Clock

	start       time.Time
	paused      atomic.Bool
	pauseStart  time.Time
	totalPaused time.Duration
}

func NewPausableClock(real Clock) *PausableClock {
	return &PausableClock{
		real:  real,
		start: real.Now(),
	}
}

// Now returns the current game time.
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused.Load() {
		return pc.start.Add(pc.pauseStart.Sub(pc.start) - pc.totalPaused)
	}
	return pc.real.Now().Add(-pc.totalPaused)
}

func (pc *PausableClock) Pause() {
	if pc.paused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStart = pc.real.Now()
	}
}

func (pc *PausableClock) Resume() {
	if pc.paused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStart.IsZero() {
			pc.totalPaused += pc.real.Now().Sub(pc.pauseStart)
			pc.pauseStart = time.Time{}
		}
	}
}

func (pc *PausableClock) IsPaused() bool {
	return pc.paused.Load()
}
