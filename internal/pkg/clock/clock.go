package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is truncated to whole seconds so every time comparison in the ledger
// happens at the same precision the store persists.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// MockClock is safe for concurrent use by parallel reservation tests.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func NewMockClockUnix(sec int64) *MockClock {
	return NewMockClock(time.Unix(sec, 0).UTC())
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) SetUnix(sec int64) {
	c.Set(time.Unix(sec, 0).UTC())
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
