package clock

import "time"

// Clock supplies the current time; the report run uses it to measure elapsed time.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests.
type MockClock struct {
	currentTime time.Time
}

// NewMockClock returns a MockClock frozen at start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{currentTime: start}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
