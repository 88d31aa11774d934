package governance

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Tests move it by reassigning At.
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.At
}

func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
