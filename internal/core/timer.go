package core

import "time"

// Clock reports monotonic elapsed seconds since it was started. Pausing
// freezes the reported value; resuming continues from where it stopped.
type Clock struct {
	now     func() time.Time
	start   time.Time
	paused  bool
	pauseAt time.Time
}

// NewClock starts a clock backed by time.Now.
func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith starts a clock backed by the provided time source.
func NewClockWith(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Elapsed returns the seconds since the clock started, excluding pauses.
func (c *Clock) Elapsed() float64 {
	at := c.now()
	if c.paused {
		at = c.pauseAt
	}
	d := at.Sub(c.start)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool { return c.paused }

// SetPaused freezes or resumes the clock.
func (c *Clock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	if paused {
		c.pauseAt = c.now()
	} else {
		c.start = c.start.Add(c.now().Sub(c.pauseAt))
	}
	c.paused = paused
}
