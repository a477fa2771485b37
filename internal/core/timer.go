package core

import "time"

// TurnClock decides when the next automatic turn is due. A zero interval
// disables it.
type TurnClock struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewTurnClock constructs a clock firing once per interval.
func NewTurnClock(interval time.Duration) *TurnClock {
	c := &TurnClock{now: time.Now}
	c.SetInterval(interval)
	return c
}

// SetInterval changes the period and restarts the accumulator. It is safe to
// call from the main loop.
func (c *TurnClock) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	c.interval = interval
	c.accumulator = 0
	c.last = time.Time{}
}

// Enabled reports whether automatic turns are on.
func (c *TurnClock) Enabled() bool { return c.interval > 0 }

// Interval returns the configured period.
func (c *TurnClock) Interval() time.Duration { return c.interval }

// Due reports whether a turn should advance now. At most one turn is reported
// per call; a long stall does not produce a burst of turns.
func (c *TurnClock) Due() bool {
	if !c.Enabled() {
		return false
	}
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return false
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator < c.interval {
		return false
	}
	c.accumulator -= c.interval
	// Overshoot below one interval carries over; a whole missed interval is dropped.
	if c.accumulator >= c.interval {
		c.accumulator = 0
	}
	return true
}
