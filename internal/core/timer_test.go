package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTurnClockDisabled(t *testing.T) {
	c := NewTurnClock(0)
	assert.False(t, c.Enabled())
	assert.False(t, c.Due())

	c.SetInterval(-time.Second)
	assert.False(t, c.Enabled())
}

func TestTurnClockFiresOncePerInterval(t *testing.T) {
	fc := &fakeClock{t: time.Unix(1000, 0)}
	c := NewTurnClock(2 * time.Second)
	c.now = fc.now

	assert.False(t, c.Due(), "first call only primes the clock")
	fc.advance(1500 * time.Millisecond)
	assert.False(t, c.Due())
	fc.advance(600 * time.Millisecond)
	assert.True(t, c.Due())
	assert.False(t, c.Due())
}

func TestTurnClockNoBurstAfterStall(t *testing.T) {
	cases := []struct {
		name  string
		stall time.Duration
	}{
		{"exactly two intervals", 2 * time.Second},
		{"ten intervals", 10 * time.Second},
		{"one and a half intervals", 1500 * time.Millisecond},
		{"an hour", time.Hour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeClock{t: time.Unix(1000, 0)}
			c := NewTurnClock(time.Second)
			c.now = fc.now
			c.Due()

			fc.advance(tc.stall)
			assert.True(t, c.Due())
			assert.False(t, c.Due())
			assert.False(t, c.Due())
		})
	}
}

func TestTurnClockCarriesPartialOvershoot(t *testing.T) {
	fc := &fakeClock{t: time.Unix(1000, 0)}
	c := NewTurnClock(time.Second)
	c.now = fc.now
	c.Due()

	fc.advance(1500 * time.Millisecond)
	assert.True(t, c.Due())
	fc.advance(500 * time.Millisecond)
	assert.True(t, c.Due(), "half an interval carried from the previous turn")
	fc.advance(500 * time.Millisecond)
	assert.False(t, c.Due())
}
