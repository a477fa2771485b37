// Package game holds the mock country whose state the chart visualizes. Turn
// progression is a fixed additive schedule with no rules.
package game

import (
	"fmt"

	"turnchart/internal/history"
)

// Country is the player's state for the current turn.
type Country struct {
	cfg Config

	turn    int
	current history.Values
}

// Resume returns a country continuing from the given snapshot.
func Resume(cfg Config, last history.Snapshot) *Country {
	return &Country{cfg: cfg, turn: last.Turn, current: last.Metrics}
}

// Name returns the display name.
func (c *Country) Name() string { return c.cfg.Name }

// Turn returns the current turn index.
func (c *Country) Turn() int { return c.turn }

// Value returns the current reading for m.
func (c *Country) Value(m history.Metric) int64 {
	if !m.Valid() {
		return 0
	}
	return c.current[m]
}

// Snapshot captures the current state.
func (c *Country) Snapshot() history.Snapshot {
	return history.Snapshot{Turn: c.turn, Metrics: c.current}
}

// Peek returns the snapshot one turn of growth would produce. The country is
// not modified until the snapshot is committed.
func (c *Country) Peek() history.Snapshot {
	next := c.current
	for i := range next {
		next[i] += c.cfg.Growth[i]
	}
	return history.Snapshot{Turn: c.turn + 1, Metrics: next}
}

// Commit makes snap the current state. It is used after the snapshot has been
// accepted by the history store so the two never disagree.
func (c *Country) Commit(snap history.Snapshot) error {
	if snap.Turn != c.turn+1 {
		return fmt.Errorf("commit turn %d onto turn %d: %w", snap.Turn, c.turn, history.ErrInvalidSequence)
	}
	c.turn = snap.Turn
	c.current = snap.Metrics
	return nil
}
