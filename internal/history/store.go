// Package history records the per-turn snapshots of a country's state.
package history

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSequence is returned when a snapshot's turn index does not follow
// the last stored entry.
var ErrInvalidSequence = errors.New("invalid turn sequence")

// Store is an append-only, turn-ordered sequence of snapshots. It is owned by
// a single session and is not safe for concurrent use.
type Store struct {
	entries []Snapshot
}

// NewStore returns a store pre-seeded with the provided snapshots. The seed
// must itself be a valid sequence starting at FirstTurn.
func NewStore(seed ...Snapshot) (*Store, error) {
	s := &Store{entries: make([]Snapshot, 0, len(seed))}
	for _, snap := range seed {
		if err := s.Append(snap); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Append adds snap to the end of the history. The turn index must be exactly
// one past the last entry, or FirstTurn for an empty store. On error the store
// is left unchanged.
func (s *Store) Append(snap Snapshot) error {
	want := s.NextTurn()
	if snap.Turn != want {
		return fmt.Errorf("%w: got turn %d, want %d", ErrInvalidSequence, snap.Turn, want)
	}
	s.entries = append(s.entries, snap)
	return nil
}

// All returns the full ordered history. The slice is a copy.
func (s *Store) All() []Snapshot {
	return slices.Clone(s.entries)
}

// IsEmpty reports whether no snapshot has been recorded.
func (s *Store) IsEmpty() bool { return len(s.entries) == 0 }

// Len returns the number of recorded snapshots.
func (s *Store) Len() int { return len(s.entries) }

// Last returns the most recent snapshot, if any.
func (s *Store) Last() (Snapshot, bool) {
	if len(s.entries) == 0 {
		return Snapshot{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// NextTurn returns the turn index the next appended snapshot must carry.
func (s *Store) NextTurn() int {
	last, ok := s.Last()
	if !ok {
		return FirstTurn
	}
	return last.Turn + 1
}
