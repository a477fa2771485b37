package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(turn int, gold int64) Snapshot {
	return Snapshot{Turn: turn}.With(MetricGold, gold)
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Append(snap(FirstTurn+i, int64(i*10))))
	}

	all := s.All()
	require.Len(t, all, 25)
	assert.False(t, s.IsEmpty())
	for i, e := range all {
		assert.Equal(t, FirstTurn+i, e.Turn)
		assert.Equal(t, int64(i*10), e.Value(MetricGold))
	}
}

func TestStoreAppendRejectsBadSequence(t *testing.T) {
	tests := []struct {
		name string
		turn int
	}{
		{name: "duplicate", turn: 2},
		{name: "older", turn: 1},
		{name: "gap", turn: 4},
		{name: "zero", turn: 0},
		{name: "negative", turn: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStore(snap(1, 100), snap(2, 120))
			require.NoError(t, err)
			before := s.All()

			err = s.Append(snap(tt.turn, 999))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSequence))
			assert.Equal(t, before, s.All())
		})
	}
}

func TestStoreEmptyRequiresFirstTurn(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	err = s.Append(snap(FirstTurn+1, 1))
	assert.ErrorIs(t, err, ErrInvalidSequence)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, FirstTurn, s.NextTurn())
}

func TestNewStoreRejectsInvalidSeed(t *testing.T) {
	_, err := NewStore(snap(1, 1), snap(3, 3))
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestStoreAllIsACopy(t *testing.T) {
	s, err := NewStore(snap(1, 100))
	require.NoError(t, err)

	all := s.All()
	all[0].Metrics[MetricGold] = -1

	assert.Equal(t, 1, s.Len())
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, int64(100), last.Value(MetricGold))
}
