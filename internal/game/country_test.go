package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnchart/internal/history"
)

func TestSeedHistoryIsValidSequence(t *testing.T) {
	seed := SeedHistory()
	store, err := history.NewStore(seed...)
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	all := store.All()
	assert.Equal(t, []int64{100, 120, 150}, []int64{
		all[0].Value(history.MetricGold),
		all[1].Value(history.MetricGold),
		all[2].Value(history.MetricGold),
	})
}

func TestPeekDoesNotMutate(t *testing.T) {
	seed := SeedHistory()
	c := Resume(DefaultConfig(), seed[len(seed)-1])

	next := c.Peek()
	assert.Equal(t, 4, next.Turn)
	assert.Equal(t, int64(170), next.Value(history.MetricGold))
	assert.Equal(t, int64(100), next.Value(history.MetricFood))
	assert.Equal(t, int64(75), next.Value(history.MetricWood))
	assert.Equal(t, int64(75), next.Value(history.MetricPopulation))
	assert.Equal(t, int64(22), next.Value(history.MetricSoldiers))
	assert.Equal(t, int64(30), next.Value(history.MetricScore))

	assert.Equal(t, 3, c.Turn())
	assert.Equal(t, int64(150), c.Value(history.MetricGold))
}

func TestCommit(t *testing.T) {
	seed := SeedHistory()
	c := Resume(DefaultConfig(), seed[len(seed)-1])

	next := c.Peek()
	require.NoError(t, c.Commit(next))
	assert.Equal(t, next, c.Snapshot())

	err := c.Commit(next)
	assert.ErrorIs(t, err, history.ErrInvalidSequence)
	assert.Equal(t, next, c.Snapshot())
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"name":  "Avalon",
		"wood":  "7",
		"gold":  "not-a-number",
		"mana":  "3",
		"score": "-1",
	})
	assert.Equal(t, "Avalon", cfg.Name)
	assert.Equal(t, int64(7), cfg.Growth[history.MetricWood])
	assert.Equal(t, int64(20), cfg.Growth[history.MetricGold])
	assert.Equal(t, int64(-1), cfg.Growth[history.MetricScore])

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}
