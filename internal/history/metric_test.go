package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics() {
		got, err := ParseMetric(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMetric("  Population ")
	require.NoError(t, err)
	assert.Equal(t, MetricPopulation, got)
}

func TestParseMetricUnknown(t *testing.T) {
	for _, name := range []string{"", "mana", "golds", "score!"} {
		_, err := ParseMetric(name)
		assert.ErrorIs(t, err, ErrUnknownMetric, "name %q", name)
	}
}

func TestMetricSet(t *testing.T) {
	assert.Len(t, Metrics(), 7)
	assert.False(t, Metric(NumMetrics).Valid())
	assert.Equal(t, "metric(7)", Metric(NumMetrics).String())
	assert.True(t, MetricIron.IsResource())
	assert.False(t, MetricPopulation.IsResource())
	assert.Equal(t, int64(0), Snapshot{}.Value(Metric(42)))
}
