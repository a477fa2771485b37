package history

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric is returned when a metric name is outside the known set.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric enumerates the per-turn quantities recorded in a Snapshot.
type Metric uint8

const (
	MetricGold Metric = iota
	MetricFood
	MetricWood
	MetricIron
	MetricPopulation
	MetricSoldiers
	MetricScore

	// NumMetrics is the size of the known metric set.
	NumMetrics int = iota
)

// DefaultMetric is the metric a fresh chart selection starts with.
const DefaultMetric = MetricGold

var metricNames = [NumMetrics]string{
	MetricGold:       "gold",
	MetricFood:       "food",
	MetricWood:       "wood",
	MetricIron:       "iron",
	MetricPopulation: "population",
	MetricSoldiers:   "soldiers",
	MetricScore:      "score",
}

// Metrics lists every known metric in display order.
func Metrics() []Metric {
	out := make([]Metric, NumMetrics)
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// Valid reports whether m belongs to the known metric set.
func (m Metric) Valid() bool { return int(m) < NumMetrics }

// String returns the canonical lowercase name.
func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("metric(%d)", uint8(m))
	}
	return metricNames[m]
}

// IsResource reports whether m is one of the four stockpiled resources.
func (m Metric) IsResource() bool { return m <= MetricIron }

// ParseMetric resolves a metric by name. Matching ignores case and
// surrounding whitespace.
func ParseMetric(name string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricNames {
		if n == key {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}
