package game

import (
	"strconv"

	"turnchart/internal/history"
)

// Config controls the mock country and its per-turn growth schedule.
type Config struct {
	Name string

	// Growth is added to each metric every time a turn advances.
	Growth history.Values
}

// DefaultConfig returns the standard schedule.
func DefaultConfig() Config {
	var growth history.Values
	growth[history.MetricGold] = 20
	growth[history.MetricFood] = 10
	growth[history.MetricPopulation] = 5
	growth[history.MetricSoldiers] = 2
	growth[history.MetricScore] = 10
	return Config{Name: "Sample Country", Growth: growth}
}

// FromMap populates the config from metric=delta pairs. Unknown keys and
// unparsable values are ignored; "name" sets the country name.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["name"]; ok && v != "" {
		c.Name = v
	}
	for _, m := range history.Metrics() {
		v, ok := cfg[m.String()]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Growth[m] = parsed
		}
	}
	return c
}
