package history

// FirstTurn is the turn index the first appended Snapshot must carry.
const FirstTurn = 1

// Values holds one reading per known metric, indexed by Metric.
type Values [NumMetrics]int64

// Snapshot records one turn's metric values. It is a value type; copies
// handed out by the Store cannot alter stored entries.
type Snapshot struct {
	Turn    int
	Metrics Values
}

// Value projects the snapshot onto a single metric. Unknown metrics yield 0.
func (s Snapshot) Value(m Metric) int64 {
	if !m.Valid() {
		return 0
	}
	return s.Metrics[m]
}

// With returns a copy of s with metric m set to v.
func (s Snapshot) With(m Metric, v int64) Snapshot {
	if m.Valid() {
		s.Metrics[m] = v
	}
	return s
}
