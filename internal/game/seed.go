package game

import "turnchart/internal/history"

// SeedHistory returns the three recorded turns a new session starts with.
func SeedHistory() []history.Snapshot {
	rows := [][history.NumMetrics]int64{
		// gold, food, wood, iron, population, soldiers, score
		{100, 80, 60, 40, 50, 10, 0},
		{120, 85, 70, 55, 60, 15, 10},
		{150, 90, 75, 65, 70, 20, 20},
	}
	out := make([]history.Snapshot, len(rows))
	for i, row := range rows {
		out[i] = history.Snapshot{Turn: history.FirstTurn + i, Metrics: history.Values(row)}
	}
	return out
}
