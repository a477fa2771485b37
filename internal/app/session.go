package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"turnchart/internal/chart"
	"turnchart/internal/core"
	"turnchart/internal/game"
	"turnchart/internal/history"
)

// Session owns the country, its history and the chart view. Every inbound
// event is applied synchronously and in arrival order.
type Session struct {
	country *game.Country
	store   *history.Store
	view    *chart.View
	log     *slog.Logger

	notice string
}

// NewSession seeds a history, resumes the country from its last turn and
// builds the chart view over it.
func NewSession(cfg game.Config, layout chart.Layout, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seed := game.SeedHistory()
	store, err := history.NewStore(seed...)
	if err != nil {
		return nil, fmt.Errorf("seed history: %w", err)
	}
	last, _ := store.Last()
	return &Session{
		country: game.Resume(cfg, last),
		store:   store,
		view:    chart.NewView(layout, store.All()),
		log:     logger,
	}, nil
}

// AdvanceTurn produces the next snapshot, records it and refreshes the chart.
// Nothing changes if the store rejects the snapshot.
func (s *Session) AdvanceTurn() (history.Snapshot, error) {
	next := s.country.Peek()
	if err := s.store.Append(next); err != nil {
		s.log.Error("advance turn rejected", "turn", next.Turn, "error", err)
		return history.Snapshot{}, fmt.Errorf("advance turn: %w", err)
	}
	if err := s.country.Commit(next); err != nil {
		return history.Snapshot{}, fmt.Errorf("advance turn: %w", err)
	}
	s.view.OnHistoryChanged(s.store.All())
	s.notice = ""
	s.log.Debug("turn advanced", "turn", next.Turn, "entries", s.store.Len())
	return next, nil
}

// SelectMetric switches the charted metric. A rejected name keeps the current
// selection and is surfaced as a notice on the panel.
func (s *Session) SelectMetric(name string) error {
	if err := s.view.SetSelectedMetric(name); err != nil {
		s.notice = fmt.Sprintf("unknown metric %q", name)
		s.log.Warn("metric selection rejected", "name", name, "error", err)
		return err
	}
	s.notice = ""
	s.log.Debug("metric selected", "metric", s.view.Metric().String())
	return nil
}

// CycleMetric selects the metric dir steps away from the current one.
func (s *Session) CycleMetric(dir int) error {
	n := history.NumMetrics
	next := (int(s.view.Metric()) + dir%n + n) % n
	return s.SelectMetric(history.Metric(next).String())
}

// PointerMoved forwards a pointer position in display space to the chart and
// reports whether the visible output changed.
func (s *Session) PointerMoved(p chart.Point) bool {
	return s.view.QueryHover(p)
}

// PointerLeft hides any tooltip once the pointer leaves the chart surface.
func (s *Session) PointerLeft() bool {
	return s.view.ClearHover()
}

// Resize moves the chart to a new layout.
func (s *Session) Resize(l chart.Layout) {
	s.view.SetLayout(l)
}

// Frame returns the current render request.
func (s *Session) Frame() chart.Frame { return s.view.Render() }

// Revision is the chart view's change counter.
func (s *Session) Revision() uint64 { return s.view.Revision() }

// Metric returns the charted metric.
func (s *Session) Metric() history.Metric { return s.view.Metric() }

// History returns the recorded snapshots.
func (s *Session) History() []history.Snapshot { return s.store.All() }

// Country returns the simulated country.
func (s *Session) Country() *game.Country { return s.country }

// Notice returns the last user-facing message, if any.
func (s *Session) Notice() string { return s.notice }

// Panel describes the country info panel.
func (s *Session) Panel() core.PanelSnapshot {
	c := s.country
	resources := make([]core.Field, 0, 4)
	people := make([]core.Field, 0, 3)
	for _, m := range history.Metrics() {
		f := core.Field{Key: m.String(), Label: metricLabel(m), Value: humanize.Comma(c.Value(m))}
		if m.IsResource() {
			resources = append(resources, f)
			continue
		}
		people = append(people, f)
	}
	return core.PanelSnapshot{
		Title: c.Name(),
		Groups: []core.FieldGroup{
			{Name: "Turn", Fields: []core.Field{{Key: "turn", Label: "Turn", Value: humanize.Comma(int64(c.Turn()))}}},
			{Name: "Resources", Fields: resources},
			{Name: "Nation", Fields: people},
		},
	}
}

func metricLabel(m history.Metric) string {
	name := m.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
