// Package chart renders one metric of the turn history as a line chart and
// answers pointer hover queries against it.
package chart

import (
	"fmt"
	"image"
	"slices"
	"strconv"

	"turnchart/internal/history"
)

// HitRadius is the pointer tolerance around each marker, in pixels.
const HitRadius = 6.0

// MarkerRadius is the drawn marker size, in pixels.
const MarkerRadius = 4.0

// Placeholder is shown instead of axes when there is no history.
const Placeholder = "No history to display yet."

// Selection is the view-local, ephemeral chart state.
type Selection struct {
	Metric  history.Metric
	Hovered int
	// HasHover reports whether Hovered refers to a point.
	HasHover bool
}

// View is the interactive chart. It caches the projected series for the
// selected metric and is mutated only through its methods, all of which run
// on the caller's goroutine.
type View struct {
	layout  Layout
	history []history.Snapshot
	sel     Selection

	points  []PlotPoint
	xDomain Domain
	yDomain Domain
	xTicks  []Tick
	yTicks  []Tick

	revision uint64
}

// NewView returns a view over the provided history with the default metric
// selected.
func NewView(layout Layout, h []history.Snapshot) *View {
	v := &View{layout: layout, sel: Selection{Metric: history.DefaultMetric}}
	v.history = slices.Clone(h)
	v.project()
	return v
}

// Selection returns the current selection state.
func (v *View) Selection() Selection { return v.sel }

// Metric returns the selected metric.
func (v *View) Metric() history.Metric { return v.sel.Metric }

// Hovered returns the index of the hovered point, if any.
func (v *View) Hovered() (int, bool) { return v.sel.Hovered, v.sel.HasHover }

// Revision increases every time the visible output changes. Hosts can compare
// it against the last drawn value to skip redundant redraws.
func (v *View) Revision() uint64 { return v.revision }

// Empty reports whether the view is in the empty state.
func (v *View) Empty() bool { return len(v.history) == 0 }

// SetSelectedMetric switches the charted metric. Unknown names are rejected
// with history.ErrUnknownMetric and the previous selection is kept.
func (v *View) SetSelectedMetric(name string) error {
	m, err := history.ParseMetric(name)
	if err != nil {
		return fmt.Errorf("select metric: %w", err)
	}
	v.sel.Metric = m
	v.clearHover()
	v.project()
	v.revision++
	return nil
}

// OnHistoryChanged replaces the cached series with a projection of h and
// hides any active tooltip.
func (v *View) OnHistoryChanged(h []history.Snapshot) {
	v.history = slices.Clone(h)
	v.clearHover()
	v.project()
	v.revision++
}

// SetLayout moves or resizes the chart area.
func (v *View) SetLayout(l Layout) {
	if l == v.layout {
		return
	}
	v.layout = l
	v.clearHover()
	v.project()
	v.revision++
}

// QueryHover updates the hover target for a pointer at p and reports whether
// the visible output changed. The target is the last drawn marker within
// HitRadius of p, or none.
func (v *View) QueryHover(p Point) bool {
	idx, ok := hitTest(v.points, p, HitRadius)
	if ok == v.sel.HasHover && (!ok || idx == v.sel.Hovered) {
		return false
	}
	v.sel.Hovered, v.sel.HasHover = idx, ok
	v.revision++
	return true
}

// ClearHover hides the tooltip, e.g. when the pointer leaves the surface.
func (v *View) ClearHover() bool {
	if !v.sel.HasHover {
		return false
	}
	v.clearHover()
	v.revision++
	return true
}

// Render produces the frame for the current history, metric and hover state.
func (v *View) Render() Frame {
	f := Frame{
		Metric: v.sel.Metric,
		Bounds: v.layout.Bounds,
		Plot:   v.layout.Plot(),
	}
	if len(v.points) == 0 {
		f.Empty = true
		f.Placeholder = Placeholder
		return f
	}
	name := v.sel.Metric.String()
	f.Title = name + " over time"
	f.XLabel = "turn"
	f.YLabel = name
	f.XDomain = v.xDomain
	f.YDomain = v.yDomain
	f.XTicks = slices.Clone(v.xTicks)
	f.YTicks = slices.Clone(v.yTicks)
	f.Points = slices.Clone(v.points)
	if v.sel.HasHover && v.sel.Hovered < len(v.points) {
		pt := v.points[v.sel.Hovered]
		f.Tooltip = &Tooltip{
			Index:  v.sel.Hovered,
			Turn:   pt.Turn,
			Value:  pt.Value,
			Anchor: pt.Pos,
			Lines: []string{
				"turn: " + strconv.Itoa(pt.Turn),
				"value: " + strconv.FormatInt(pt.Value, 10),
			},
		}
	}
	return f
}

func (v *View) clearHover() {
	v.sel.Hovered = 0
	v.sel.HasHover = false
}

// project recomputes the cached series, domains and ticks.
func (v *View) project() {
	v.points = v.points[:0]
	v.xTicks = nil
	v.yTicks = nil
	if len(v.history) == 0 {
		return
	}

	m := v.sel.Metric
	minV, maxV := v.history[0].Value(m), v.history[0].Value(m)
	for _, s := range v.history[1:] {
		val := s.Value(m)
		if val < minV {
			minV = val
		}
		if val > maxV {
			maxV = val
		}
	}
	firstTurn := v.history[0].Turn
	lastTurn := v.history[len(v.history)-1].Turn

	yt := valueTicks(float64(minV), float64(maxV), maxYTicks)
	v.yDomain = Domain{Min: yt[0], Max: yt[len(yt)-1]}
	v.xDomain = turnDomain(firstTurn, lastTurn)

	plot := v.layout.Plot()
	for _, t := range turnTicks(firstTurn, lastTurn) {
		v.xTicks = append(v.xTicks, Tick{Value: t, Pos: mapX(plot, v.xDomain, t), Label: formatTick(t)})
	}
	for _, val := range yt {
		v.yTicks = append(v.yTicks, Tick{Value: val, Pos: mapY(plot, v.yDomain, val), Label: formatTick(val)})
	}
	for _, s := range v.history {
		val := s.Value(m)
		v.points = append(v.points, PlotPoint{
			Turn:  s.Turn,
			Value: val,
			Pos:   Point{X: mapX(plot, v.xDomain, float64(s.Turn)), Y: mapY(plot, v.yDomain, float64(val))},
		})
	}
}

// hitTest returns the index of the last point whose marker lies within radius
// of p.
func hitTest(points []PlotPoint, p Point, radius float64) (int, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Pos.Dist(p) <= radius {
			return i, true
		}
	}
	return 0, false
}

func mapX(plot image.Rectangle, d Domain, x float64) float64 {
	return float64(plot.Min.X) + (x-d.Min)/d.Span()*float64(plot.Dx())
}

func mapY(plot image.Rectangle, d Domain, y float64) float64 {
	return float64(plot.Max.Y) - (y-d.Min)/d.Span()*float64(plot.Dy())
}
