package chart

import (
	"image"
	"math"
	"strconv"
)

// Layout places the chart inside the host surface. All coordinates are in
// display pixels.
type Layout struct {
	Bounds image.Rectangle
}

// NewLayout returns a layout covering bounds.
func NewLayout(bounds image.Rectangle) Layout {
	return Layout{Bounds: bounds.Canon()}
}

// Plot returns the inner rectangle that data points are mapped into. Axis
// labels and the title live in the margins around it.
func (l Layout) Plot() image.Rectangle {
	b := l.Bounds
	x0, y0 := b.Min.X+marginLeft, b.Min.Y+marginTop
	x1, y1 := b.Max.X-marginRight, b.Max.Y-marginBottom
	if x1-x0 < minPlotSize || y1-y0 < minPlotSize {
		return b
	}
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// Center returns the midpoint of the whole chart area.
func (l Layout) Center() Point {
	b := l.Bounds
	return Point{X: float64(b.Min.X+b.Max.X) / 2, Y: float64(b.Min.Y+b.Max.Y) / 2}
}

// Point is a position in display space.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Domain is a closed numeric interval mapped onto one plot axis.
type Domain struct {
	Min, Max float64
}

// Span returns the interval length, never zero.
func (d Domain) Span() float64 {
	if s := d.Max - d.Min; s > 0 {
		return s
	}
	return 1
}

// turnDomain covers the turn indices, widening a single turn so it sits in
// the middle of the plot.
func turnDomain(minTurn, maxTurn int) Domain {
	if maxTurn <= minTurn {
		return Domain{Min: float64(minTurn - 1), Max: float64(minTurn + 1)}
	}
	return Domain{Min: float64(minTurn), Max: float64(maxTurn)}
}

// turnTicks returns integer ticks across the turn domain, at most maxXTicks.
func turnTicks(minTurn, maxTurn int) []float64 {
	span := maxTurn - minTurn
	step := 1
	if span+1 > maxXTicks {
		step = int(math.Ceil(float64(span) / float64(maxXTicks-1)))
	}
	var out []float64
	for t := minTurn; t <= maxTurn; t += step {
		out = append(out, float64(t))
	}
	if last := float64(maxTurn); out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}

// valueTicks generates up to n ticks spanning [min,max] on a 1, 2, 2.5, 5
// pattern. The first and last ticks bracket the data.
func valueTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return []float64{min, max}
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	if !(span > 0) || math.IsInf(span, 0) {
		// min+1 rounds back to min for very large values.
		return []float64{min, max}
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if diff := math.Abs(count - float64(n)); diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	// A step below the float64 spacing at start would never advance v.
	if !(bestStep > 0) || start+bestStep == start || end+bestStep == end {
		return []float64{min, max}
	}
	limit := 4 * n
	var out []float64
	for v := start; v <= end+bestStep*0.5 && len(out) < limit; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 || out[0] > min || out[len(out)-1] < max {
		out = []float64{min, max}
	}
	return out
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// formatTick renders a tick value compactly.
func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 32
	marginBottom = 40
	minPlotSize  = 16

	maxXTicks = 10
	maxYTicks = 6
)
