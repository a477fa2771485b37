package chart

import (
	"image"

	"turnchart/internal/history"
)

// Frame is a render request: everything the host surface needs to draw the
// chart, already projected into display space.
type Frame struct {
	Metric history.Metric
	Bounds image.Rectangle
	Plot   image.Rectangle

	// Empty is set when there is no history; only Placeholder is drawn.
	Empty       bool
	Placeholder string

	Title  string
	XLabel string
	YLabel string

	XDomain Domain
	YDomain Domain
	XTicks  []Tick
	YTicks  []Tick

	// Points are in turn order and are drawn first to last, so later points
	// sit on top.
	Points []PlotPoint

	Tooltip *Tooltip
}

// PlotPoint is one data point and its marker position.
type PlotPoint struct {
	Turn  int
	Value int64
	Pos   Point
}

// Tick is one axis graduation.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Tooltip describes the hover label for one point.
type Tooltip struct {
	Index  int
	Turn   int
	Value  int64
	Anchor Point
	Lines  []string
}

// XValues returns the turn index of every point.
func (f Frame) XValues() []int {
	out := make([]int, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Turn
	}
	return out
}

// YValues returns the projected metric value of every point.
func (f Frame) YValues() []int64 {
	out := make([]int64, len(f.Points))
	for i, p := range f.Points {
		out[i] = p.Value
	}
	return out
}
