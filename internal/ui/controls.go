// Package ui draws the chart and the country panel and maps pointer input to
// application actions.
package ui

import (
	"image"

	"turnchart/internal/history"
)

// ActionKind enumerates what a HUD interaction asks the application to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNextTurn
	ActionQuit
	ActionExport
	ActionSelectMetric
)

// Action is the result of a click on the panel.
type Action struct {
	Kind   ActionKind
	Metric history.Metric
}

// Button is a clickable rectangle in panel-local coordinates.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Action Action
}

// Controls lays out the panel buttons. Action buttons sit above a grid of
// metric selectors anchored to the bottom of the panel.
type Controls struct {
	width   int
	height  int
	buttons []Button
}

// NewControls lays out the buttons for a panel of the given size.
func NewControls(width, height int) *Controls {
	c := &Controls{}
	c.Resize(width, height)
	return c
}

// Resize recomputes button rectangles when the panel size changes.
func (c *Controls) Resize(width, height int) {
	if width == c.width && height == c.height && len(c.buttons) > 0 {
		return
	}
	c.width, c.height = width, height
	c.buttons = c.buttons[:0]

	metrics := history.Metrics()
	rows := (len(metrics) + metricColumns - 1) / metricColumns
	colWidth := (width - 2*panelPadding - (metricColumns-1)*buttonGap) / metricColumns
	gridTop := height - panelPadding - rows*buttonHeight - (rows-1)*buttonGap
	for i, m := range metrics {
		col, row := i%metricColumns, i/metricColumns
		x := panelPadding + col*(colWidth+buttonGap)
		y := gridTop + row*(buttonHeight+buttonGap)
		c.buttons = append(c.buttons, Button{
			Rect:   image.Rect(x, y, x+colWidth, y+buttonHeight),
			Label:  m.String(),
			Action: Action{Kind: ActionSelectMetric, Metric: m},
		})
	}

	actions := []Button{
		{Label: "Next turn", Action: Action{Kind: ActionNextTurn}},
		{Label: "Export", Action: Action{Kind: ActionExport}},
		{Label: "Quit", Action: Action{Kind: ActionQuit}},
	}
	actionWidth := (width - 2*panelPadding - (len(actions)-1)*buttonGap) / len(actions)
	actionTop := gridTop - sectionGap - buttonHeight
	for i := range actions {
		x := panelPadding + i*(actionWidth+buttonGap)
		actions[i].Rect = image.Rect(x, actionTop, x+actionWidth, actionTop+buttonHeight)
	}
	c.buttons = append(c.buttons, actions...)
}

// Buttons returns the laid out buttons.
func (c *Controls) Buttons() []Button { return c.buttons }

// MetricHeaderY returns the baseline of the label above the metric grid.
func (c *Controls) MetricHeaderY() int {
	for _, b := range c.buttons {
		if b.Action.Kind == ActionSelectMetric {
			return b.Rect.Min.Y - 6
		}
	}
	return c.height
}

// InfoBottom returns the lowest y the info text may use without overlapping
// the buttons.
func (c *Controls) InfoBottom() int {
	bottom := c.height
	for _, b := range c.buttons {
		if b.Rect.Min.Y < bottom {
			bottom = b.Rect.Min.Y
		}
	}
	return bottom - buttonGap
}

// HitTest returns the action for a click at panel-local (x, y).
func (c *Controls) HitTest(x, y int) Action {
	for _, b := range c.buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return Action{}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	// PanelWidth is the width of the info panel to the right of the chart.
	PanelWidth = 240

	panelPadding  = 12
	buttonHeight  = 24
	buttonGap     = 6
	sectionGap    = 24
	metricColumns = 2
)
