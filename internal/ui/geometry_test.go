package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"turnchart/internal/chart"
)

func TestTooltipBoxPlacement(t *testing.T) {
	bounds := image.Rect(0, 0, 400, 300)
	tip := &chart.Tooltip{Lines: []string{"turn: 2", "value: 120"}}

	tests := []struct {
		name      string
		anchor    chart.Point
		rightOf   bool
		belowOf   bool
		insideAll bool
	}{
		{name: "top left", anchor: chart.Point{X: 50, Y: 50}, rightOf: true, belowOf: true},
		{name: "right edge", anchor: chart.Point{X: 390, Y: 50}, rightOf: false, belowOf: true},
		{name: "bottom edge", anchor: chart.Point{X: 50, Y: 290}, rightOf: true, belowOf: false},
		{name: "corner", anchor: chart.Point{X: 395, Y: 295}, rightOf: false, belowOf: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip.Anchor = tt.anchor
			box := TooltipBox(tip, bounds)
			assert.True(t, box.In(bounds), "box %v outside %v", box, bounds)
			assert.Equal(t, tt.rightOf, float64(box.Min.X) > tt.anchor.X)
			assert.Equal(t, tt.belowOf, float64(box.Min.Y) > tt.anchor.Y)
			assert.Equal(t, len("value: 120")*glyphWidth+2*tooltipPadding, box.Dx())
			assert.Equal(t, 2*lineHeight+2*tooltipPadding, box.Dy())
		})
	}

	assert.Equal(t, image.Rectangle{}, TooltipBox(nil, bounds))
}

func TestDashes(t *testing.T) {
	segs := Dashes(0, 0, 20, 0, 4, 4)
	assert.Len(t, segs, 3)
	assert.Equal(t, Segment{X1: 0, Y1: 0, X2: 4, Y2: 0}, segs[0])
	assert.Equal(t, Segment{X1: 16, Y1: 0, X2: 20, Y2: 0}, segs[2])

	assert.Nil(t, Dashes(5, 5, 5, 5, 4, 4))
	assert.Nil(t, Dashes(0, 0, 10, 0, 0, 4))
}

func TestControlsHitTest(t *testing.T) {
	c := NewControls(PanelWidth, 540)

	var seen int
	for _, b := range c.Buttons() {
		assert.True(t, b.Rect.In(image.Rect(0, 0, PanelWidth, 540)), b.Label)
		center := b.Rect.Min.Add(b.Rect.Size().Div(2))
		assert.Equal(t, b.Action, c.HitTest(center.X, center.Y), b.Label)
		if b.Action.Kind == ActionSelectMetric {
			seen++
		}
	}
	assert.Equal(t, 7, seen)
	assert.Equal(t, Action{}, c.HitTest(-1, -1))
	assert.Equal(t, Action{}, c.HitTest(PanelWidth/2, 5))
	assert.Less(t, c.InfoBottom(), c.MetricHeaderY())
}

func TestControlsButtonsDoNotOverlap(t *testing.T) {
	c := NewControls(PanelWidth, 420)
	buttons := c.Buttons()
	for i := range buttons {
		for j := i + 1; j < len(buttons); j++ {
			assert.False(t, buttons[i].Rect.Overlaps(buttons[j].Rect), "%s overlaps %s", buttons[i].Label, buttons[j].Label)
		}
	}
}
