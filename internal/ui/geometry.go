package ui

import (
	"image"
	"math"

	"turnchart/internal/chart"
)

// TooltipBox sizes the tooltip for tip and places it below-right of its
// anchor, flipping to the other side of the anchor when it would leave bounds.
func TooltipBox(tip *chart.Tooltip, bounds image.Rectangle) image.Rectangle {
	if tip == nil {
		return image.Rectangle{}
	}
	longest := 0
	for _, line := range tip.Lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	w := longest*glyphWidth + 2*tooltipPadding
	h := len(tip.Lines)*lineHeight + 2*tooltipPadding

	ax := int(math.Round(tip.Anchor.X))
	ay := int(math.Round(tip.Anchor.Y))
	x := ax + tooltipOffset
	if x+w > bounds.Max.X {
		x = ax - tooltipOffset - w
	}
	y := ay + tooltipOffset
	if y+h > bounds.Max.Y {
		y = ay - tooltipOffset - h
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	return image.Rect(x, y, x+w, y+h)
}

// Segment is a line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Dashes splits a straight line into dash segments separated by gaps.
func Dashes(x1, y1, x2, y2, dash, gap float64) []Segment {
	length := math.Hypot(x2-x1, y2-y1)
	if length <= 1e-4 || dash <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}
	ux, uy := (x2-x1)/length, (y2-y1)/length
	var out []Segment
	for start := 0.0; start < length; start += dash + gap {
		end := math.Min(start+dash, length)
		out = append(out, Segment{
			X1: x1 + ux*start, Y1: y1 + uy*start,
			X2: x1 + ux*end, Y2: y1 + uy*end,
		})
	}
	return out
}

// centeredX returns the x at which text of n glyphs is centered on cx.
func centeredX(cx float64, n int) int {
	return int(math.Round(cx)) - n*glyphWidth/2
}

const (
	// basicfont.Face7x13 metrics.
	glyphWidth = 7
	lineHeight = 16

	tooltipOffset  = 15
	tooltipPadding = 6
)
