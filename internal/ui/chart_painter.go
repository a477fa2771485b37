//go:build ebiten

package ui

import (
	"image/color"

	"turnchart/internal/chart"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ChartPainter draws chart frames onto an ebiten image.
type ChartPainter struct {
	brush brush
}

// NewChartPainter constructs a painter.
func NewChartPainter() *ChartPainter {
	return &ChartPainter{brush: newBrush()}
}

// Draw paints f. Nothing outside f.Bounds is touched.
func (p *ChartPainter) Draw(screen *ebiten.Image, f chart.Frame) {
	face := basicfont.Face7x13
	p.brush.fillRect(screen, f.Bounds, chartBackground)

	if f.Empty {
		c := chart.NewLayout(f.Bounds).Center()
		text.Draw(screen, f.Placeholder, face, centeredX(c.X, len(f.Placeholder)), int(c.Y), placeholderColor)
		return
	}

	plot := f.Plot
	p.brush.fillRect(screen, plot, plotBackground)

	for _, t := range f.YTicks {
		p.brush.dashed(screen, float64(plot.Min.X), t.Pos, float64(plot.Max.X), t.Pos, gridColor)
		x := plot.Min.X - 6 - len(t.Label)*glyphWidth
		text.Draw(screen, t.Label, face, x, int(t.Pos)+4, labelColor)
	}
	for _, t := range f.XTicks {
		p.brush.dashed(screen, t.Pos, float64(plot.Min.Y), t.Pos, float64(plot.Max.Y), gridColor)
		text.Draw(screen, t.Label, face, centeredX(t.Pos, len(t.Label)), plot.Max.Y+16, labelColor)
	}
	p.brush.strokeRect(screen, plot, axisColor)

	midX := float64(plot.Min.X+plot.Max.X) / 2
	text.Draw(screen, f.Title, face, centeredX(midX, len(f.Title)), f.Bounds.Min.Y+20, titleColor)
	text.Draw(screen, f.XLabel, face, centeredX(midX, len(f.XLabel)), plot.Max.Y+32, labelColor)
	text.Draw(screen, f.YLabel, face, f.Bounds.Min.X+6, plot.Min.Y-8, labelColor)

	for i := 1; i < len(f.Points); i++ {
		a, b := f.Points[i-1].Pos, f.Points[i].Pos
		p.brush.line(screen, a.X, a.Y, b.X, b.Y, seriesWidth, seriesColor)
	}
	for _, pt := range f.Points {
		p.brush.point(screen, pt.Pos.X, pt.Pos.Y, 2*chart.MarkerRadius, seriesColor)
	}

	if tip := f.Tooltip; tip != nil {
		p.brush.point(screen, tip.Anchor.X, tip.Anchor.Y, 2*chart.MarkerRadius+4, highlightColor)
		p.brush.point(screen, tip.Anchor.X, tip.Anchor.Y, 2*chart.MarkerRadius, seriesColor)
		box := TooltipBox(tip, f.Bounds)
		p.brush.line(screen, tip.Anchor.X, tip.Anchor.Y, float64(box.Min.X), float64(box.Min.Y), 1, tooltipBorder)
		p.brush.fillRect(screen, box, tooltipBackground)
		p.brush.strokeRect(screen, box, tooltipBorder)
		for i, line := range tip.Lines {
			y := box.Min.Y + tooltipPadding + (i+1)*lineHeight - 4
			text.Draw(screen, line, face, box.Min.X+tooltipPadding, y, tooltipText)
		}
	}
}

const seriesWidth = 2

var (
	chartBackground   = color.RGBA{R: 24, G: 24, B: 30, A: 255}
	plotBackground    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	gridColor         = color.RGBA{R: 70, G: 70, B: 84, A: 160}
	axisColor         = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	labelColor        = color.RGBA{R: 190, G: 190, B: 200, A: 255}
	titleColor        = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	placeholderColor  = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	seriesColor       = color.RGBA{R: 80, G: 140, B: 240, A: 255}
	highlightColor    = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	tooltipBackground = color.RGBA{R: 250, G: 230, B: 120, A: 220}
	tooltipBorder     = color.RGBA{R: 120, G: 100, B: 40, A: 255}
	tooltipText       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)
