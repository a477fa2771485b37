package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToExport is returned when exporting an empty frame.
var ErrNothingToExport = errors.New("chart has no data to export")

var (
	seriesColor = drawing.ColorFromHex("1f4fd8")
	gridColor   = drawing.ColorFromHex("d0d0d8")
)

// ExportPNG renders the frame's series as a standalone PNG image of the given
// size. Axis domains and ticks are taken from the frame so the export matches
// what is on screen.
func ExportPNG(w io.Writer, f Frame, width, height int) error {
	if f.Empty || len(f.Points) == 0 {
		return ErrNothingToExport
	}
	xs := make([]float64, len(f.Points))
	ys := make([]float64, len(f.Points))
	for i, p := range f.Points {
		xs[i] = float64(p.Turn)
		ys[i] = float64(p.Value)
	}
	xr, yr := exportDomain(f.XDomain), exportDomain(f.YDomain)

	ch := gochart.Chart{
		Title:      f.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  f.XLabel,
			Range: &gochart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks: exportTicks(f.XTicks, xr),
		},
		YAxis: gochart.YAxis{
			Name:           f.YLabel,
			Range:          &gochart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks:          exportTicks(f.YTicks, yr),
			GridMajorStyle: gochart.Style{StrokeColor: gridColor, StrokeWidth: 1, StrokeDashArray: []float64{4, 4}},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    f.YLabel,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: seriesColor,
					StrokeWidth: 2,
					DotColor:    seriesColor,
					DotWidth:    MarkerRadius,
				},
			},
		},
	}
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", f.Metric, err)
	}
	return nil
}

// exportDomain widens a zero-length domain. go-chart rejects an axis whose
// range has no extent.
func exportDomain(d Domain) Domain {
	if d.Max > d.Min {
		return d
	}
	pad := math.Max(1, math.Abs(d.Min)*1e-9)
	return Domain{Min: d.Min - pad, Max: d.Max + pad}
}

// exportTicks converts frame ticks for go-chart. When ticks are present
// go-chart derives the axis range from them alone, so unlabeled ticks are
// added at the domain bounds to keep the range as wide as the frame's.
func exportTicks(ticks []Tick, d Domain) []gochart.Tick {
	out := make([]gochart.Tick, 0, len(ticks)+2)
	if len(ticks) == 0 || ticks[0].Value > d.Min {
		out = append(out, gochart.Tick{Value: d.Min})
	}
	for _, t := range ticks {
		out = append(out, gochart.Tick{Value: t.Value, Label: t.Label})
	}
	if len(ticks) == 0 || ticks[len(ticks)-1].Value < d.Max {
		out = append(out, gochart.Tick{Value: d.Max})
	}
	return out
}
