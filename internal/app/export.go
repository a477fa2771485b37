package app

import (
	"fmt"
	"image"
	"os"
	"time"

	"turnchart/internal/chart"
	"turnchart/internal/ui"
)

// ChartBounds returns the chart area of a window, leaving room for the panel.
func ChartBounds(width, height int) image.Rectangle {
	w := width - ui.PanelWidth
	if w < 0 {
		w = 0
	}
	return image.Rect(0, 0, w, height)
}

// DefaultExportPath names an export file after the metric and latest turn.
func DefaultExportPath(s *Session) string {
	return fmt.Sprintf("turnchart-%s-turn%d.png", s.Metric(), s.Country().Turn())
}

// WriteChartPNG renders f to a PNG file at path, sized like the on-screen
// chart.
func WriteChartPNG(path string, f chart.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w, h := f.Bounds.Dx(), f.Bounds.Dy()
	if w < exportMinWidth {
		w = exportMinWidth
	}
	if h < exportMinHeight {
		h = exportMinHeight
	}
	if err := chart.ExportPNG(file, f, w, h); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}

const (
	defaultAutoplay = 2 * time.Second

	exportMinWidth  = 320
	exportMinHeight = 200
)
