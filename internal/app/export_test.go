package app

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnchart/internal/chart"
	"turnchart/internal/ui"
)

func TestChartBounds(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 960-ui.PanelWidth, 540), ChartBounds(960, 540))
	assert.Equal(t, image.Rect(0, 0, 0, 100), ChartBounds(100, 100))
}

func TestWriteChartPNG(t *testing.T) {
	s, _ := newTestSession(t)
	path := filepath.Join(t.TempDir(), DefaultExportPath(s))
	assert.Equal(t, "turnchart-gold-turn3.png", filepath.Base(path))

	require.NoError(t, WriteChartPNG(path, s.Frame()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
}

func TestWriteChartPNGEmptyLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	v := chart.NewView(chart.NewLayout(image.Rect(0, 0, 640, 400)), nil)

	err := WriteChartPNG(path, v.Render())
	assert.ErrorIs(t, err, chart.ErrNothingToExport)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
