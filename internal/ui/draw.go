//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// brush draws primitives by scaling a single white pixel.
type brush struct {
	pixel *ebiten.Image
}

func newBrush() brush {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return brush{pixel: px}
}

func (b brush) fillRect(dst *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	tint(op, col)
	dst.DrawImage(b.pixel, op)
}

func (b brush) strokeRect(dst *ebiten.Image, r image.Rectangle, col color.RGBA) {
	x0, y0, x1, y1 := float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)
	b.line(dst, x0, y0, x1, y0, 1, col)
	b.line(dst, x1, y0, x1, y1, 1, col)
	b.line(dst, x1, y1, x0, y1, 1, col)
	b.line(dst, x0, y1, x0, y0, 1, col)
}

func (b brush) point(dst *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	tint(op, col)
	dst.DrawImage(b.pixel, op)
}

func (b brush) line(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	tint(op, col)
	dst.DrawImage(b.pixel, op)
}

func (b brush) dashed(dst *ebiten.Image, x1, y1, x2, y2 float64, col color.RGBA) {
	for _, s := range Dashes(x1, y1, x2, y2, dashLength, dashGap) {
		b.line(dst, s.X1, s.Y1, s.X2, s.Y2, 1, col)
	}
}

func tint(op *ebiten.DrawImageOptions, col color.RGBA) {
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
}

const (
	dashLength = 4
	dashGap    = 4
)
