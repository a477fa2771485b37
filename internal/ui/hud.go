//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"turnchart/internal/core"
	"turnchart/internal/history"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the country panel to the right of the chart and turns clicks on
// its buttons into actions.
type HUD struct {
	controls *Controls
	panel    *ebiten.Image
	brush    brush
	offsetX  int
}

// NewHUD constructs a HUD for a panel of the given height.
func NewHUD(height int) *HUD {
	return &HUD{controls: NewControls(PanelWidth, height), brush: newBrush()}
}

// Update records the panel position and reports the action clicked this
// frame, if any.
func (h *HUD) Update(offsetX, height int) Action {
	if h == nil {
		return Action{}
	}
	h.offsetX = offsetX
	h.controls.Resize(PanelWidth, height)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return Action{}
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return Action{}
	}
	return h.controls.HitTest(mx-h.offsetX, my)
}

// Draw paints the panel contents anchored at the last Update offset.
func (h *HUD) Draw(screen *ebiten.Image, snap core.PanelSnapshot, selected history.Metric, notice string) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(PanelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawInfo(snap, notice)
	h.drawButtons(selected)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawInfo(snap core.PanelSnapshot, notice string) {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, snap.Title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	limit := h.controls.InfoBottom()
	for _, group := range snap.Groups {
		y += groupSpacing
		if y > limit {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		for _, field := range group.Fields {
			y += lineHeight
			if y > limit {
				return
			}
			text.Draw(h.panel, field.Label, face, panelPadding+fieldIndent, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, field.Value)
			text.Draw(h.panel, field.Value, face, PanelWidth-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}
	if notice != "" && y+groupSpacing <= limit {
		text.Draw(h.panel, notice, face, panelPadding, y+groupSpacing, color.RGBA{R: 240, G: 120, B: 100, A: 255})
	}
}

func (h *HUD) drawButtons(selected history.Metric) {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Chart metric", face, panelPadding, h.controls.MetricHeaderY(), color.RGBA{R: 160, G: 160, B: 170, A: 255})
	for _, b := range h.controls.Buttons() {
		active := b.Action.Kind == ActionSelectMetric && b.Action.Metric == selected
		h.drawButton(b.Rect, b.Label, active)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, active bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if active {
		bg = color.RGBA{R: 80, G: 140, B: 240, A: 255}
		fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	h.brush.fillRect(h.panel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	headerBaseline = 18
	groupSpacing   = 24
	fieldIndent    = 8
)
