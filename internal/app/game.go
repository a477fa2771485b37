//go:build ebiten

package app

import (
	"image"
	"log/slog"

	"turnchart/internal/chart"
	"turnchart/internal/core"
	"turnchart/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *ui.ChartPainter
	hud     *ui.HUD
	clock   *core.TurnClock
	log     *slog.Logger

	exportPath string
	width      int
	height     int
	lastCursor image.Point
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		session:    session,
		painter:    ui.NewChartPainter(),
		hud:        ui.NewHUD(cfg.Height),
		clock:      core.NewTurnClock(cfg.Autoplay),
		log:        logger,
		exportPath: cfg.Export,
		width:      cfg.Width,
		height:     cfg.Height,
		lastCursor: image.Pt(-1, -1),
	}
}

// Update handles per-frame input and advances turns.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		dir := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			dir = -1
		}
		_ = g.session.CycleMetric(dir)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.export()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.toggleAutoplay()
	}

	switch action := g.hud.Update(g.chartWidth(), g.height); action.Kind {
	case ui.ActionQuit:
		return ebiten.Termination
	case ui.ActionNextTurn:
		g.advance()
	case ui.ActionExport:
		g.export()
	case ui.ActionSelectMetric:
		_ = g.session.SelectMetric(action.Metric.String())
	}

	if g.clock.Due() {
		g.advance()
	}

	g.trackPointer()
	return nil
}

// Draw renders the chart and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Frame())
	g.hud.Draw(screen, g.session.Panel(), g.session.Metric(), g.session.Notice())
}

// Layout resizes the chart with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(chart.NewLayout(ChartBounds(g.width, g.height)))
	}
	return g.width, g.height
}

func (g *Game) chartWidth() int {
	return ChartBounds(g.width, g.height).Max.X
}

func (g *Game) advance() {
	if _, err := g.session.AdvanceTurn(); err != nil {
		g.log.Error("advance turn", "error", err)
	}
}

func (g *Game) toggleAutoplay() {
	if g.clock.Enabled() {
		g.clock.SetInterval(0)
		g.log.Info("autoplay off")
		return
	}
	g.clock.SetInterval(defaultAutoplay)
	g.log.Info("autoplay on", "interval", defaultAutoplay)
}

func (g *Game) export() {
	path := g.exportPath
	if path == "" {
		path = DefaultExportPath(g.session)
	}
	if err := WriteChartPNG(path, g.session.Frame()); err != nil {
		g.log.Error("export chart", "path", path, "error", err)
		return
	}
	g.log.Info("chart exported", "path", path)
}

// trackPointer forwards pointer motion to the chart. Only changes in cursor
// position are forwarded, matching motion events of a windowing toolkit.
func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	cur := image.Pt(mx, my)
	if cur == g.lastCursor {
		return
	}
	g.lastCursor = cur
	if !cur.In(ChartBounds(g.width, g.height)) {
		g.session.PointerLeft()
		return
	}
	g.session.PointerMoved(chart.Point{X: float64(mx), Y: float64(my)})
}
