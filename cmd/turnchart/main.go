//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"turnchart/internal/app"
	"turnchart/internal/chart"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.Logger(os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	session, err := app.NewSession(cfg.GameConfig(), chart.NewLayout(app.ChartBounds(cfg.Width, cfg.Height)), logger)
	if err != nil {
		logger.Error("start session", "error", err)
		os.Exit(1)
	}
	if err := session.SelectMetric(cfg.Metric); err != nil {
		logger.Error("invalid -metric", "error", err)
		os.Exit(2)
	}

	game := app.New(session, cfg, logger)

	ebiten.SetWindowTitle("turnchart — " + session.Country().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "error", err)
		os.Exit(1)
	}
}
