//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"turnchart/internal/app"
	"turnchart/internal/chart"
	"turnchart/internal/report"
)

// The default build has no window. It plays -turns turns, prints the history
// and optionally exports the chart.
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
	for i := 0; i < cfg.Turns; i++ {
		if _, err := session.AdvanceTurn(); err != nil {
			logger.Error("advance turn", "error", err)
			os.Exit(1)
		}
	}

	if err := report.WriteHistory(os.Stdout, session.Country().Name(), session.History(), session.Metric()); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
	if cfg.Export != "" {
		if err := app.WriteChartPNG(cfg.Export, session.Frame()); err != nil {
			logger.Error("export chart", "path", cfg.Export, "error", err)
			os.Exit(1)
		}
		logger.Info("chart exported", "path", cfg.Export)
	}

	fmt.Fprintln(os.Stderr, "Run with `go run -tags ebiten ./cmd/turnchart` for the interactive window.")
}
