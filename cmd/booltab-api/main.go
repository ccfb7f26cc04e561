package main

import (
	"log/slog"
	"os"

	"github.com/booltab/booltab/internal/expr"
	"github.com/booltab/booltab/internal/router"
	"github.com/booltab/booltab/internal/server"
	pkgserver "github.com/booltab/booltab/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The probe runs the whole pipeline on a tautology, so /health fails if
	// any stage breaks.
	healthChecker := pkgserver.NewProbeHealthChecker(func() error {
		_, err := expr.EvaluateConst("(1&0)=(0&1)")
		return err
	})

	s := server.New(cfg, healthChecker)

	router.NewExprRouter(s.Echo, cfg.MaxIdentifiers).Bind()

	slog.Info("Starting booltab API", "port", cfg.Port, "max_identifiers", cfg.MaxIdentifiers)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
