package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kttyan/genshin-build-viewer/internal/app"
	"github.com/kttyan/genshin-build-viewer/internal/config"
	"github.com/kttyan/genshin-build-viewer/internal/util"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Genshin build viewer starting...",
		zap.String("log_level", cfg.Logging.Level),
		zap.Strings("relay_routes", cfg.Fetch.RelayRoutes),
		zap.Bool("redis", cfg.Redis.Enabled()),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	console, err := container.NewConsole(os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("Failed to initialize console", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		// first positional argument overrides the configured default
		uid := cfg.Viewer.DefaultUID
		if len(os.Args) > 1 && strings.TrimSpace(os.Args[1]) != "" {
			uid = strings.TrimSpace(os.Args[1])
		}
		if uid != "" {
			if err := console.Search(ctx, uid); err != nil {
				errCh <- err
				return
			}
		}
		errCh <- console.Run(ctx)
	}()

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		if err != nil && ctx.Err() == nil {
			logger.Error("Console error", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
}
