package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"chosenoffset.com/aggroarea/internal/config"
	"chosenoffset.com/aggroarea/internal/core/aggro"
	"chosenoffset.com/aggroarea/internal/logging"
	"chosenoffset.com/aggroarea/internal/metrics"
	ebitenrender "chosenoffset.com/aggroarea/internal/render/ebiten"
	"chosenoffset.com/aggroarea/internal/viewer"
	"chosenoffset.com/aggroarea/internal/world/scene"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (yaml or json)")
	scenePath := pflag.StringP("scene", "s", "", "scene file, overrides viewer.scene")
	pflag.Parse()

	store := config.New()
	if *configPath != "" {
		var err error
		store, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg := store.Config()

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, store, *configPath, *scenePath, logger); err != nil {
		logger.Error("aggroarea stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, store *config.Store, configPath, scenePath string, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, reg, logger); err != nil {
				logger.Error("metrics endpoint failed", zap.Error(err))
			}
		}()
	} else {
		logger.Info("metrics endpoint is disabled")
	}

	if scenePath == "" {
		scenePath = cfg.Viewer.Scene
	}
	sc, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	logger.Info("loaded scene",
		zap.String("name", sc.Name),
		zap.String("path", scenePath),
		zap.Int("base_x", sc.Chunk().BaseX),
		zap.Int("base_y", sc.Chunk().BaseY))

	mgr := aggro.NewManager(cfg.Overlay, logger.Named("aggro"), aggro.WithMetrics(recorder))

	if configPath != "" {
		store.Watch(func(key string, o config.Overlay) {
			logger.Info("config changed", zap.String("key", key))
			mgr.Handle(aggro.ConfigChangedEvent(key, o))
		}, func(err error) {
			logger.Warn("ignoring config change", zap.Error(err))
		})
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	v := viewer.New(cfg.Viewer, renderer, inputMgr, sc, mgr, store, logger.Named("viewer"))
	v.Stats = recorder
	v.Login()

	engine.SetWindowSize(cfg.Viewer.Width, cfg.Viewer.Height)
	engine.SetWindowTitle("Aggro area - " + sc.Name)
	engine.SetWindowResizable(true)

	logger.Info("starting viewer")
	if err := engine.RunGame(v); err != nil && !errors.Is(err, viewer.ErrQuit) {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
