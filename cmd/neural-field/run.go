package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/neural-field/audio"
	"github.com/lixenwraith/neural-field/config"
	"github.com/lixenwraith/neural-field/core"
	"github.com/lixenwraith/neural-field/engine"
)

func runCmd() *cobra.Command {
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the field in the terminal (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(cmd, !noWatch)
		},
	}
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the config file when it changes")
	return cmd
}

// runField owns the process-level resources: logger, screen, audio, config watcher
func runField(cmd *cobra.Command, watch bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := core.NewLogger(cfg.Log.File, cfg.Log.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var chime engine.Chime
	if cfg.Audio.Enabled {
		chimer := audio.NewChimer(cfg.Audio.Volume, time.Duration(cfg.Audio.GapMs)*time.Millisecond)
		if err := chimer.Initialize(); err != nil {
			// Non-fatal, the field runs without sound
			logger.Warn("audio initialization failed", zap.Error(err))
		} else {
			chime = chimer
			defer chimer.Cleanup()
		}
	}

	var updates configUpdates
	if watch {
		updates = watchConfig(ctx, opts.configPath, flagOverlay(cmd), logger)
	}
	if updates.watcher != nil {
		defer updates.watcher.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashRestore(screen.Fini)
	defer core.SetCrashRestore(nil)

	ctrl, err := engine.New(engine.Options{
		Config:  cfg,
		Screen:  screen,
		Logger:  logger,
		Chime:   chime,
		Updates: updates.ch,
	})
	if err != nil {
		screen.Fini()
		return err
	}
	return ctrl.Run(ctx)
}

type configUpdates struct {
	watcher *config.Watcher
	ch      <-chan *config.Config
}

// watchConfig starts a watcher when the config file exists, failures only disable live reload
func watchConfig(ctx context.Context, path string, overlay config.Overlay, logger *zap.Logger) configUpdates {
	if path == "" {
		return configUpdates{}
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return configUpdates{}
	}

	w, err := config.NewWatcher(path, logger)
	if err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
		return configUpdates{}
	}
	w.SetOverlay(overlay)
	if err := w.Start(ctx); err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
		w.Stop()
		return configUpdates{}
	}
	return configUpdates{watcher: w, ch: w.Updates()}
}
