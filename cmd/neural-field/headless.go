package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/neural-field/core"
	"github.com/lixenwraith/neural-field/engine"
)

func headlessCmd() *cobra.Command {
	var (
		steps int
		cols  int
		rows  int
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the simulation without a terminal and print totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Display.ReducedMotion = false

			logger, err := core.NewLogger(cfg.Log.File, cfg.Log.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctrl, err := engine.New(engine.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}
			ctrl.Resize(cols, rows)
			if !ctrl.Field().Ready() {
				return fmt.Errorf("terminal size %dx%d is empty", cols, rows)
			}
			for i := 0; i < steps; i++ {
				ctrl.Frame()
			}

			banner("headless run")
			w, h := ctrl.Viewport().LogicalSize()
			t := ctrl.Totals()
			table([]string{"METRIC", "VALUE"}, [][]string{
				{"session", ctrl.Session()},
				{"surface", fmt.Sprintf("%dx%d cells, %.0fx%.0f logical", cols, rows, w, h)},
				{"seed", fmt.Sprintf("%d", cfg.Field.Seed)},
				{"intensity", string(cfg.Intensity())},
				{"steps", fmt.Sprintf("%d", t.Steps)},
				{"frames", fmt.Sprintf("%d", ctrl.FramesRendered())},
				{"pulses spawned", fmt.Sprintf("%d", t.PulsesSpawned)},
				{"pulses completed", fmt.Sprintf("%d", t.PulsesCompleted)},
				{"particles reborn", fmt.Sprintf("%d", t.RebornParticles)},
				{"edge bounces", fmt.Sprintf("%d", t.Bounces)},
				{"connections", fmt.Sprintf("%d", t.LastConnections)},
				{"visible particles", fmt.Sprintf("%d", t.LastVisibleMotes)},
			})
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1000, "Simulation steps to run")
	cmd.Flags().IntVar(&cols, "cols", 200, "Simulated terminal columns")
	cmd.Flags().IntVar(&rows, "rows", 75, "Simulated terminal rows")
	return cmd
}
