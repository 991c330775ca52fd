package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/neural-field/config"
)

var version = "0.3.0"

// options are the flags shared by every command, applied over the config file
type options struct {
	configPath    string
	intensity     string
	nodes         int
	particles     int
	distance      float64
	frameRate     int
	pixelRatio    float64
	colorMode     string
	seed          uint64
	reducedMotion bool
	debugZones    bool
	noInteractive bool
	audio         bool
	logFile       string
	verbose       bool
}

var opts options

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neural-field",
		Short: "neural-field: animated neural network backdrop for the terminal",
		Long: Brand.Sprint("neural-field") + ": drifting nodes, proximity links and data pulses in half-block truecolor\n" +
			Subtle.Sprint("Keys: q quit, m reduced motion, d zone overlay, r reseed, p pause"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(cmd, true)
		},
	}
	cmd.SetVersionTemplate("neural-field {{ .Version }}\n")

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", config.PathFromEnv(), "Config file (.toml, .yaml)")
	f.StringVarP(&opts.intensity, "intensity", "i", "", "Animation intensity: low, medium, high")
	f.IntVar(&opts.nodes, "nodes", 0, "Number of network nodes")
	f.IntVar(&opts.particles, "particles", 0, "Number of background particles")
	f.Float64Var(&opts.distance, "distance", 0, "Max link distance in logical units")
	f.IntVar(&opts.frameRate, "fps", 0, "Frame rate")
	f.Float64Var(&opts.pixelRatio, "ratio", 0, "Surface pixels per logical unit")
	f.StringVar(&opts.colorMode, "color", "", "Color mode: auto, truecolor, 256")
	f.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one from the clock")
	f.BoolVar(&opts.reducedMotion, "reduced-motion", false, "Draw a single static frame")
	f.BoolVar(&opts.debugZones, "debug-zones", false, "Outline exclusion zones")
	f.BoolVar(&opts.noInteractive, "no-interactive", false, "Ignore the mouse pointer")
	f.BoolVar(&opts.audio, "audio", false, "Chime when data pulses arrive")
	f.StringVar(&opts.logFile, "log-file", "", "Write structured logs to this file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug level logging")

	cmd.AddCommand(
		runCmd(),
		zonesCmd(),
		headlessCmd(),
		configCmd(),
	)
	return cmd
}

// Execute runs the root command, reporting errors in color
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		Bad.Printf("neural-field: %v\n", err)
	}
	return err
}

// flagOverlay applies explicitly set flags over a loaded config
// The watcher reuses it so a reload keeps the command-line choices
func flagOverlay(cmd *cobra.Command) config.Overlay {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("intensity") {
			cfg.Field.Intensity = opts.intensity
		}
		if flags.Changed("nodes") {
			cfg.Field.NodeCount = opts.nodes
		}
		if flags.Changed("particles") {
			cfg.Field.ParticleCount = opts.particles
		}
		if flags.Changed("distance") {
			cfg.Field.ConnectionDistance = opts.distance
		}
		if flags.Changed("fps") {
			cfg.Display.FrameRate = opts.frameRate
		}
		if flags.Changed("ratio") {
			cfg.Display.PixelRatio = opts.pixelRatio
		}
		if flags.Changed("color") {
			cfg.Display.ColorMode = opts.colorMode
		}
		if flags.Changed("seed") {
			cfg.Field.Seed = opts.seed
		}
		if opts.reducedMotion {
			cfg.Display.ReducedMotion = true
		}
		if opts.debugZones {
			cfg.Display.DebugZones = true
		}
		if opts.noInteractive {
			cfg.Field.Interactive = false
		}
		if opts.audio {
			cfg.Audio.Enabled = true
		}
		if flags.Changed("log-file") {
			cfg.Log.File = opts.logFile
		}
		if opts.verbose {
			cfg.Log.Verbose = true
		}
	}
}

// loadConfig reads the config file then applies explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flagOverlay(cmd)(cfg)

	if cfg.Field.Seed == 0 {
		cfg.Field.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
