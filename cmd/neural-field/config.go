package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/neural-field/config"
)

func configCmd() *cobra.Command {
	var (
		format string
		write  string
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if write != "" {
				if err := config.Save(write, cfg); err != nil {
					return err
				}
				Good.Printf("✓ wrote %s\n", write)
				return nil
			}
			return config.Encode(os.Stdout, config.Format(format), cfg)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), "Output format: toml, yaml")
	cmd.Flags().StringVarP(&write, "write", "w", "", "Save to a file instead of printing (format by extension)")
	return cmd
}
