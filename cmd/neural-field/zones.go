package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Validate the config and list exclusion zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Printf("  %s %v\n", statusIcon(false), err)
				return err
			}

			banner("exclusion zones")
			source := opts.configPath
			if source == "" {
				source = "defaults"
			}
			fmt.Printf("  %s config %s\n\n", statusIcon(true), Subtle.Sprint(source))

			if len(cfg.Zones) == 0 {
				Subtle.Println("  no zones configured")
				return nil
			}

			rows := make([][]string, 0, len(cfg.Zones))
			for i, z := range cfg.ExclusionZones() {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					fmt.Sprintf("%.0f", z.X),
					fmt.Sprintf("%.0f", z.Y),
					fmt.Sprintf("%.0f", z.Width),
					fmt.Sprintf("%.0f", z.Height),
					fmt.Sprintf("%.2f", z.Strength),
				})
			}
			table([]string{"#", "X", "Y", "WIDTH", "HEIGHT", "STRENGTH"}, rows)
			return nil
		},
	}
}
