package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pwithnall/libosversion/internal/config"
	"github.com/pwithnall/libosversion/internal/report"
)

func newHostCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Show an extended, human-readable host report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().Load()
			if err != nil {
				return err
			}

			collector := report.NewCollector(newLogger(cfg))
			r := collector.Collect(cmd.Context())

			if jsonOut {
				data, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Printf("OS:               %s\n", r.OS)
			cmd.Printf("Platform:         %s %s\n", r.Platform, r.PlatformVersion)
			cmd.Printf("Kernel:           %s (%s)\n", r.KernelVersion, r.KernelArch)
			cmd.Printf("Uptime:           %s\n", (time.Duration(r.UptimeSeconds) * time.Second).String())
			cmd.Printf("Logical CPUs:     %d\n", r.LogicalCPUs)
			cmd.Printf("Total memory:     %d bytes\n", r.TotalMemory)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the report as JSON")
	return cmd
}
