package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genc-murat/chunkflow/pkg/sysmem"
	util "github.com/genc-murat/chunkflow/pkg/utils"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print current process and system memory readings",
		Long:  "Prints total and available physical RAM of the host and the resident memory of this process, all in MiB. Zero readings mean the counter could not be read on this platform.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := sysmem.ReadSystemInfo()

			report := map[string]string{
				"total_ram_mb":     fmt.Sprintf("%.2f", info.TotalRAMMB),
				"available_ram_mb": fmt.Sprintf("%.2f", info.AvailableRAMMB),
				"used_ram_mb":      fmt.Sprintf("%.2f", info.UsedRAMMB),
			}
			cmd.Print(util.FormatReport(report))
			return nil
		},
	}
}
