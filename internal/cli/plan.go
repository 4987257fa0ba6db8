package cli

import (
	"github.com/spf13/cobra"

	"github.com/genc-murat/chunkflow/config"
	"github.com/genc-murat/chunkflow/internal/manifest"
	"github.com/genc-murat/chunkflow/pkg/chunk"
)

func newPlanCmd(cfg *config.Config) *cobra.Command {
	var (
		manifestPath   string
		dataSizeMB     float64
		rows           int
		maxRAMMB       float64
		targetFraction float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute how many rows fit in one chunk under the RAM budget",
		Long:  "Estimates a chunk size from the dataset's total in-memory size and row count, either from flags or from a JSON manifest. The estimate assumes uniform row sizes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("max-ram-mb") {
				maxRAMMB = cfg.Memory.MaxRAMMB
			}
			if !cmd.Flags().Changed("target-fraction") {
				targetFraction = cfg.Memory.TargetFraction
			}

			name := "dataset"
			if manifestPath != "" {
				d, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				name, dataSizeMB, rows = d.Name, d.SizeMB, d.Rows
			}

			size, err := chunk.OptimalSize(dataSizeMB, rows, maxRAMMB, targetFraction)
			if err != nil {
				return err
			}
			numChunks := (rows + size - 1) / size

			logger.Info().
				Str("dataset", name).
				Float64("data_size_mb", dataSizeMB).
				Int("total_rows", rows).
				Float64("max_ram_mb", maxRAMMB).
				Float64("target_fraction", targetFraction).
				Int("chunk_size", size).
				Int("chunks", numChunks).
				Msg("chunk plan")

			cmd.Println(size)
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "JSON dataset manifest (overrides --data-size-mb and --rows)")
	cmd.Flags().Float64Var(&dataSizeMB, "data-size-mb", 0, "total in-memory size of the dataset in MiB")
	cmd.Flags().IntVar(&rows, "rows", 0, "total number of rows in the dataset")
	cmd.Flags().Float64Var(&maxRAMMB, "max-ram-mb", 0, "RAM ceiling in MiB (default from config)")
	cmd.Flags().Float64Var(&targetFraction, "target-fraction", chunk.DefaultTargetFraction, "share of the ceiling allotted to one chunk")

	return cmd
}
