package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/genc-murat/chunkflow/pkg/chunk"
)

func newSplitCmd() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a JSON vector or matrix into row-wise chunks",
		Long:  "Reads a JSON array of numbers (vector) or array of arrays (matrix) and prints one JSON chunk per line. The last chunk holds the remainder rows.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading input file: %w", err)
			}
			if !gjson.ValidBytes(data) {
				return fmt.Errorf("error parsing input: invalid JSON")
			}
			root := gjson.ParseBytes(data)
			if !root.IsArray() {
				return fmt.Errorf("error parsing input: expected a JSON array")
			}

			rows := root.Array()
			out := json.NewEncoder(cmd.OutOrStdout())

			if len(rows) > 0 && rows[0].IsArray() {
				mat := make([][]float64, len(rows))
				for i, row := range rows {
					cells := row.Array()
					mat[i] = make([]float64, len(cells))
					for j, cell := range cells {
						mat[i][j] = cell.Float()
					}
				}
				chunks, err := chunk.SplitMatrix(mat, chunkSize)
				if err != nil {
					return err
				}
				logger.Info().Int("rows", len(mat)).Int("chunk_size", chunkSize).Int("chunks", len(chunks)).Msg("split matrix")
				for _, c := range chunks {
					if err := out.Encode(c); err != nil {
						return err
					}
				}
				return nil
			}

			vec := make([]float64, len(rows))
			for i, v := range rows {
				vec[i] = v.Float()
			}
			chunks, err := chunk.SplitVector(vec, chunkSize)
			if err != nil {
				return err
			}
			logger.Info().Int("rows", len(vec)).Int("chunk_size", chunkSize).Int("chunks", len(chunks)).Msg("split vector")
			for _, c := range chunks {
				if err := out.Encode(c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 1, "rows per chunk")

	return cmd
}
