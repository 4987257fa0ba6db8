// Package chunk sizes and materializes row-wise chunks of large
// tabular/vector datasets so a pipeline can process them under a RAM
// budget.
package chunk

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTargetFraction is the share of the RAM ceiling allotted to a
// single chunk, leaving headroom for the rest of the pipeline.
const DefaultTargetFraction = 0.1

// ErrInvalidArgument marks calls rejected for degenerate numeric input.
var ErrInvalidArgument = errors.New("invalid argument")

// OptimalSize estimates how many rows fit in one chunk given the
// dataset's total in-memory size, its row count, a RAM ceiling and the
// fraction of that ceiling one chunk may occupy. The result is clamped
// to [1, totalRows]: the caller can always make forward progress one
// row at a time, and is never told to load more rows than exist.
//
// The estimate assumes uniform per-row size (dataSizeMB / totalRows).
// With skewed row sizes a materialized chunk can overshoot the budget;
// that approximation is inherent to the heuristic, not corrected here.
// targetFraction is not range-checked.
func OptimalSize(dataSizeMB float64, totalRows int, maxRAMMB, targetFraction float64) (int, error) {
	if totalRows <= 0 {
		return 0, fmt.Errorf("%w: total rows must be positive, got %d", ErrInvalidArgument, totalRows)
	}
	if dataSizeMB <= 0 {
		return 0, fmt.Errorf("%w: data size must be positive, got %g MB", ErrInvalidArgument, dataSizeMB)
	}

	targetChunkRAM := maxRAMMB * targetFraction
	size := int(math.Floor(float64(totalRows) * targetChunkRAM / dataSizeMB))

	if size < 1 {
		size = 1
	}
	if size > totalRows {
		size = totalRows
	}
	return size, nil
}
