package chunk

import "fmt"

// SplitVector partitions x into contiguous chunks of chunkSize
// elements; the last chunk holds the remainder. Chunks are copies,
// independent of x after the call. Concatenating them in order
// reproduces x exactly.
func SplitVector(x []float64, chunkSize int) ([][]float64, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidArgument, chunkSize)
	}

	n := len(x)
	if n == 0 {
		return nil, nil
	}

	chunks := make([][]float64, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		c := make([]float64, end-start)
		copy(c, x[start:end])
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// SplitMatrix partitions mat row-wise into sub-matrices of chunkSize
// full-width rows; the last chunk holds the remainder rows. Rows are
// copied, so chunks stay valid if the caller mutates mat.
func SplitMatrix(mat [][]float64, chunkSize int) ([][][]float64, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidArgument, chunkSize)
	}

	rows := len(mat)
	if rows == 0 {
		return nil, nil
	}

	chunks := make([][][]float64, 0, (rows+chunkSize-1)/chunkSize)
	for start := 0; start < rows; start += chunkSize {
		end := start + chunkSize
		if end > rows {
			end = rows
		}
		c := make([][]float64, end-start)
		for i := range c {
			row := make([]float64, len(mat[start+i]))
			copy(row, mat[start+i])
			c[i] = row
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}
