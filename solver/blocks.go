package solver

import "math"

// CopyBlockOut copies block (bi,bj) of the row-major n×n global matrix
// into dst, a row-major b×b tile. Used when scattering blocks to nodes.
func CopyBlockOut(global []float64, n, b, bi, bj int, dst []float64) error {
	if err := checkTile(global, n, b, bi, bj); err != nil {
		return err
	}
	if len(dst) != b*b {
		return ErrBlockShape
	}
	base := bi*b*n + bj*b
	for r := 0; r < b; r++ {
		copy(dst[r*b:(r+1)*b], global[base+r*n:base+r*n+b])
	}

	return nil
}

// CopyBlockIn copies the row-major b×b tile src back into block (bi,bj)
// of the global matrix. Used when gathering results from nodes.
func CopyBlockIn(global []float64, n, b, bi, bj int, src []float64) error {
	if err := checkTile(global, n, b, bi, bj); err != nil {
		return err
	}
	if len(src) != b*b {
		return ErrBlockShape
	}
	base := bi*b*n + bj*b
	for r := 0; r < b; r++ {
		copy(global[base+r*n:base+r*n+b], src[r*b:(r+1)*b])
	}

	return nil
}

func checkTile(global []float64, n, b, bi, bj int) error {
	if n <= 0 || len(global) != n*n {
		return ErrMatrixShape
	}
	if b <= 0 || n%b != 0 || bi < 0 || bj < 0 || (bi+1)*b > n || (bj+1)*b > n {
		return ErrBlockShape
	}

	return nil
}

// MaxAbsDiff returns the maximum absolute element-wise difference between
// two equally sized buffers. NaN entries propagate to NaN, so a numerically
// broken run is visible in the validation signal.
func MaxAbsDiff(a, b []float64) float64 {
	maxErr := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxErr || math.IsNaN(d) {
			maxErr = d
		}
	}

	return maxErr
}
