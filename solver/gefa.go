package solver

// Gefa factorizes the row-major n×n matrix a in place using Gaussian
// elimination without pivot search: the diagonal entry of the current
// column is always the pivot. Negated multipliers are stored below the
// diagonal; the upper triangle (diagonal included) holds U.
//
// The loop order is fixed and identical to the distributed role kernels,
// so a single-block distributed run reproduces this result exactly.
// An exactly zero pivot fails with ErrZeroPivot; small pivots divide
// through and surface as validation error, not as a fault.
// Complexity: O(n³).
func Gefa(a []float64, n int) error {
	if n <= 0 || len(a) != n*n {
		return ErrMatrixShape
	}
	var k, i, j int
	var pivot, m float64
	for k = 0; k < n; k++ {
		pivot = a[k*n+k]
		if pivot == 0 {
			return ErrZeroPivot
		}
		// Scale the sub-column: store negated multipliers.
		for j = k + 1; j < n; j++ {
			a[j*n+k] = -a[j*n+k] / pivot
		}
		// Rank-1 trailing update with the stored multipliers.
		for j = k + 1; j < n; j++ {
			m = a[j*n+k]
			for i = k + 1; i < n; i++ {
				a[j*n+i] += m * a[k*n+i]
			}
		}
	}

	return nil
}

// Gesl solves A·x = b given the Gefa-factorized matrix a. The right-hand
// side is passed in x and overwritten with the solution: first the stored
// negated multipliers are applied (forward elimination of b), then back
// substitution divides through the diagonal of U.
// Complexity: O(n²).
func Gesl(a, x []float64, n int) error {
	if n <= 0 || len(a) != n*n {
		return ErrMatrixShape
	}
	if len(x) != n {
		return ErrVectorShape
	}
	var k, j int
	var t float64
	// Forward: b ← L⁻¹·b via the stored negated multipliers.
	for k = 0; k < n-1; k++ {
		t = x[k]
		for j = k + 1; j < n; j++ {
			x[j] += a[j*n+k] * t
		}
	}
	// Backward: x ← U⁻¹·b, column-oriented like the classic gesl.
	for k = n - 1; k >= 0; k-- {
		x[k] /= a[k*n+k]
		t = -x[k]
		for j = 0; j < k; j++ {
			x[j] += a[j*n+k] * t
		}
	}

	return nil
}

// SolveReference factorizes a copy of a and solves A·x = b in one shot.
// The inputs are not mutated; used by tests and the harness oracle.
func SolveReference(a, b []float64, n int) ([]float64, error) {
	if n <= 0 || len(a) != n*n {
		return nil, ErrMatrixShape
	}
	if len(b) != n {
		return nil, ErrVectorShape
	}
	work := append([]float64(nil), a...)
	x := append([]float64(nil), b...)
	if err := Gefa(work, n); err != nil {
		return nil, err
	}
	if err := Gesl(work, x, n); err != nil {
		return nil, err
	}

	return x, nil
}
