package solver

import "math/rand"

// GenerateInput produces a seeded, reproducible N×N matrix (row-major) and
// a length-N right-hand side with entries uniform in [0,1). When dominant
// is true the diagonal is overwritten with N, which strictly exceeds any
// off-diagonal row sum of uniforms and keeps the pivot-free elimination
// numerically stable.
// Identical (n, seed, dominant) inputs always produce identical data.
// Complexity: O(N²).
func GenerateInput(n int, seed int64, dominant bool) ([]float64, []float64, error) {
	if n <= 0 {
		return nil, nil, ErrMatrixShape
	}
	rng := rand.New(rand.NewSource(seed))
	a := make([]float64, n*n)
	for i := range a {
		a[i] = rng.Float64()
	}
	if dominant {
		for i := 0; i < n; i++ {
			a[i*n+i] = float64(n)
		}
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()
	}

	return a, b, nil
}
