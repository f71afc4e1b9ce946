// Package solver holds the sequential reference side of the benchmark:
// pivot-free Gaussian elimination, forward/back substitution, deterministic
// input generation and block copy helpers.
//
// What:
//
//   - Gefa factorizes a dense row-major N×N matrix in place via Gaussian
//     elimination WITHOUT pivot search: the current diagonal entry is
//     always the pivot, and negated multipliers are stored below the
//     diagonal. This matches the distributed kernels bit for bit on a
//     single block and serves as the correctness oracle for multi-node runs.
//   - Gesl applies the stored multipliers to a right-hand side and runs
//     back substitution, solving A·x = b from the factorized form.
//   - GenerateInput produces a seeded uniform matrix and right-hand side,
//     optionally forced diagonally dominant.
//   - CopyBlockOut/CopyBlockIn move B×B tiles between the global matrix
//     and node-local buffers; MaxAbsDiff is the element-wise error metric.
//
// Why:
//
//   - The benchmark's validation signal is the maximum absolute
//     element-wise difference between the recombined distributed
//     factorization and this oracle; the oracle never runs on the hot path.
//
// ⚠️ No pivoting means no numerical robustness on general matrices: small
// pivots propagate into the validation error rather than raising a runtime
// fault, and only an exactly zero pivot fails with ErrZeroPivot. Keep
// inputs diagonally dominant.
//
// Complexity:
//
//   - Gefa: O(N³). Gesl: O(N²). GenerateInput: O(N²).
//
// Errors:
//
//   - ErrMatrixShape: buffer length does not match the declared size.
//   - ErrVectorShape: right-hand side length does not match N.
//   - ErrBlockShape: tile geometry does not fit the global matrix.
//   - ErrZeroPivot: an exactly zero diagonal entry during elimination.
package solver
