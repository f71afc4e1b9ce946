// Package harness orchestrates the distributed factorization benchmark:
// repeated timed trials over a node grid, followed by validation against
// the sequential reference solver.
//
// What:
//
//   - Config collects the benchmark surface (matrix size, block size,
//     chunk, grid shape, repetitions, distribution policy, input
//     generation) and fail-fast validates it before any node starts.
//   - Run drives Repetitions trials. Per trial: all node workers meet at
//     a barrier, blocks are scattered to node-local buffers (transfer
//     time), one full multi-step factorization pass runs across the
//     torus (calculation time), and results are gathered back (transfer
//     time). The pristine matrix is snapshotted into working buffers
//     every trial, so no state leaks between repetitions.
//   - Timings holds exactly Repetitions {Transfer, Calc} pairs with mean
//     and minimum summaries.
//   - Device and Program form the accelerator seam: SelectDevice and
//     LoadProgram supply an opaque execution context, RunRole executes
//     one role for one block. The default software device dispatches to
//     the kernel package.
//
// Why:
//
//   - One goroutine per grid node, processing its owned active blocks in
//     ascending (row, col) order per diagonal step, realizes the
//     wavefront schedule: every receive is preceded by its matching send
//     in dependency order, so liveness follows from the statically known
//     send/receive counts and needs no timeouts.
//   - Validation is independent of timing: after the last repetition the
//     recombined factorized matrix is diffed element-wise against the
//     reference elimination, and substitution runs on the distributed
//     result. Pivot-free elimination is only guaranteed accurate on
//     diagonally dominant inputs; on anything else the max error is the
//     signal, not a fault.
//
// Errors:
//
//   - ErrRepetitions: repetition count is not positive.
//   - ErrPolicyGrid: diagonal policy on a grid larger than 1x1.
//   - Configuration errors from partition and kernel pass through
//     unwrapped, errors.Is friendly.
package harness
