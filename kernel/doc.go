// Package kernel implements the four node roles of the blocked,
// pivot-free LU factorization and the chunked panel schedule that
// connects them over torus links.
//
// What:
//
//   - Role classifies a block position for a diagonal step: LU factorizes
//     the pivot block, Top updates a row-panel block, Left updates a
//     column-panel block, Inner applies the rank-B trailing update, and
//     Idle marks blocks outside the active sub-grid.
//   - Factorize runs the in-place elimination of a single B×B block with
//     the current diagonal entry as pivot (no pivot search) and negated
//     multipliers stored below the diagonal.
//   - RunLU, RunTop, RunLeft and RunInner execute one role for one block
//     of one diagonal step, consuming and producing the factor streams
//     and block panels on the supplied links.
//
// Why:
//
//   - Every role performs exactly the per-element operations of the
//     sequential reference elimination, in the same per-element order and
//     with the same operand values, so a distributed run reproduces the
//     reference factorization bit for bit.
//   - The factor stream is chunked: for elimination index k the segment
//     spans indices (k/chunk)·chunk .. B-1 of the pivot column and row.
//     Segments start at the chunk boundary, so the pivot-side values of
//     an index always enter a FIFO before its multiplier values.
//
// Protocol (per diagonal step):
//
//   - LU sends the multiplier-column segments east and the pivot-row
//     segments south; Top relays the column stream east, Left relays the
//     row stream south.
//   - Top streams its updated block south row-major; Left streams its
//     updated block east column-major; Inner relays both panels onward.
//   - A kernel sends on a direction only when told to: the caller decides
//     from the active sub-grid whether a consumer or an observable edge
//     sits on the other end.
//
// Errors:
//
//   - ErrBlockShape: a buffer does not hold exactly B×B values.
//   - ErrChunkGranularity: chunk does not divide the block size.
//   - ErrZeroPivot: a diagonal entry is exactly zero.
package kernel
