// Package partition maps the blocks of an N×N matrix onto a logical P×Q
// grid of compute nodes and computes each node's local buffer layout.
//
// What:
//
//   - Plan describes a complete, immutable ownership map: every B×B block
//     of the matrix is owned by exactly one node.
//   - PolicyPQ assigns block (i,j) to node (i mod P, j mod Q), the 2D
//     block-cyclic distribution used for genuine multi-node runs.
//   - PolicyDiagonal assigns contiguous diagonal wavefront bands to nodes,
//     used for single-node and degenerate protocol tests.
//   - Owned blocks are laid out node-locally in ascending (row, col) order;
//     LocalIndex gives the position of a block inside that buffer.
//
// Why:
//
//   - Ownership must be a pure function of (N, B, P, Q, policy) so blocks
//     can be scattered and gathered deterministically for validation.
//   - The ascending local order doubles as the per-step processing schedule
//     that keeps shared torus links consistently ordered.
//
// Complexity:
//
//   - New:        O(nb²) time and memory (nb = N/B blocks per side).
//   - Owner:      O(1).
//   - LocalIndex: O(1).
//
// Errors:
//
//   - ErrNotTileable: N is not divisible by B.
//   - ErrGridShape: P or Q is not positive.
//   - ErrUnsupportedPolicy: unknown distribution policy.
//   - ErrBlockRange: block coordinate outside the nb×nb block grid.
package partition
