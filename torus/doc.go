// Package torus provides the directional point-to-point link layer that
// connects a P×Q grid of compute nodes, plus the grid wiring itself.
//
// What:
//
//   - Link is an ordered FIFO of float64 values with a blocking Recv;
//     every link has exactly one producer and one consumer.
//   - FIFO is the in-memory production implementation (unbounded, ordered).
//   - FileSink mirrors an outward-facing edge link to an append-only binary
//     stream so the communication protocol can be verified offline;
//     ReadMirror reproduces exactly the sequence and count of values sent.
//   - Sink silently counts and discards values (unobserved edges).
//   - Grid wires one link per (node, direction) pair to the neighbor's
//     opposite direction, with optional wrap-around per axis.
//
// Why:
//
//   - The block-factorization pipeline relies on a fixed, statically known
//     communication schedule: a blocking Recv on a FIFO is the only
//     inter-node ordering primitive, and liveness follows from matching
//     send/receive counts rather than timeouts.
//   - File-backed mirrors let a single process verify the multi-node
//     protocol without a second physical node, exactly like the original
//     hardware benchmark's channel files.
//
// Ordering invariant:
//
//   - Data written to a link is read in the exact order written. For the
//     factor stream this means the pivot-side values of every elimination
//     index enter the FIFO before the multiplier values; both ends commit
//     to that order instead of negotiating it per message.
//
// Errors:
//
//   - ErrGridShape: grid dimensions are not positive.
//   - ErrRecvOnSink: Recv called on a write-only sink or mirror.
//   - ErrClosed: Send after Close.
package torus
