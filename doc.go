// Package lvlpack is a benchmark harness for a distributed, blocked LU
// factorization executed by a logical P×Q grid of compute nodes connected
// through directional point-to-point links arranged as a 2D torus.
//
// 🚀 What is lvlpack?
//
//	A deterministic playground for the distributed block-factorization
//	protocol behind LINPACK-style benchmarks:
//		• Partitioning: map an N×N matrix onto a P×Q grid (diagonal or
//		  2D block-cyclic ownership)
//		• Torus links: ordered, blocking FIFO channels between neighbors,
//		  with file-mirrored edges for protocol inspection
//		• Role kernels: LU, Top, Left and Inner block updates streamed
//		  panel by panel through the grid
//		• Reference solver: sequential pivot-free elimination and
//		  substitution used as a correctness oracle
//		• Harness: repeated timed trials with separate transfer and
//		  calculation clocks and a max-error validation signal
//
// ⚠️ The factorization deliberately skips partial pivoting: it picks the
// current diagonal entry as pivot on every step. Correctness is therefore
// only guaranteed on diagonally dominant inputs; this is a property of the
// benchmarked algorithm, not an omission.
//
// Everything is organized under five subpackages plus a small CLI:
//
//	partition/ — block ownership maps and node-local layouts
//	torus/     — directional FIFO links and grid wiring
//	kernel/    — the four block role kernels and the panel schedule
//	solver/    — reference gefa/gesl and deterministic input generation
//	harness/   — repetitions, barrier, timings, validation, device seam
//	cmd/       — lvlpack benchmark binary
//
// Dive into the doc.go files inside each subpackage for contracts,
// complexity notes and error catalogs.
//
//	go get github.com/katalvlaran/lvlpack
package lvlpack
