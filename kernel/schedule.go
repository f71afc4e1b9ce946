package kernel

// SegmentStart returns the first index of the factor-stream segment for
// elimination index k: segments begin at the chunk boundary containing k
// and run to the end of the block, so pivot-side values precede the
// multiplier values of the same index on the wire.
func SegmentStart(k, chunk int) int {
	return (k / chunk) * chunk
}

// SegmentLen returns the number of values in the segment for elimination
// index k of a b-sized block.
func SegmentLen(b, k, chunk int) int {
	return b - SegmentStart(k, chunk)
}

// StreamLen returns the total number of values one factor-stream
// direction carries for a full block factorization:
// Σ_{k=0}^{b-1} (b − (k/chunk)·chunk).
func StreamLen(b, chunk int) int {
	total := 0
	for k := 0; k < b; k++ {
		total += SegmentLen(b, k, chunk)
	}

	return total
}
