package partition

import "errors"

// Sentinel errors for partition operations.
var (
	// ErrNotTileable indicates the matrix size is not divisible by the block size.
	ErrNotTileable = errors.New("partition: matrix size must be divisible by block size")
	// ErrGridShape indicates a non-positive grid dimension.
	ErrGridShape = errors.New("partition: grid must have at least one row and one column")
	// ErrUnsupportedPolicy indicates an unknown distribution policy.
	ErrUnsupportedPolicy = errors.New("partition: unsupported distribution policy")
	// ErrBlockRange indicates a block coordinate outside the block grid.
	ErrBlockRange = errors.New("partition: block coordinate out of range")
)

// Policy selects how blocks are distributed over the node grid.
type Policy int

const (
	// PolicyDiagonal assigns contiguous diagonal wavefront bands to nodes.
	// Intended for single-node and degenerate test configurations.
	PolicyDiagonal Policy = iota
	// PolicyPQ assigns block (i,j) to node (i mod P, j mod Q): the standard
	// 2D block-cyclic distribution for multi-node runs.
	PolicyPQ
)

// String returns the canonical policy name.
func (p Policy) String() string {
	switch p {
	case PolicyDiagonal:
		return "diagonal"
	case PolicyPQ:
		return "pq"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a policy name back to its Policy value.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "diagonal":
		return PolicyDiagonal, nil
	case "pq":
		return PolicyPQ, nil
	default:
		return 0, ErrUnsupportedPolicy
	}
}

// BlockID addresses one B×B block inside the nb×nb block grid.
type BlockID struct {
	Row, Col int
}

// NodeID addresses one node inside the P×Q node grid.
type NodeID struct {
	Row, Col int
}
