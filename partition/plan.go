package partition

// Plan is an immutable ownership map for one benchmark configuration.
// It is a pure function of (N, B, P, Q, policy): identical inputs always
// produce identical ownership, so blocks can be scattered and gathered
// deterministically for validation.
type Plan struct {
	n, b       int
	p, q       int
	nb         int
	policy     Policy
	owned      map[NodeID][]BlockID
	localIndex map[BlockID]int
}

// New validates the configuration and precomputes the ownership map.
// Returns ErrNotTileable if B does not divide N, ErrGridShape if P or Q is
// not positive, ErrUnsupportedPolicy for an unknown policy.
// Complexity: O(nb²) time and memory.
func New(n, b, p, q int, policy Policy) (*Plan, error) {
	if n <= 0 || b <= 0 || n%b != 0 {
		return nil, ErrNotTileable
	}
	if p < 1 || q < 1 {
		return nil, ErrGridShape
	}
	if policy != PolicyDiagonal && policy != PolicyPQ {
		return nil, ErrUnsupportedPolicy
	}
	pl := &Plan{
		n:          n,
		b:          b,
		p:          p,
		q:          q,
		nb:         n / b,
		policy:     policy,
		owned:      make(map[NodeID][]BlockID),
		localIndex: make(map[BlockID]int),
	}
	// Ascending (row, col) enumeration fixes the node-local layout and the
	// per-step processing schedule at the same time.
	for i := 0; i < pl.nb; i++ {
		for j := 0; j < pl.nb; j++ {
			id := BlockID{Row: i, Col: j}
			node := pl.ownerOf(i, j)
			pl.localIndex[id] = len(pl.owned[node])
			pl.owned[node] = append(pl.owned[node], id)
		}
	}

	return pl, nil
}

// ownerOf computes the owning node of block (i,j) arithmetically.
// Precondition: 0 ≤ i,j < nb.
func (pl *Plan) ownerOf(i, j int) NodeID {
	switch pl.policy {
	case PolicyPQ:
		return NodeID{Row: i % pl.p, Col: j % pl.q}
	default: // PolicyDiagonal, guarded in New
		// Wavefront band d = (j-i) mod nb, assigned round-robin over the
		// flattened node grid.
		d := ((j-i)%pl.nb + pl.nb) % pl.nb
		k := d % (pl.p * pl.q)

		return NodeID{Row: k / pl.q, Col: k % pl.q}
	}
}

// MatrixSize returns N.
func (pl *Plan) MatrixSize() int { return pl.n }

// BlockSize returns B.
func (pl *Plan) BlockSize() int { return pl.b }

// GridShape returns the node grid dimensions (P, Q).
func (pl *Plan) GridShape() (int, int) { return pl.p, pl.q }

// NumBlocksPerSide returns nb = N/B.
func (pl *Plan) NumBlocksPerSide() int { return pl.nb }

// Policy returns the distribution policy the plan was built with.
func (pl *Plan) Policy() Policy { return pl.policy }

// Owner returns the node owning block (i,j).
// Returns ErrBlockRange when the coordinate is outside the block grid.
// Complexity: O(1).
func (pl *Plan) Owner(i, j int) (NodeID, error) {
	if i < 0 || i >= pl.nb || j < 0 || j >= pl.nb {
		return NodeID{}, ErrBlockRange
	}

	return pl.ownerOf(i, j), nil
}

// Owned returns the blocks owned by node in ascending (row, col) order.
// The returned slice is shared with the plan and must not be mutated.
func (pl *Plan) Owned(node NodeID) []BlockID {
	return pl.owned[node]
}

// LocalIndex returns the position of block id inside its owner's local
// buffer. Returns ErrBlockRange for out-of-range coordinates.
// Complexity: O(1).
func (pl *Plan) LocalIndex(id BlockID) (int, error) {
	idx, ok := pl.localIndex[id]
	if !ok {
		return 0, ErrBlockRange
	}

	return idx, nil
}

// LocalBufferLen returns the node-local buffer length in values:
// ownedBlocks × B×B. Nodes owning no blocks get length 0.
func (pl *Plan) LocalBufferLen(node NodeID) int {
	return len(pl.owned[node]) * pl.b * pl.b
}
