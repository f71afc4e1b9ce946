package torus

import (
	"fmt"
	"path/filepath"
)

// GridOptions contains tunable parameters for grid wiring.
type GridOptions struct {
	// WrapRows connects the north edge of row 0 to the south edge of the
	// last row (torus axis). Required when the block grid is taller than
	// the node grid.
	WrapRows bool
	// WrapCols connects the west edge of column 0 to the east edge of the
	// last column.
	WrapCols bool
	// MirrorDir, when non-empty, turns unwrapped outward-facing edge links
	// into append-only file mirrors inside this directory, so the protocol
	// can be verified without a second physical node. Empty means edge
	// traffic is counted but discarded.
	MirrorDir string
}

// DefaultGridOptions returns a fully wrapped torus without mirrors.
func DefaultGridOptions() GridOptions {
	return GridOptions{WrapRows: true, WrapCols: true}
}

// Node is one endpoint of the grid: four outgoing and four incoming links.
type Node struct {
	Row, Col int
	out      [numDirections]Link
	in       [numDirections]Link
}

// Out returns the outgoing link for direction d.
func (n *Node) Out(d Direction) Link { return n.out[d] }

// In returns the incoming link for direction d (data arriving from the
// neighbor in that direction).
func (n *Node) In(d Direction) Link { return n.in[d] }

// Grid wires a P×Q node grid. Every adjacent pair shares two directed
// links (one per direction); unwrapped edges face sinks or file mirrors
// outward and preloadable FIFOs inward.
type Grid struct {
	p, q  int
	nodes [][]*Node
	links []Link
}

// NewGrid builds and wires a P×Q grid.
// Returns ErrGridShape for non-positive dimensions; mirror creation errors
// are wrapped and returned as-is.
// Complexity: O(P×Q) time and memory.
func NewGrid(p, q int, opts GridOptions) (*Grid, error) {
	if p < 1 || q < 1 {
		return nil, ErrGridShape
	}
	g := &Grid{p: p, q: q, nodes: make([][]*Node, p)}
	for r := 0; r < p; r++ {
		g.nodes[r] = make([]*Node, q)
		for c := 0; c < q; c++ {
			g.nodes[r][c] = &Node{Row: r, Col: c}
		}
	}

	// Horizontal wiring: (r,c) ↔ (r,c+1), wrapped or edge-terminated.
	for r := 0; r < p; r++ {
		for c := 0; c < q; c++ {
			next := c + 1
			if next == q {
				if !opts.WrapCols {
					continue
				}
				next = 0
			}
			east := g.track(NewFIFO())
			west := g.track(NewFIFO())
			g.nodes[r][c].out[East] = east
			g.nodes[r][next].in[West] = east
			g.nodes[r][next].out[West] = west
			g.nodes[r][c].in[East] = west
		}
	}
	// Vertical wiring: (r,c) ↔ (r+1,c).
	for c := 0; c < q; c++ {
		for r := 0; r < p; r++ {
			next := r + 1
			if next == p {
				if !opts.WrapRows {
					continue
				}
				next = 0
			}
			south := g.track(NewFIFO())
			north := g.track(NewFIFO())
			g.nodes[r][c].out[South] = south
			g.nodes[next][c].in[North] = south
			g.nodes[next][c].out[North] = north
			g.nodes[r][c].in[South] = north
		}
	}

	// Edge termination: outward links become mirrors or counting sinks,
	// inward links become empty FIFOs a test can preload.
	for r := 0; r < p; r++ {
		for c := 0; c < q; c++ {
			node := g.nodes[r][c]
			for d := Direction(0); d < numDirections; d++ {
				if node.out[d] == nil {
					l, err := g.edgeLink(opts, r, c, d)
					if err != nil {
						return nil, err
					}
					node.out[d] = g.track(l)
				}
				if node.in[d] == nil {
					node.in[d] = g.track(NewFIFO())
				}
			}
		}
	}

	return g, nil
}

func (g *Grid) track(l Link) Link {
	g.links = append(g.links, l)

	return l
}

func (g *Grid) edgeLink(opts GridOptions, r, c int, d Direction) (Link, error) {
	if opts.MirrorDir == "" {
		return NewSink(), nil
	}

	return NewFileSink(MirrorPath(opts.MirrorDir, r, c, d))
}

// MirrorPath returns the mirror file path for the outgoing link of node
// (r,c) in direction d, matching what NewGrid creates.
func MirrorPath(dir string, r, c int, d Direction) string {
	return filepath.Join(dir, fmt.Sprintf("node%d_%d_%s.bin", r, c, d))
}

// Rows returns P.
func (g *Grid) Rows() int { return g.p }

// Cols returns Q.
func (g *Grid) Cols() int { return g.q }

// At returns the node at (r,c).
// Returns ErrGridShape when the coordinate lies outside the grid.
func (g *Grid) At(r, c int) (*Node, error) {
	if r < 0 || r >= g.p || c < 0 || c >= g.q {
		return nil, ErrGridShape
	}

	return g.nodes[r][c], nil
}

// Drain empties every link in the grid. Called at trial boundaries so no
// stale data from a previous repetition leaks into the next.
func (g *Grid) Drain() {
	for _, l := range g.links {
		l.Drain()
	}
}

// Close releases every link; mirrors flush to disk. The first error wins.
func (g *Grid) Close() error {
	var first error
	for _, l := range g.links {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
