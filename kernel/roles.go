package kernel

import "github.com/katalvlaran/lvlpack/torus"

// Factorize eliminates the B×B block a in place with the current
// diagonal entry as pivot. Negated multipliers are stored below the
// diagonal; U occupies the diagonal and above. The per-element update
// order matches the sequential reference elimination exactly, so a
// single-block run reproduces it bit for bit.
// Complexity: O(B³).
func Factorize(a []float64, o Options) error {
	if err := o.checkBlock(a); err != nil {
		return err
	}
	b := o.BlockSize
	for k := 0; k < b; k++ {
		pivot := a[k*b+k]
		if pivot == 0 {
			return ErrZeroPivot
		}
		for j := k + 1; j < b; j++ {
			a[j*b+k] = -a[j*b+k] / pivot
		}
		for j := k + 1; j < b; j++ {
			m := a[j*b+k]
			for i := k + 1; i < b; i++ {
				a[j*b+i] += m * a[k*b+i]
			}
		}
	}

	return nil
}

// RunLU factorizes the pivot block of a diagonal step and emits the
// factor streams: the multiplier-column segments east (for Top nodes)
// and the pivot-row segments south (for Left nodes). Neither the pivot
// column of an index nor the pivot row is touched by later elimination
// steps, so both streams are cut from the fully factorized block.
// sendEast/sendSouth gate the emissions; the caller sets them from the
// active sub-grid and the edge wiring.
func RunLU(a []float64, o Options, east, south torus.Link, sendEast, sendSouth bool) error {
	if err := Factorize(a, o); err != nil {
		return err
	}
	b := o.BlockSize
	for k := 0; k < b; k++ {
		start := SegmentStart(k, o.Chunk)
		if sendEast {
			for j := start; j < b; j++ {
				if err := east.Send(a[j*b+k]); err != nil {
					return err
				}
			}
		}
		if sendSouth {
			for i := start; i < b; i++ {
				if err := south.Send(a[k*b+i]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// RunTop updates a pivot-row block. It consumes the multiplier-column
// stream from the west, relays it east when relayEast is set, applies
// the received multipliers to its rows, and finally streams the fully
// updated block south row-major as the row panel for Inner nodes.
func RunTop(c []float64, o Options, west, east, south torus.Link, relayEast, sendSouth bool) error {
	if err := o.checkBlock(c); err != nil {
		return err
	}
	b := o.BlockSize
	seg := make([]float64, b)
	for k := 0; k < b; k++ {
		start := SegmentStart(k, o.Chunk)
		for j := start; j < b; j++ {
			v, err := west.Recv()
			if err != nil {
				return err
			}
			if relayEast {
				if err = east.Send(v); err != nil {
					return err
				}
			}
			seg[j] = v
		}
		// seg[j] for j > k holds the negated multiplier of row j;
		// the pivot-side entries j ≤ k ride along for the fixed count.
		for j := k + 1; j < b; j++ {
			m := seg[j]
			for i := 0; i < b; i++ {
				c[j*b+i] += m * c[k*b+i]
			}
		}
	}
	if sendSouth {
		for r := 0; r < b*b; r++ {
			if err := south.Send(c[r]); err != nil {
				return err
			}
		}
	}

	return nil
}

// RunLeft updates a pivot-column block. It consumes the pivot-row stream
// from the north, relays it south when relaySouth is set, scales each
// column by the received pivot (storing negated multipliers) and applies
// the pivot row to the trailing columns, then streams the fully updated
// block east column-major as the column panel for Inner nodes.
func RunLeft(r []float64, o Options, north, south, east torus.Link, relaySouth, sendEast bool) error {
	if err := o.checkBlock(r); err != nil {
		return err
	}
	b := o.BlockSize
	seg := make([]float64, b)
	for k := 0; k < b; k++ {
		start := SegmentStart(k, o.Chunk)
		for i := start; i < b; i++ {
			v, err := north.Recv()
			if err != nil {
				return err
			}
			if relaySouth {
				if err = south.Send(v); err != nil {
					return err
				}
			}
			seg[i] = v
		}
		// seg[i] for i ≥ k holds row k of U; seg[k] is the pivot.
		pivot := seg[k]
		if pivot == 0 {
			return ErrZeroPivot
		}
		for j := 0; j < b; j++ {
			r[j*b+k] = -r[j*b+k] / pivot
		}
		for j := 0; j < b; j++ {
			m := r[j*b+k]
			for i := k + 1; i < b; i++ {
				r[j*b+i] += m * seg[i]
			}
		}
	}
	if sendEast {
		for i := 0; i < b; i++ {
			for j := 0; j < b; j++ {
				if err := east.Send(r[j*b+i]); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// RunInner applies the rank-B trailing update to a block strictly below
// and right of the pivot. It reads the row panel from the north first,
// then the column panel from the west, relaying each onward as it is
// consumed, and accumulates block += column · row in ascending
// elimination order.
func RunInner(a []float64, o Options, north, west, south, east torus.Link, relaySouth, relayEast bool) error {
	if err := o.checkBlock(a); err != nil {
		return err
	}
	b := o.BlockSize
	row := make([]float64, b*b)
	col := make([]float64, b*b)
	for r := 0; r < b*b; r++ {
		v, err := north.Recv()
		if err != nil {
			return err
		}
		if relaySouth {
			if err = south.Send(v); err != nil {
				return err
			}
		}
		row[r] = v
	}
	for i := 0; i < b; i++ {
		for j := 0; j < b; j++ {
			v, err := west.Recv()
			if err != nil {
				return err
			}
			if relayEast {
				if err = east.Send(v); err != nil {
					return err
				}
			}
			col[j*b+i] = v
		}
	}
	for k := 0; k < b; k++ {
		for j := 0; j < b; j++ {
			m := col[j*b+k]
			for i := 0; i < b; i++ {
				a[j*b+i] += m * row[k*b+i]
			}
		}
	}

	return nil
}
