package harness

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlpack/kernel"
	"github.com/katalvlaran/lvlpack/partition"
	"github.com/katalvlaran/lvlpack/solver"
	"github.com/katalvlaran/lvlpack/torus"
)

// nodeWorker is the per-node execution state: grid position, the local
// block buffer laid out by the partition plan, and the four link
// endpoints.
type nodeWorker struct {
	id    partition.NodeID
	local []float64
	node  *torus.Node
}

// Run executes the benchmark on the default software device.
func Run(cfg Config) (*Result, error) {
	return RunOn(cfg, NewSoftwareDevice())
}

// RunOn executes cfg.Repetitions timed trials on dev and validates the
// distributed factorization against the sequential reference.
//
// Per trial: the pristine matrix is snapshotted into node-local buffers
// (transfer time), every node worker passes the start barrier and runs
// all diagonal steps over the torus (calculation time), and the blocks
// are gathered back (transfer time). The links are drained at every
// trial boundary.
func RunOn(cfg Config, dev Device) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	plan, err := partition.New(cfg.MatrixSize, cfg.BlockSize, cfg.GridRows, cfg.GridCols, cfg.Policy)
	if err != nil {
		return nil, err
	}
	opts := kernel.Options{BlockSize: cfg.BlockSize, Chunk: cfg.Chunk}

	name, err := dev.SelectDevice()
	if err != nil {
		return nil, fmt.Errorf("harness: select device: %w", err)
	}
	prog, err := dev.LoadProgram(cfg.KernelFile)
	if err != nil {
		return nil, fmt.Errorf("harness: load program: %w", err)
	}

	n := cfg.MatrixSize
	pristine, rhs, err := solver.GenerateInput(n, cfg.Seed, cfg.DiagonallyDominant)
	if err != nil {
		return nil, err
	}
	oracle := append([]float64(nil), pristine...)
	if err = solver.Gefa(oracle, n); err != nil {
		return nil, err
	}

	// The block-cyclic relay chains wrap around both axes whenever the
	// block grid is larger than the node grid, so the production grid is
	// always a full torus.
	grid, err := torus.NewGrid(cfg.GridRows, cfg.GridCols, torus.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	defer grid.Close()

	workers := make([]*nodeWorker, 0, cfg.GridRows*cfg.GridCols)
	for r := 0; r < cfg.GridRows; r++ {
		for c := 0; c < cfg.GridCols; c++ {
			tn, err := grid.At(r, c)
			if err != nil {
				return nil, err
			}
			id := partition.NodeID{Row: r, Col: c}
			workers = append(workers, &nodeWorker{
				id:    id,
				local: make([]float64, plan.LocalBufferLen(id)),
				node:  tn,
			})
		}
	}

	timings := make(Timings, 0, cfg.Repetitions)
	gathered := make([]float64, n*n)
	for rep := 0; rep < cfg.Repetitions; rep++ {
		grid.Drain()

		start := time.Now()
		if err = scatter(plan, pristine, workers); err != nil {
			return nil, err
		}
		transfer := time.Since(start)

		barrier := NewBarrier(len(workers))
		start = time.Now()
		var g errgroup.Group
		for _, w := range workers {
			w := w
			g.Go(func() error {
				barrier.Await()

				return w.factorize(plan, opts, prog)
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
		calc := time.Since(start)

		start = time.Now()
		if err = gather(plan, gathered, workers); err != nil {
			return nil, err
		}
		transfer += time.Since(start)

		timings = append(timings, Trial{Transfer: transfer, Calc: calc})
	}

	solution := append([]float64(nil), rhs...)
	if err = solver.Gesl(gathered, solution, n); err != nil {
		return nil, err
	}

	return &Result{
		Device:   name,
		Timings:  timings,
		MaxError: solver.MaxAbsDiff(gathered, oracle),
		Solution: solution,
	}, nil
}

// factorize runs all diagonal steps for one node: its owned active
// blocks in ascending (row, col) order per step, which is a topological
// order of the wavefront dependencies, so every receive is matched by an
// earlier send and the pass cannot deadlock.
func (w *nodeWorker) factorize(plan *partition.Plan, opts kernel.Options, prog Program) error {
	nb := plan.NumBlocksPerSide()
	b := plan.BlockSize()
	for s := 0; s < nb; s++ {
		for _, id := range plan.Owned(w.id) {
			role := kernel.Classify(id.Row, id.Col, s)
			if role == kernel.RoleIdle {
				continue
			}
			idx, err := plan.LocalIndex(id)
			if err != nil {
				return err
			}
			call := RoleCall{
				Role:  role,
				Opts:  opts,
				Block: w.local[idx*b*b : (idx+1)*b*b],
				North: w.node.In(torus.North),
				West:  w.node.In(torus.West),
				East:  w.node.Out(torus.East),
				South: w.node.Out(torus.South),
				// Emit toward an active consumer or an observable edge;
				// never into an unconsumed wrap link.
				EmitEast:  id.Col < nb-1 || !w.node.Out(torus.East).Connected(),
				EmitSouth: id.Row < nb-1 || !w.node.Out(torus.South).Connected(),
			}
			if err = prog.RunRole(call); err != nil {
				return fmt.Errorf("harness: node (%d,%d) block (%d,%d) step %d: %w",
					w.id.Row, w.id.Col, id.Row, id.Col, s, err)
			}
		}
	}

	return nil
}

// scatter snapshots the pristine matrix into the node-local buffers.
func scatter(plan *partition.Plan, global []float64, workers []*nodeWorker) error {
	n, b := plan.MatrixSize(), plan.BlockSize()
	for _, w := range workers {
		for idx, id := range plan.Owned(w.id) {
			tile := w.local[idx*b*b : (idx+1)*b*b]
			if err := solver.CopyBlockOut(global, n, b, id.Row, id.Col, tile); err != nil {
				return err
			}
		}
	}

	return nil
}

// gather recombines the node-local buffers into the global matrix.
func gather(plan *partition.Plan, global []float64, workers []*nodeWorker) error {
	n, b := plan.MatrixSize(), plan.BlockSize()
	for _, w := range workers {
		for idx, id := range plan.Owned(w.id) {
			tile := w.local[idx*b*b : (idx+1)*b*b]
			if err := solver.CopyBlockIn(global, n, b, id.Row, id.Col, tile); err != nil {
				return err
			}
		}
	}

	return nil
}
