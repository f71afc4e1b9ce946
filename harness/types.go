package harness

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvlpack/kernel"
	"github.com/katalvlaran/lvlpack/partition"
)

// Sentinel errors for harness configuration.
var (
	// ErrRepetitions indicates a non-positive repetition count.
	ErrRepetitions = errors.New("harness: repetitions must be positive")
	// ErrPolicyGrid indicates the diagonal policy on a multi-node grid.
	// Diagonal bands do not keep block neighbors on torus neighbors, so
	// the distributed pass only supports it on a single node.
	ErrPolicyGrid = errors.New("harness: diagonal policy requires a 1x1 grid")
)

// Config is the full benchmark surface. All validation happens up front;
// a Config that passes Validate cannot fail on geometry later.
type Config struct {
	// MatrixSize is N, the side of the global matrix.
	MatrixSize int
	// BlockSize is B, the side of one block; must divide MatrixSize.
	BlockSize int
	// Chunk is the factor-stream granularity; must divide BlockSize.
	Chunk int
	// GridRows and GridCols are the node grid shape (P, Q).
	GridRows int
	GridCols int
	// Repetitions is the number of timed trials.
	Repetitions int
	// Policy selects the block distribution.
	Policy partition.Policy
	// DiagonallyDominant forces a dominant diagonal on the generated
	// input; required for an accurate pivot-free factorization.
	DiagonallyDominant bool
	// Seed drives the deterministic input generator.
	Seed int64
	// KernelFile is handed to Device.LoadProgram; the software device
	// ignores it.
	KernelFile string
}

// DefaultConfig returns a small, numerically safe single-node benchmark.
func DefaultConfig() Config {
	return Config{
		MatrixSize:         64,
		BlockSize:          16,
		Chunk:              8,
		GridRows:           1,
		GridCols:           1,
		Repetitions:        10,
		Policy:             partition.PolicyPQ,
		DiagonallyDominant: true,
		Seed:               1,
	}
}

// Validate fails fast on any configuration the run could not complete.
func (c Config) Validate() error {
	if c.Repetitions <= 0 {
		return ErrRepetitions
	}
	o := kernel.Options{BlockSize: c.BlockSize, Chunk: c.Chunk}
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := partition.New(c.MatrixSize, c.BlockSize, c.GridRows, c.GridCols, c.Policy); err != nil {
		return err
	}
	if c.Policy == partition.PolicyDiagonal && (c.GridRows != 1 || c.GridCols != 1) {
		return ErrPolicyGrid
	}

	return nil
}

// Trial is the timing of one repetition.
type Trial struct {
	// Transfer covers block scatter and gather.
	Transfer time.Duration
	// Calc covers the full multi-step factorization pass.
	Calc time.Duration
}

// Timings is the ordered per-repetition timing sequence.
type Timings []Trial

// MeanTransfer returns the average transfer time, 0 for an empty sequence.
func (ts Timings) MeanTransfer() time.Duration {
	return mean(ts, func(t Trial) time.Duration { return t.Transfer })
}

// MeanCalc returns the average calculation time, 0 for an empty sequence.
func (ts Timings) MeanCalc() time.Duration {
	return mean(ts, func(t Trial) time.Duration { return t.Calc })
}

// MinTransfer returns the fastest transfer time, 0 for an empty sequence.
func (ts Timings) MinTransfer() time.Duration {
	return minimum(ts, func(t Trial) time.Duration { return t.Transfer })
}

// MinCalc returns the fastest calculation time, 0 for an empty sequence.
func (ts Timings) MinCalc() time.Duration {
	return minimum(ts, func(t Trial) time.Duration { return t.Calc })
}

func mean(ts Timings, get func(Trial) time.Duration) time.Duration {
	if len(ts) == 0 {
		return 0
	}
	var sum time.Duration
	for _, t := range ts {
		sum += get(t)
	}

	return sum / time.Duration(len(ts))
}

func minimum(ts Timings, get func(Trial) time.Duration) time.Duration {
	if len(ts) == 0 {
		return 0
	}
	best := get(ts[0])
	for _, t := range ts[1:] {
		if v := get(t); v < best {
			best = v
		}
	}

	return best
}

// Result is the benchmark outcome.
type Result struct {
	// Device names the selected execution device.
	Device string
	// Timings holds exactly Repetitions entries.
	Timings Timings
	// MaxError is the maximum absolute element-wise difference between
	// the recombined distributed factorization and the reference one.
	MaxError float64
	// Solution is the substitution result computed from the distributed
	// factorization and the generated right-hand side.
	Solution []float64
}
