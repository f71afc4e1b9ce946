package kernel

import "errors"

// Sentinel errors for kernel operations.
var (
	// ErrBlockShape indicates a buffer whose length is not BlockSize².
	ErrBlockShape = errors.New("kernel: block buffer length must equal BlockSize*BlockSize")
	// ErrChunkGranularity indicates a chunk that does not divide the block size.
	ErrChunkGranularity = errors.New("kernel: chunk must evenly divide the block size")
	// ErrZeroPivot indicates an exactly zero diagonal entry during elimination.
	ErrZeroPivot = errors.New("kernel: zero pivot encountered")
)

// Role tags the behavior of one block for one diagonal step.
type Role int

const (
	// RoleIdle marks a block outside the active sub-grid.
	RoleIdle Role = iota
	// RoleLU factorizes the pivot block of the step.
	RoleLU
	// RoleTop updates a block in the pivot row, right of the pivot.
	RoleTop
	// RoleLeft updates a block in the pivot column, below the pivot.
	RoleLeft
	// RoleInner applies the rank-B trailing update.
	RoleInner
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleLU:
		return "lu"
	case RoleTop:
		return "top"
	case RoleLeft:
		return "left"
	case RoleInner:
		return "inner"
	default:
		return "idle"
	}
}

// Classify derives the role of block (blockRow, blockCol) for diagonal
// step s. The active sub-grid for step s is the trailing square with
// both coordinates ≥ s; everything outside it is idle.
// Pure function of its inputs.
func Classify(blockRow, blockCol, step int) Role {
	switch {
	case blockRow < step || blockCol < step:
		return RoleIdle
	case blockRow == step && blockCol == step:
		return RoleLU
	case blockRow == step:
		return RoleTop
	case blockCol == step:
		return RoleLeft
	default:
		return RoleInner
	}
}

// Options tunes the block kernels.
type Options struct {
	// BlockSize is the side length B of a block. It must match the
	// tiling granularity the whole run was partitioned with.
	BlockSize int
	// Chunk is the register-blocking granularity of the factor stream;
	// it must evenly divide BlockSize.
	Chunk int
}

// DefaultOptions mirrors the tiling of the original hardware kernels.
func DefaultOptions() Options {
	return Options{BlockSize: 16, Chunk: 8}
}

// Validate fails fast on geometry the kernels cannot run with.
func (o Options) Validate() error {
	if o.BlockSize <= 0 {
		return ErrBlockShape
	}
	if o.Chunk <= 0 || o.BlockSize%o.Chunk != 0 {
		return ErrChunkGranularity
	}

	return nil
}

// checkBlock validates one local block buffer against the options.
func (o Options) checkBlock(a []float64) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(a) != o.BlockSize*o.BlockSize {
		return ErrBlockShape
	}

	return nil
}
