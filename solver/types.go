package solver

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrMatrixShape indicates a buffer whose length is not n×n.
	ErrMatrixShape = errors.New("solver: matrix buffer length must equal n*n")
	// ErrVectorShape indicates a vector whose length is not n.
	ErrVectorShape = errors.New("solver: vector length must equal n")
	// ErrBlockShape indicates tile geometry that does not fit the matrix.
	ErrBlockShape = errors.New("solver: block does not fit the global matrix")
	// ErrZeroPivot indicates an exactly zero diagonal entry during the
	// pivot-free elimination.
	ErrZeroPivot = errors.New("solver: zero pivot encountered")
)
