package torus

import "errors"

// Sentinel errors for torus operations.
var (
	// ErrGridShape indicates non-positive grid dimensions.
	ErrGridShape = errors.New("torus: grid must have at least one row and one column")
	// ErrRecvOnSink indicates a Recv on a write-only sink or file mirror.
	ErrRecvOnSink = errors.New("torus: receive on write-only link")
	// ErrClosed indicates a Send or Recv on a closed link.
	ErrClosed = errors.New("torus: link is closed")
)

// Direction identifies one of the four links of a node.
type Direction int

const (
	// North points toward the node one grid row up.
	North Direction = iota
	// East points toward the node one grid column right.
	East
	// South points toward the node one grid row down.
	South
	// West points toward the node one grid column left.
	West

	numDirections = 4
)

// Opposite returns the direction a neighbor uses for the same physical link.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Link is an ordered, single-producer/single-consumer FIFO of float64
// values. Send never blocks; Recv blocks until a value is available.
// Implementations must preserve exact send order.
type Link interface {
	// Send enqueues one value.
	Send(v float64) error
	// Recv dequeues the oldest value, blocking until one is available.
	// Write-only implementations return ErrRecvOnSink.
	Recv() (float64, error)
	// Len reports the number of values currently buffered; sinks report the
	// total number of values ever sent.
	Len() int
	// Drain discards all buffered values (trial-boundary reset).
	Drain()
	// Connected reports whether a consumer exists on the other end.
	Connected() bool
	// Close releases any resources held by the link.
	Close() error
}
