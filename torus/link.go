package torus

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sync"
)

//----------------------------------------------------------------------------//
// FIFO: in-memory production link
//----------------------------------------------------------------------------//

// FIFO is the in-memory Link used between connected grid neighbors.
// It is unbounded: Send never blocks, Recv blocks until data arrives.
type FIFO struct {
	mu     sync.Mutex
	filled *sync.Cond
	buf    []float64
	head   int
	closed bool
}

// NewFIFO returns an empty connected link.
func NewFIFO() *FIFO {
	f := &FIFO{}
	f.filled = sync.NewCond(&f.mu)

	return f
}

// Send enqueues v in FIFO order.
func (f *FIFO) Send(v float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.buf = append(f.buf, v)
	f.filled.Signal()

	return nil
}

// Recv blocks until a value is available and returns the oldest one.
// There is no timeout: liveness comes from the protocol's statically
// known send/receive counts, a missing send deadlocks the receive.
func (f *FIFO) Recv() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.head == len(f.buf) && !f.closed {
		f.filled.Wait()
	}
	if f.head == len(f.buf) {
		return 0, ErrClosed
	}
	v := f.buf[f.head]
	f.head++
	// Compact once the consumer catches up to bound memory across steps.
	if f.head == len(f.buf) {
		f.buf = f.buf[:0]
		f.head = 0
	}

	return v, nil
}

// Len reports the number of buffered, not-yet-received values.
func (f *FIFO) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.buf) - f.head
}

// Drain discards all buffered values.
func (f *FIFO) Drain() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buf = f.buf[:0]
	f.head = 0
}

// Connected reports true: a FIFO always joins two endpoints.
func (f *FIFO) Connected() bool { return true }

// Close wakes any blocked receiver and rejects further traffic.
func (f *FIFO) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.filled.Broadcast()

	return nil
}

//----------------------------------------------------------------------------//
// Sink: counting discard for unobserved edges
//----------------------------------------------------------------------------//

// Sink counts and discards every value sent to it. It stands in for an
// outward-facing edge link with no neighbor attached.
type Sink struct {
	mu    sync.Mutex
	count int
}

// NewSink returns an empty discard link.
func NewSink() *Sink { return &Sink{} }

// Send counts and drops v.
func (s *Sink) Send(_ float64) error {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()

	return nil
}

// Recv always fails: nothing ever arrives on an outward edge.
func (s *Sink) Recv() (float64, error) { return 0, ErrRecvOnSink }

// Len reports the total number of values ever sent.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count
}

// Drain resets the send counter.
func (s *Sink) Drain() {
	s.mu.Lock()
	s.count = 0
	s.mu.Unlock()
}

// Connected reports false: no consumer exists.
func (s *Sink) Connected() bool { return false }

// Close is a no-op.
func (s *Sink) Close() error { return nil }

//----------------------------------------------------------------------------//
// FileSink: append-only binary mirror for protocol verification
//----------------------------------------------------------------------------//

// FileSink mirrors every sent value to an append-only binary file of
// little-endian float64 values. Reading the file back with ReadMirror
// reproduces exactly the sequence and count of values sent.
type FileSink struct {
	mu    sync.Mutex
	file  *os.File
	count int
}

// NewFileSink creates (or truncates) the mirror file at path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("torus: create mirror %q: %w", path, err)
	}

	return &FileSink{file: f}, nil
}

// Send appends v to the mirror file.
func (fs *FileSink) Send(v float64) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file == nil {
		return ErrClosed
	}
	if err := binary.Write(fs.file, binary.LittleEndian, v); err != nil {
		return fmt.Errorf("torus: mirror write: %w", err)
	}
	fs.count++

	return nil
}

// Recv always fails: mirrors are write-only.
func (fs *FileSink) Recv() (float64, error) { return 0, ErrRecvOnSink }

// Len reports the total number of values mirrored.
func (fs *FileSink) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.count
}

// Drain truncates the mirror and resets the counter (trial boundary).
func (fs *FileSink) Drain() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file == nil {
		return
	}
	_ = fs.file.Truncate(0)
	_, _ = fs.file.Seek(0, 0)
	fs.count = 0
}

// Connected reports false: no consumer reads a mirror live.
func (fs *FileSink) Connected() bool { return false }

// Close flushes and closes the mirror file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.file == nil {
		return nil
	}
	err := fs.file.Close()
	fs.file = nil

	return err
}

// ReadMirror reads back a mirror file written by FileSink and returns the
// full value sequence in send order.
func ReadMirror(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("torus: read mirror %q: %w", path, err)
	}
	values := make([]float64, 0, len(raw)/8)
	for off := 0; off+8 <= len(raw); off += 8 {
		bits := binary.LittleEndian.Uint64(raw[off : off+8])
		values = append(values, math.Float64frombits(bits))
	}

	return values, nil
}
