package harness

import (
	"github.com/katalvlaran/lvlpack/kernel"
	"github.com/katalvlaran/lvlpack/torus"
)

// RoleCall describes one role execution for one block of one diagonal
// step. North and West are the incoming links, East and South the
// outgoing ones; EmitEast and EmitSouth gate the role's sends and relays
// in those directions.
type RoleCall struct {
	Role  kernel.Role
	Opts  kernel.Options
	Block []float64

	North, West torus.Link
	East, South torus.Link

	EmitEast  bool
	EmitSouth bool
}

// Program executes roles on some device. Implementations must honor the
// exact stream protocol of the kernel package.
type Program interface {
	// RunRole executes one role call to completion.
	RunRole(call RoleCall) error
}

// Device supplies an opaque execution context. Hardware implementations
// discover an accelerator and load a bitstream; the software device is
// self-contained.
type Device interface {
	// SelectDevice picks an execution device and returns its name.
	SelectDevice() (string, error)
	// LoadProgram prepares the role kernels from kernelFile.
	LoadProgram(kernelFile string) (Program, error)
}

// SoftwareDevice executes every role in-process via the kernel package.
type SoftwareDevice struct{}

// NewSoftwareDevice returns the default in-process device.
func NewSoftwareDevice() *SoftwareDevice { return &SoftwareDevice{} }

// SelectDevice implements Device.
func (*SoftwareDevice) SelectDevice() (string, error) { return "software", nil }

// LoadProgram implements Device. The kernels are built in, so the file
// argument is ignored.
func (*SoftwareDevice) LoadProgram(string) (Program, error) { return softwareProgram{}, nil }

type softwareProgram struct{}

// RunRole dispatches a call over the role tag, the explicit-switch
// counterpart of the grid-position classification.
func (softwareProgram) RunRole(call RoleCall) error {
	switch call.Role {
	case kernel.RoleLU:
		return kernel.RunLU(call.Block, call.Opts, call.East, call.South, call.EmitEast, call.EmitSouth)
	case kernel.RoleTop:
		return kernel.RunTop(call.Block, call.Opts, call.West, call.East, call.South, call.EmitEast, call.EmitSouth)
	case kernel.RoleLeft:
		return kernel.RunLeft(call.Block, call.Opts, call.North, call.South, call.East, call.EmitSouth, call.EmitEast)
	case kernel.RoleInner:
		return kernel.RunInner(call.Block, call.Opts, call.North, call.West, call.South, call.East, call.EmitSouth, call.EmitEast)
	default:
		return nil
	}
}
