// Package debugger wraps a chip8.VM with a LIFO snapshot stack so steps
// can be undone, and a callback hook for observing each step/undo.
//
// This mirrors the Debugger/states/callbacks split in the CHIP-8
// reference implementation this package's contract was distilled from:
// run_one snapshots before delegating to the machine, go_back_one pops
// and restores, and callbacks fire after the fact with the instruction
// that just ran (or is now current again, after an undo).
package debugger

import (
	"fmt"

	"github.com/quietloop/chip8vm/internal/chip8"
)

// EventKind distinguishes a forward step from an undo in OnExec callbacks.
type EventKind int

const (
	// Step indicates the callback fired after a forward Step.
	Step EventKind = iota
	// Undo indicates the callback fired after an Undo.
	Undo
)

func (k EventKind) String() string {
	switch k {
	case Step:
		return "step"
	case Undo:
		return "undo"
	default:
		return "unknown"
	}
}

// Callback observes a step or undo along with the instruction associated
// with it: for Step, the instruction that just ran; for Undo, the
// instruction now current after the restore.
type Callback func(kind EventKind, ins chip8.Instruction)

// Debugger sits between a host and a chip8.VM, recording a full snapshot
// before every Step so the host can Undo back to any earlier point. It
// owns no machine state of its own beyond the snapshot stack and the
// subscriber list - it only records and restores.
type Debugger struct {
	vm        *chip8.VM
	snapshots []chip8.MachineState
	callbacks []Callback
}

// New wraps vm for reversible, observable stepping.
func New(vm *chip8.VM) *Debugger {
	return &Debugger{vm: vm}
}

// OnExec subscribes a callback invoked after every Step and Undo (but
// not after StepSilent/UndoSilent).
func (d *Debugger) OnExec(cb Callback) {
	d.callbacks = append(d.callbacks, cb)
}

// Step snapshots the current state, executes one instruction via the
// wrapped VM, then fires OnExec callbacks with the instruction that ran.
// The decoded instruction is captured before execution so the callback
// sees what ran even when that instruction was the halting 0x0000 word.
func (d *Debugger) Step() (bool, error) {
	ins, decodeErr := d.vm.CurrentInstruction()

	more, err := d.StepSilent()

	if decodeErr == nil {
		for _, cb := range d.callbacks {
			cb(Step, ins)
		}
	}
	return more, err
}

// StepSilent is Step without firing callbacks.
func (d *Debugger) StepSilent() (bool, error) {
	d.snapshots = append(d.snapshots, d.vm.Snapshot())
	more, err := d.vm.Step()
	if err != nil {
		// A failed step already rolled the VM back to its pre-dispatch
		// state (see chip8.VM.Step), which keeps the PC advance past the
		// failing word. The snapshot we just pushed is dropped, so the
		// undo stack only holds steps that executed and Undo does not
		// revert that PC advance.
		d.snapshots = d.snapshots[:len(d.snapshots)-1]
	}
	return more, err
}

// Undo pops the most recent snapshot and restores every field of the
// machine to it, then fires OnExec callbacks with the instruction now
// current. It returns whether more snapshots remain (false on the
// snapshot that returns to the machine's pre-Step-1 state). Undo on an
// empty stack fails with ErrStackUnderflow and leaves the machine
// untouched.
func (d *Debugger) Undo() (bool, error) {
	more, err := d.UndoSilent()
	if err != nil {
		return more, err
	}

	ins, decodeErr := d.vm.CurrentInstruction()
	if decodeErr == nil {
		for _, cb := range d.callbacks {
			cb(Undo, ins)
		}
	}
	return more, nil
}

// UndoSilent is Undo without firing callbacks.
func (d *Debugger) UndoSilent() (bool, error) {
	if len(d.snapshots) == 0 {
		return false, fmt.Errorf("%w: no steps to undo", chip8.ErrStackUnderflow)
	}
	last := len(d.snapshots) - 1
	state := d.snapshots[last]
	d.snapshots = d.snapshots[:last]

	d.vm.LoadState(state)
	return len(d.snapshots) > 0, nil
}

// Depth reports how many snapshots are currently stacked, i.e. how many
// times Undo can be called before it fails.
func (d *Debugger) Depth() int {
	return len(d.snapshots)
}

// Live inspection and editing, delegated straight to the wrapped VM.

func (d *Debugger) Memory() [chip8.MemorySize]byte { return d.vm.Memory() }
func (d *Debugger) Register(i int) byte            { return d.vm.Register(i) }
func (d *Debugger) PC() uint16                      { return d.vm.PC() }
func (d *Debugger) Index() uint16                   { return d.vm.Index() }

func (d *Debugger) SetMemoryByte(addr uint16, value byte) {
	state := d.vm.Snapshot()
	state.Memory[addr] = value
	d.vm.LoadState(state)
}

func (d *Debugger) SetRegister(i int, value byte) {
	state := d.vm.Snapshot()
	state.V[i&0xF] = value
	d.vm.LoadState(state)
}

func (d *Debugger) SetPC(value uint16) {
	state := d.vm.Snapshot()
	state.PC = value
	d.vm.LoadState(state)
}

func (d *Debugger) SetIndexRegister(value uint16) {
	state := d.vm.Snapshot()
	state.I = value
	d.vm.LoadState(state)
}
