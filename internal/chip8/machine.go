// Package chip8 implements the CHIP-8 virtual machine core: memory,
// registers, the instruction decoder, the opcode executors, the
// step/blocked state machine, and the keypad model. The package knows
// nothing about how it is hosted - no file I/O, no windowing, no audio.
// Hosts drive it by calling LoadProgram, Step, DecrementTimers, and the
// Keypad setters.
package chip8

import (
	"fmt"
)

// Sizing constants fixed by the CHIP-8 architecture.
const (
	MemorySize      = 4096
	NumRegisters    = 16
	StackSize       = 16
	ProgramStart    = 0x200
	ScreenWidth     = 64
	ScreenHeight    = 32
	MaxProgramBytes = MemorySize - ProgramStart
)

// FrameBuffer is the 64x32 monochrome pixel grid, indexed [x][y] with the
// origin at the top left.
type FrameBuffer [ScreenWidth][ScreenHeight]byte

// RandByte returns a uniformly distributed byte. CXNN depends on it; the
// default VM uses math/rand, but tests substitute a deterministic source
// via WithRand.
type RandByte func() byte

// VM is the CHIP-8 machine state. The zero value is not ready to run
// (it has no random byte source, which Reset does not set); use New.
type VM struct {
	memory  [MemorySize]byte
	v       [NumRegisters]byte
	i       uint16
	pc      uint16
	stack   [StackSize]uint16
	sp      byte
	fb      FrameBuffer
	delay   byte
	sound   byte
	blocked bool

	Keypad Keypad

	quirks QuirkProfile
	rand   RandByte
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithQuirks selects a non-default dialect for the quirk-sensitive opcodes.
func WithQuirks(q QuirkProfile) Option {
	return func(vm *VM) { vm.quirks = q }
}

// WithRand substitutes the VM's random byte source, for deterministic tests.
func WithRand(r RandByte) Option {
	return func(vm *VM) { vm.rand = r }
}

// New returns a freshly reset VM.
func New(opts ...Option) *VM {
	vm := &VM{rand: defaultRandByte}
	for _, opt := range opts {
		opt(vm)
	}
	vm.Reset()
	return vm
}

// Reset zeroes memory, writes the font table at fontStart, zeroes
// registers and the stack, clears the frame buffer, sets PC to
// ProgramStart, zeroes I/SP/timers, releases all keys, and clears the
// blocked flag.
func (vm *VM) Reset() {
	vm.memory = [MemorySize]byte{}
	copy(vm.memory[fontStart:], fontSet[:])

	vm.v = [NumRegisters]byte{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.stack = [StackSize]uint16{}
	vm.sp = 0
	vm.fb = FrameBuffer{}
	vm.delay = 0
	vm.sound = 0
	vm.blocked = false
	vm.Keypad.reset()
}

// LoadProgram resets the machine, then copies rom into memory starting
// at ProgramStart. It fails with ErrRomTooLarge without mutating state
// if rom would not fit.
func (vm *VM) LoadProgram(rom []byte) error {
	if len(rom) > MaxProgramBytes {
		return fmt.Errorf("%w: %d bytes exceeds max %d", ErrRomTooLarge, len(rom), MaxProgramBytes)
	}
	vm.Reset()
	copy(vm.memory[ProgramStart:], rom)
	return nil
}

// MachineState is a verbatim snapshot of every piece of VM state the
// debugger needs to restore on undo.
type MachineState struct {
	Memory  [MemorySize]byte
	V       [NumRegisters]byte
	Stack   [StackSize]uint16
	FB      FrameBuffer
	PC      uint16
	I       uint16
	SP      byte
	Delay   byte
	Sound   byte
	Blocked bool
}

// Snapshot returns a verbatim copy of the current state.
func (vm *VM) Snapshot() MachineState {
	return MachineState{
		Memory:  vm.memory,
		V:       vm.v,
		Stack:   vm.stack,
		FB:      vm.fb,
		PC:      vm.pc,
		I:       vm.i,
		SP:      vm.sp,
		Delay:   vm.delay,
		Sound:   vm.sound,
		Blocked: vm.blocked,
	}
}

// LoadState copies every field of snapshot into the machine verbatim.
func (vm *VM) LoadState(snapshot MachineState) {
	vm.memory = snapshot.Memory
	vm.v = snapshot.V
	vm.stack = snapshot.Stack
	vm.fb = snapshot.FB
	vm.pc = snapshot.PC
	vm.i = snapshot.I
	vm.sp = snapshot.SP
	vm.delay = snapshot.Delay
	vm.sound = snapshot.Sound
	vm.blocked = snapshot.Blocked
}

// DecrementTimers saturating-subtracts n from the delay and sound timers
// independently, clamped to 0. It is the only way wall-clock time enters
// the core.
func (vm *VM) DecrementTimers(n byte) {
	vm.delay = saturatingSub(vm.delay, n)
	vm.sound = saturatingSub(vm.sound, n)
}

func saturatingSub(v, n byte) byte {
	if n >= v {
		return 0
	}
	return v - n
}

// Pure accessors. Mutators beyond these live on the executor and are
// invoked only during Step or by the debugger's restore path.

func (vm *VM) FrameBuffer() FrameBuffer { return vm.fb }
func (vm *VM) Memory() [MemorySize]byte { return vm.memory }
func (vm *VM) Register(i int) byte      { return vm.v[i&0xF] }
func (vm *VM) PC() uint16               { return vm.pc }
func (vm *VM) Index() uint16            { return vm.i }
func (vm *VM) StackPointer() byte       { return vm.sp }
func (vm *VM) DelayTimer() byte         { return vm.delay }
func (vm *VM) SoundTimer() byte         { return vm.sound }
func (vm *VM) Blocked() bool            { return vm.blocked }
func (vm *VM) Quirks() QuirkProfile     { return vm.quirks }

// CurrentInstruction decodes the instruction at PC without side effects,
// for debugger event callbacks.
func (vm *VM) CurrentInstruction() (Instruction, error) {
	word, err := vm.fetchAt(vm.pc)
	if err != nil {
		return Instruction{}, err
	}
	return Decode(word), nil
}

func (vm *VM) fetchAt(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: fetch at %#04x", ErrAddressOutOfRange, addr)
	}
	return uint16(vm.memory[addr])<<8 | uint16(vm.memory[addr+1]), nil
}
