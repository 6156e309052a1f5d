package chip8

import "errors"

// Error taxonomy surfaced by the executor and stepper. Every failure a
// step() call can produce wraps one of these with errors.Is-compatible
// sentinels, so a host can branch on the kind without parsing strings.
var (
	// ErrUnsupportedOpcode is returned for the 0NNN machine-call form,
	// i.e. any category-0 word other than 00E0 and 00EE. Unknown low bits
	// in other categories fail with ErrBadInstructionFormat instead.
	ErrUnsupportedOpcode = errors.New("chip8: unsupported opcode")

	// ErrAddressOutOfRange is returned when a jump/call target, fetch
	// address, or memory read/write would fall outside 0..4095.
	ErrAddressOutOfRange = errors.New("chip8: address out of range")

	// ErrStackOverflow is returned when call is attempted with SP == 16.
	ErrStackOverflow = errors.New("chip8: stack overflow")

	// ErrStackUnderflow is returned when return is attempted with SP == 0,
	// or when the debugger undoes past an empty snapshot stack.
	ErrStackUnderflow = errors.New("chip8: stack underflow")

	// ErrBadInstructionFormat is returned for malformed category
	// 5/8/9/E/F low bits, including 5XY0/9XY0 with N != 0.
	ErrBadInstructionFormat = errors.New("chip8: bad instruction format")

	// ErrRomTooLarge is returned by LoadProgram when the ROM would not
	// fit in the program region.
	ErrRomTooLarge = errors.New("chip8: rom too large")
)
