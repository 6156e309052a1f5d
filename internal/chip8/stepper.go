package chip8

import "fmt"

// Step fetches and executes one instruction. It returns false, without
// error, exactly when the fetched word is 0x0000 (program end). While
// the machine is blocked on a "wait for key" opcode, PC does not advance
// past that instruction - each call re-fetches and re-executes it until
// a key is pressed, at which point the opcode's own handler clears
// Blocked and PC proceeds normally.
//
// The host must not call Step re-entrantly; a single Step's fetch, PC
// update, and opcode effects are sequentially consistent and fully
// visible on return.
func (vm *VM) Step() (bool, error) {
	word, err := vm.fetchAt(vm.pc)
	if err != nil {
		return true, err
	}
	if word == 0x0000 {
		return false, nil
	}
	ins := Decode(word)

	pcBeforeAdvance := vm.pc
	vm.pc += 2

	snapshot := vm.Snapshot()
	if err := vm.execute(ins); err != nil {
		vm.LoadState(snapshot)
		return true, err
	}

	// An opcode that leaves the machine blocked (only FX0A does) must
	// not be considered consumed: rewind so the next Step re-fetches it.
	if vm.blocked {
		vm.pc = pcBeforeAdvance
	}
	return true, nil
}

func (vm *VM) readByte(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, fmt.Errorf("%w: read at %#04x", ErrAddressOutOfRange, addr)
	}
	return vm.memory[addr], nil
}

func (vm *VM) writeByte(addr uint16, value byte) error {
	if int(addr) >= MemorySize {
		return fmt.Errorf("%w: write at %#04x", ErrAddressOutOfRange, addr)
	}
	vm.memory[addr] = value
	return nil
}
