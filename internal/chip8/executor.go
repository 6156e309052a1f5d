package chip8

import (
	"fmt"

	"github.com/quietloop/chip8vm/internal/bits"
)

// execute dispatches ins to its category handler. Handlers return an
// error for any of the documented failure cases; Step rolls back the
// entire snapshot taken before this call when that happens, so a
// handler never needs to undo its own partial writes.
func (vm *VM) execute(ins Instruction) error {
	switch ins.Category {
	case 0x0:
		return vm.exec0(ins)
	case 0x1:
		return vm.execJump(ins)
	case 0x2:
		return vm.execCall(ins)
	case 0x3:
		if vm.v[ins.X] == ins.NN {
			vm.pc += 2
		}
		return nil
	case 0x4:
		if vm.v[ins.X] != ins.NN {
			vm.pc += 2
		}
		return nil
	case 0x5:
		return vm.execSkipEqReg(ins)
	case 0x6:
		vm.v[ins.X] = ins.NN
		return nil
	case 0x7:
		vm.v[ins.X] += ins.NN
		return nil
	case 0x8:
		return vm.exec8(ins)
	case 0x9:
		return vm.execSkipNeqReg(ins)
	case 0xA:
		vm.i = ins.NNN
		return nil
	case 0xB:
		vm.pc = uint16(vm.v[0]) + ins.NNN
		return nil
	case 0xC:
		vm.v[ins.X] = vm.rand() & ins.NN
		return nil
	case 0xD:
		return vm.execDraw(ins)
	case 0xE:
		return vm.execKeySkip(ins)
	case 0xF:
		return vm.execF(ins)
	default:
		return fmt.Errorf("%w: %#04x", ErrUnsupportedOpcode, ins.Raw)
	}
}

func (vm *VM) exec0(ins Instruction) error {
	switch ins.Raw {
	case 0x00E0:
		vm.fb = FrameBuffer{}
		return nil
	case 0x00EE:
		if vm.sp == 0 {
			return fmt.Errorf("%w: return with empty stack", ErrStackUnderflow)
		}
		vm.sp--
		vm.pc = vm.stack[vm.sp]
		return nil
	default:
		return fmt.Errorf("%w: machine call %#04x", ErrUnsupportedOpcode, ins.Raw)
	}
}

func (vm *VM) execJump(ins Instruction) error {
	if ins.NNN >= MemorySize {
		return fmt.Errorf("%w: jump to %#04x", ErrAddressOutOfRange, ins.NNN)
	}
	vm.pc = ins.NNN
	return nil
}

func (vm *VM) execCall(ins Instruction) error {
	if vm.sp >= StackSize {
		return fmt.Errorf("%w: call at depth %d", ErrStackOverflow, vm.sp)
	}
	if ins.NNN >= MemorySize {
		return fmt.Errorf("%w: call to %#04x", ErrAddressOutOfRange, ins.NNN)
	}
	vm.stack[vm.sp] = vm.pc
	vm.sp++
	vm.pc = ins.NNN
	return nil
}

func (vm *VM) execSkipEqReg(ins Instruction) error {
	if ins.N != 0 {
		return fmt.Errorf("%w: 5XY%X", ErrBadInstructionFormat, ins.N)
	}
	if vm.v[ins.X] == vm.v[ins.Y] {
		vm.pc += 2
	}
	return nil
}

func (vm *VM) execSkipNeqReg(ins Instruction) error {
	if ins.N != 0 {
		return fmt.Errorf("%w: 9XY%X", ErrBadInstructionFormat, ins.N)
	}
	if vm.v[ins.X] != vm.v[ins.Y] {
		vm.pc += 2
	}
	return nil
}

func (vm *VM) exec8(ins Instruction) error {
	x, y := ins.X, ins.Y
	clearsFlag := vm.quirks == ClassicCOSMAC

	switch ins.N {
	case 0x0:
		vm.v[x] = vm.v[y]
	case 0x1:
		vm.v[x] |= vm.v[y]
		if clearsFlag {
			vm.v[0xF] = 0
		}
	case 0x2:
		vm.v[x] &= vm.v[y]
		if clearsFlag {
			vm.v[0xF] = 0
		}
	case 0x3:
		vm.v[x] ^= vm.v[y]
		if clearsFlag {
			vm.v[0xF] = 0
		}
	case 0x4:
		sum := uint16(vm.v[x]) + uint16(vm.v[y])
		vm.v[x] = byte(sum)
		if sum > 0xFF {
			vm.v[0xF] = 1
		} else {
			vm.v[0xF] = 0
		}
	case 0x5:
		vx, vy := vm.v[x], vm.v[y]
		vm.v[x] = vx - vy
		if vx >= vy {
			vm.v[0xF] = 1
		} else {
			vm.v[0xF] = 0
		}
	case 0x6:
		var operand byte
		if vm.quirks == ClassicCOSMAC {
			vm.v[x] = vm.v[y]
			operand = vm.v[x]
		} else {
			operand = vm.v[x]
		}
		lsb := operand & 1
		vm.v[x] = operand >> 1
		vm.v[0xF] = lsb
	case 0x7:
		vx, vy := vm.v[x], vm.v[y]
		vm.v[x] = vy - vx
		if vy >= vx {
			vm.v[0xF] = 1
		} else {
			vm.v[0xF] = 0
		}
	case 0xE:
		var operand byte
		if vm.quirks == ClassicCOSMAC {
			vm.v[x] = vm.v[y]
			operand = vm.v[x]
		} else {
			operand = vm.v[x]
		}
		msb := (operand >> 7) & 1
		vm.v[x] = operand << 1
		vm.v[0xF] = msb
	default:
		return fmt.Errorf("%w: 8XY%X", ErrBadInstructionFormat, ins.N)
	}
	return nil
}

func (vm *VM) execDraw(ins Instruction) error {
	xs := uint16(vm.v[ins.X]) % ScreenWidth
	ys := uint16(vm.v[ins.Y]) % ScreenHeight

	collision := byte(0)
	for r := uint16(0); r < uint16(ins.N); r++ {
		rowBits, err := vm.readByte(vm.i + r)
		if err != nil {
			return err
		}
		for b := uint16(0); b < 8; b++ {
			if rowBits&(0x80>>b) == 0 {
				continue
			}
			px := (xs + b) % ScreenWidth
			py := (ys + r) % ScreenHeight
			if vm.fb[px][py] == 1 {
				collision = 1
			}
			vm.fb[px][py] ^= 1
		}
	}
	vm.v[0xF] = collision
	return nil
}

func (vm *VM) execKeySkip(ins Instruction) error {
	switch ins.NN {
	case 0x9E:
		if vm.Keypad.IsPressed(Key(vm.v[ins.X])) {
			vm.pc += 2
		}
	case 0xA1:
		if !vm.Keypad.IsPressed(Key(vm.v[ins.X])) {
			vm.pc += 2
		}
	default:
		return fmt.Errorf("%w: EX%02X", ErrBadInstructionFormat, ins.NN)
	}
	return nil
}

func (vm *VM) execF(ins Instruction) error {
	x := ins.X
	switch ins.NN {
	case 0x07:
		vm.v[x] = vm.delay
	case 0x0A:
		if key, ok := vm.Keypad.firstPressed(); ok {
			vm.v[x] = byte(key)
			vm.blocked = false
		} else {
			vm.blocked = true
		}
	case 0x15:
		vm.delay = vm.v[x]
	case 0x18:
		vm.sound = vm.v[x]
	case 0x1E:
		vm.i += uint16(vm.v[x])
	case 0x29:
		vm.i = fontStart + uint16(vm.v[x]&0xF)*fontBytesPerDigit
	case 0x33:
		h, t, o := bits.BCD(vm.v[x])
		if err := vm.writeByte(vm.i, h); err != nil {
			return err
		}
		if err := vm.writeByte(vm.i+1, t); err != nil {
			return err
		}
		if err := vm.writeByte(vm.i+2, o); err != nil {
			return err
		}
	case 0x55:
		for i := byte(0); i <= x; i++ {
			if err := vm.writeByte(vm.i+uint16(i), vm.v[i]); err != nil {
				return err
			}
		}
		if vm.quirks != SuperChip {
			vm.i += uint16(x) + 1
		}
	case 0x65:
		for i := byte(0); i <= x; i++ {
			b, err := vm.readByte(vm.i + uint16(i))
			if err != nil {
				return err
			}
			vm.v[i] = b
		}
		if vm.quirks != SuperChip {
			vm.i += uint16(x) + 1
		}
	default:
		return fmt.Errorf("%w: FX%02X", ErrBadInstructionFormat, ins.NN)
	}
	return nil
}
