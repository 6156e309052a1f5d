package chip8

// Key identifies one of the sixteen CHIP-8 hex keys, 0x0 through 0xF.
type Key byte

// Keypad tracks the sixteen pressed/released key states. It is
// independent of the executor and may be mutated by the host between
// Step calls; Step only reads it.
type Keypad struct {
	pressed [16]bool
}

// SetPressed marks key as currently held down.
func (k *Keypad) SetPressed(key Key) {
	k.pressed[key&0xF] = true
}

// SetReleased marks key as no longer held down.
func (k *Keypad) SetReleased(key Key) {
	k.pressed[key&0xF] = false
}

// IsPressed reports whether key is currently held down.
func (k *Keypad) IsPressed(key Key) bool {
	return k.pressed[key&0xF]
}

// firstPressed returns the lowest-numbered pressed key and true, or
// (0, false) if no key is pressed.
func (k *Keypad) firstPressed() (Key, bool) {
	for i, down := range k.pressed {
		if down {
			return Key(i), true
		}
	}
	return 0, false
}

// reset releases every key.
func (k *Keypad) reset() {
	k.pressed = [16]bool{}
}
