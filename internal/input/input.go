// Package input translates physical key events into CHIP-8 keypad
// states: the "key-event source" collaborator spec.md leaves external to
// the core. This package provides the terminal source; the windowed
// backend polls its keys in display.Window.PollKeys.
package input

import (
	"time"

	"github.com/nsf/termbox-go"

	"github.com/quietloop/chip8vm/internal/chip8"
)

// keyHoldDur is how long a termbox key-down event keeps a CHIP-8 key
// "pressed" before it auto-releases, since termbox never reports a
// matching key-up.
const keyHoldDur = 200 * time.Millisecond

// termboxKeyMap mirrors the classic 4x4 CHIP-8 keypad onto a QWERTY
// layout, matching the mapping used by this project's windowed backend
// so a ROM behaves the same under either presenter.
var termboxKeyMap = map[rune]chip8.Key{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// TermboxSource polls termbox key events and reflects them onto a
// chip8.Keypad. Because termbox only reports key-down edges, a pressed
// key is held for keyHoldDur and then released; callers
// that need true press/release tracking should prefer the pixelgl-backed
// Window in internal/display, which reports both edges.
type TermboxSource struct {
	kp *chip8.Keypad
}

// NewTermboxSource returns a source that reflects events onto kp.
func NewTermboxSource(kp *chip8.Keypad) *TermboxSource {
	return &TermboxSource{kp: kp}
}

// PollEvent blocks for the next termbox event and applies it to the
// keypad. It returns the rune that was pressed (0 for non-key events)
// so callers can watch for an escape/quit key alongside CHIP-8 input.
func (s *TermboxSource) PollEvent() rune {
	ev := termbox.PollEvent()
	if ev.Type != termbox.EventKey {
		return 0
	}
	key, ok := termboxKeyMap[ev.Ch]
	if !ok {
		return ev.Ch
	}
	s.kp.SetPressed(key)
	time.AfterFunc(keyHoldDur, func() { s.kp.SetReleased(key) })
	return ev.Ch
}
