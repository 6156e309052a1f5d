package display

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/quietloop/chip8vm/internal/chip8"
)

// onCell/offCell are the glyphs used to render a lit/unlit CHIP-8
// pixel as two adjacent terminal cells (character cells are
// roughly twice as tall as they are wide, so two columns per pixel keeps
// the aspect ratio sane).
const onCell, offCell = '█', ' '

// Terminal is a termbox-go frame presenter, for headless or CI use where
// opening a pixelgl window isn't possible. It covers the same "frame
// presenter" role as Window but never needs a GPU context.
type Terminal struct{}

// NewTerminal initializes termbox for rendering. Callers must call Close
// when done.
func NewTerminal() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("display: termbox init: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Terminal{}, nil
}

// Close releases the terminal back to its normal mode.
func (t *Terminal) Close() {
	termbox.Close()
}

// Draw renders fb into the terminal, two character cells per pixel.
func (t *Terminal) Draw(fb chip8.FrameBuffer) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for x := 0; x < chip8.ScreenWidth; x++ {
		for y := 0; y < chip8.ScreenHeight; y++ {
			ch := rune(offCell)
			if fb[x][y] == 1 {
				ch = onCell
			}
			termbox.SetCell(x*2, y, ch, termbox.ColorWhite, termbox.ColorDefault)
			termbox.SetCell(x*2+1, y, ch, termbox.ColorWhite, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}
