// Package display holds frame presenters: hosts that poll a chip8.VM's
// frame buffer and paint it somewhere. Neither backend here is imported
// by the core - the core only exposes FrameBuffer(), and these are the
// out-of-scope "frame presenter" collaborator spec.md describes.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/quietloop/chip8vm/internal/chip8"
)

const (
	cols          float64 = chip8.ScreenWidth
	rows          float64 = chip8.ScreenHeight
	screenWidth   float64 = 1024
	screenHeight  float64 = 768
	keyRepeatDur          = time.Second / 5
)

// KeyMap translates a CHIP-8 hex key to the pixelgl button chippy's
// original window bound it to.
var KeyMap = map[chip8.Key]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
	0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
	0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
	0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
	0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window is a pixelgl-backed frame presenter. It embeds *pixelgl.Window
// so callers can still reach Closed/JustPressed/JustReleased directly.
type Window struct {
	*pixelgl.Window
	KeysDown [16]*time.Ticker
}

// NewWindow opens a fixed-size pixelgl window sized for a 64x32 grid.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: new window: %w", err)
	}
	return &Window{Window: w}, nil
}

// Draw clears the window and redraws every lit pixel of fb as a filled
// rectangle, flipping the CHIP-8 top-down y axis to pixelgl's bottom-up one.
func (w *Window) Draw(fb chip8.FrameBuffer) {
	w.Clear(colornames.Black)

	imd := imdraw.New(nil)
	imd.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := screenWidth/cols, screenHeight/rows

	for x := 0; x < chip8.ScreenWidth; x++ {
		for y := 0; y < chip8.ScreenHeight; y++ {
			if fb[x][y] == 0 {
				continue
			}
			flippedY := chip8.ScreenHeight - 1 - y
			imd.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			imd.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			imd.Rectangle(0)
		}
	}

	imd.Draw(w)
	w.Update()
}

// PollKeys reads pixelgl's edge-triggered key events into kp, holding a
// key down across frames with a repeat ticker the way the teacher's
// window did, so a single physical press reads as "pressed" for more
// than one Step.
func (w *Window) PollKeys(kp *chip8.Keypad) {
	for hexKey, button := range KeyMap {
		if w.JustReleased(button) {
			if t := w.KeysDown[hexKey]; t != nil {
				t.Stop()
				w.KeysDown[hexKey] = nil
			}
			kp.SetReleased(hexKey)
			continue
		}
		if w.JustPressed(button) {
			if w.KeysDown[hexKey] == nil {
				w.KeysDown[hexKey] = time.NewTicker(keyRepeatDur)
			}
			kp.SetPressed(hexKey)
		}
		if w.KeysDown[hexKey] == nil {
			continue
		}
		select {
		case <-w.KeysDown[hexKey].C:
			kp.SetPressed(hexKey)
		default:
		}
	}
	w.UpdateInput()
}
