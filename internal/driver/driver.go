// Package driver is the clock/driver host collaborator spec.md leaves
// external to the core: it paces Step and DecrementTimers calls in real
// time and wires together the VM, a frame presenter, a key-event
// source, and the audio player. None of this is part of the CHIP-8
// core - it is ordinary application plumbing, grounded on the teacher's
// VM.Run clock-select loop and main.go ticker loop.
package driver

import (
	"fmt"
	"time"

	"github.com/faiface/pixel/pixelgl"

	"github.com/quietloop/chip8vm/internal/audio"
	"github.com/quietloop/chip8vm/internal/chip8"
	"github.com/quietloop/chip8vm/internal/display"
	"github.com/quietloop/chip8vm/internal/input"
)

// Defaults follow spec.md's external pacing contract: ~540 instructions
// per second and a 60 Hz timer cadence (9 instructions per 60 Hz timer
// tick is the classic ratio; driven here as a flat per-second rate instead
// of per-frame, which is equivalent for a steady clock).
const (
	DefaultStepsPerSecond = 540
	DefaultTimerHz        = 60
)

// Config bundles everything Run needs to bring up one session.
type Config struct {
	Rom            []byte
	Quirks         chip8.QuirkProfile
	Headless       bool
	StepsPerSecond int
	TimerHz        int
	AudioAsset     string
}

// ParseQuirkProfile maps a flag string onto a chip8.QuirkProfile.
func ParseQuirkProfile(s string) (chip8.QuirkProfile, error) {
	switch s {
	case "classic_cosmac", "":
		return chip8.ClassicCOSMAC, nil
	case "modern":
		return chip8.Modern, nil
	case "superchip":
		return chip8.SuperChip, nil
	default:
		return 0, fmt.Errorf("driver: unknown quirk profile %q", s)
	}
}

// Run loads cfg.Rom into a fresh VM and drives it until the presenter is
// closed or the program halts (fetches 0x0000). When cfg.Headless is
// false, Run wraps the windowed loop in pixelgl.Run itself, which needs
// the main thread, so Run must then be called from the main goroutine.
func Run(cfg Config) error {
	if !cfg.Headless {
		var runErr error
		pixelgl.Run(func() { runErr = runWindowed(cfg) })
		return runErr
	}
	return runHeadless(cfg)
}

func newVM(cfg Config) (*chip8.VM, error) {
	vm := chip8.New(chip8.WithQuirks(cfg.Quirks))
	if err := vm.LoadProgram(cfg.Rom); err != nil {
		return nil, fmt.Errorf("driver: load program: %w", err)
	}
	return vm, nil
}

func stepsAndTimerRates(cfg Config) (stepInterval, timerInterval time.Duration) {
	steps := cfg.StepsPerSecond
	if steps <= 0 {
		steps = DefaultStepsPerSecond
	}
	hz := cfg.TimerHz
	if hz <= 0 {
		hz = DefaultTimerHz
	}
	return time.Second / time.Duration(steps), time.Second / time.Duration(hz)
}

func runWindowed(cfg Config) error {
	vm, err := newVM(cfg)
	if err != nil {
		return err
	}

	win, err := display.NewWindow("chip8vm")
	if err != nil {
		return err
	}

	player, err := audio.NewPlayer(cfg.AudioAsset)
	if err != nil {
		return err
	}
	defer player.Close()

	stepInterval, timerInterval := stepsAndTimerRates(cfg)
	stepTicker := time.NewTicker(stepInterval)
	timerTicker := time.NewTicker(timerInterval)
	defer stepTicker.Stop()
	defer timerTicker.Stop()

	wasSounding := false
	for !win.Closed() {
		select {
		case <-stepTicker.C:
			win.PollKeys(&vm.Keypad)
			more, err := vm.Step()
			if err != nil {
				return fmt.Errorf("driver: step: %w", err)
			}
			if !more {
				return nil
			}
			win.Draw(vm.FrameBuffer())
		case <-timerTicker.C:
			vm.DecrementTimers(1)
			sounding := vm.SoundTimer() > 0
			if sounding && !wasSounding {
				player.Trigger()
			}
			wasSounding = sounding
		}
	}
	return nil
}

func runHeadless(cfg Config) error {
	vm, err := newVM(cfg)
	if err != nil {
		return err
	}

	term, err := display.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	src := input.NewTermboxSource(&vm.Keypad)
	quit := make(chan struct{})
	go func() {
		for {
			if src.PollEvent() == 'Q' {
				close(quit)
				return
			}
		}
	}()

	stepInterval, timerInterval := stepsAndTimerRates(cfg)
	stepTicker := time.NewTicker(stepInterval)
	timerTicker := time.NewTicker(timerInterval)
	defer stepTicker.Stop()
	defer timerTicker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-stepTicker.C:
			more, err := vm.Step()
			if err != nil {
				return fmt.Errorf("driver: step: %w", err)
			}
			if !more {
				return nil
			}
			term.Draw(vm.FrameBuffer())
		case <-timerTicker.C:
			vm.DecrementTimers(1)
		}
	}
}
