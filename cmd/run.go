package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quietloop/chip8vm/internal/driver"
)

var (
	runQuirks      string
	runHeadless    bool
	runStepsPerSec int
	runTimerHz     int
	runAudioAsset  string
)

// runCmd runs the virtual machine against a ROM file until the window is
// closed or the program halts.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run a ROM in the chip8vm emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChip8vm,
}

func init() {
	runCmd.Flags().StringVar(&runQuirks, "quirks", "classic_cosmac", "quirk profile: classic_cosmac, modern, or superchip")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "render to the terminal via termbox instead of opening a window")
	runCmd.Flags().IntVar(&runStepsPerSec, "steps-per-sec", driver.DefaultStepsPerSecond, "instructions executed per second")
	runCmd.Flags().IntVar(&runTimerHz, "timer-hz", driver.DefaultTimerHz, "delay/sound timer decrement rate in Hz")
	runCmd.Flags().StringVar(&runAudioAsset, "beep", "assets/beep.mp3", "path to the sound-timer beep asset")
}

func runChip8vm(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("error reading ROM %q: %v\n", pathToROM, err)
		os.Exit(1)
	}

	quirks, err := driver.ParseQuirkProfile(runQuirks)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg := driver.Config{
		Rom:            rom,
		Quirks:         quirks,
		Headless:       runHeadless,
		StepsPerSecond: runStepsPerSec,
		TimerHz:        runTimerHz,
		AudioAsset:     runAudioAsset,
	}

	if err := driver.Run(cfg); err != nil {
		fmt.Printf("error running chip8vm: %v\n", err)
		os.Exit(1)
	}
}
