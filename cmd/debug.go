package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quietloop/chip8vm/internal/chip8"
	"github.com/quietloop/chip8vm/internal/debugger"
)

var debugQuirks string

// debugCmd drives the reversible debugger from a line-oriented REPL:
// step and undo a ROM one instruction at a time and inspect registers,
// PC, and I along the way.
var debugCmd = &cobra.Command{
	Use:   "debug `path/to/rom`",
	Short: "step a ROM forward and backward one instruction at a time",
	Args:  cobra.ExactArgs(1),
	Run:   runDebug,
}

func init() {
	debugCmd.Flags().StringVar(&debugQuirks, "quirks", "classic_cosmac", "quirk profile: classic_cosmac, modern, or superchip")
}

func runDebug(cmd *cobra.Command, args []string) {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading ROM %q: %v\n", args[0], err)
		os.Exit(1)
	}

	quirks := chip8.ClassicCOSMAC
	switch debugQuirks {
	case "modern":
		quirks = chip8.Modern
	case "superchip":
		quirks = chip8.SuperChip
	}

	vm := chip8.New(chip8.WithQuirks(quirks))
	if err := vm.LoadProgram(rom); err != nil {
		fmt.Printf("error loading ROM: %v\n", err)
		os.Exit(1)
	}

	dbg := debugger.New(vm)
	dbg.OnExec(func(kind debugger.EventKind, ins chip8.Instruction) {
		fmt.Printf("%-5s pc=%#04x opcode=%#04x\n", kind, dbg.PC(), ins.Raw)
	})

	fmt.Println("chip8vm debugger - commands: step [n], undo [n], regs, pc, i, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		dispatchDebugCommand(dbg, strings.Fields(scanner.Text()))
	}
}

func dispatchDebugCommand(dbg *debugger.Debugger, fields []string) {
	if len(fields) == 0 {
		return
	}

	n := 1
	if len(fields) > 1 {
		if parsed, err := strconv.Atoi(fields[1]); err == nil {
			n = parsed
		}
	}

	switch fields[0] {
	case "step":
		for i := 0; i < n; i++ {
			more, err := dbg.Step()
			if err != nil {
				fmt.Println("error:", err)
				return
			}
			if !more {
				fmt.Println("halted")
				return
			}
		}
	case "undo":
		for i := 0; i < n; i++ {
			if _, err := dbg.Undo(); err != nil {
				fmt.Println("error:", err)
				return
			}
		}
	case "regs":
		for i := 0; i < chip8.NumRegisters; i++ {
			fmt.Printf("V%X=%#02x ", i, dbg.Register(i))
		}
		fmt.Println()
	case "pc":
		fmt.Printf("pc=%#04x\n", dbg.PC())
	case "i":
		fmt.Printf("i=%#04x\n", dbg.Index())
	case "quit", "exit":
		os.Exit(0)
	default:
		fmt.Println("unknown command:", fields[0])
	}
}
