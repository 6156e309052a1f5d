// Command chip8vm runs a CHIP-8 virtual machine and reversible debugger.
// See cmd/ for the run and debug subcommands.
package main

import "github.com/quietloop/chip8vm/cmd"

func main() {
	cmd.Execute()
}
