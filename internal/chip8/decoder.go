package chip8

import "github.com/quietloop/chip8vm/internal/bits"

// Instruction is a fetched 16-bit word together with its decoded fields.
// Decode is total: every 16-bit value produces an Instruction, and
// semantic validation (does this category/low-bits combination mean
// anything) is left to the executor.
type Instruction struct {
	Raw      uint16
	Category byte   // nibble 0, most significant
	X        byte   // nibble 1 - a V-register index
	Y        byte   // nibble 2 - a V-register index
	N        byte   // nibble 3
	NN       byte   // nibbles 2-3, as a byte
	NNN      uint16 // nibbles 1-3, as a 12-bit address
}

// Decode splits a 16-bit opcode into its category and operand fields.
func Decode(word uint16) Instruction {
	return Instruction{
		Raw:      word,
		Category: bits.Nibble(word, 0),
		X:        byte(bits.Nibble(word, 1)),
		Y:        byte(bits.Nibble(word, 2)),
		N:        byte(bits.Nibble(word, 3)),
		NN:       byte(bits.GetNibbles(word, 2, 3)),
		NNN:      bits.GetNibbles(word, 1, 3),
	}
}
