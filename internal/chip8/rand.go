package chip8

import "math/rand"

// defaultRandByte is the VM's out-of-the-box source for CXNN. Tests
// substitute a deterministic RandByte via WithRand.
func defaultRandByte() byte {
	return byte(rand.Intn(256))
}
