// Package bits holds the small nibble/byte helpers the decoder and
// executor share. None of it is CHIP-8 specific beyond the comments.
package bits

// ConcatBytes merges a high and low byte into a 16-bit word, high byte first.
func ConcatBytes(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Nibble returns the i-th nibble of word, where 0 is the most significant
// nibble and 3 is the least significant.
func Nibble(word uint16, i int) byte {
	shift := uint(3-i) * 4
	return byte((word >> shift) & 0xF)
}

// GetNibbles treats word as four nibbles indexed 0 (most significant)
// through 3 (least significant) and returns the unsigned integer formed
// by nibbles [first..last] inclusive. first and last must satisfy
// 0 <= first <= last <= 3.
func GetNibbles(word uint16, first, last int) uint16 {
	width := uint(last-first+1) * 4
	shift := uint(3-last) * 4
	mask := uint16(1)<<width - 1
	return (word >> shift) & mask
}

// BCD returns the hundreds, tens, and ones decimal digits of b, in that order.
func BCD(b byte) (hundreds, tens, ones byte) {
	return b / 100, (b / 10) % 10, b % 10
}

// MSB returns the most significant bit of b.
func MSB(b byte) byte {
	return (b >> 7) & 1
}

// LSB returns the least significant bit of b.
func LSB(b byte) byte {
	return b & 1
}
