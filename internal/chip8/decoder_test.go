package chip8

import "testing"

func TestDecode(t *testing.T) {
	ins := Decode(0xD123)
	if ins.Category != 0xD || ins.X != 0x1 || ins.Y != 0x2 || ins.N != 0x3 {
		t.Fatalf("Decode(0xD123) = %+v", ins)
	}
	if ins.NN != 0x23 {
		t.Errorf("NN = %#02x, want 0x23", ins.NN)
	}
	if ins.NNN != 0x123 {
		t.Errorf("NNN = %#04x, want 0x123", ins.NNN)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	for _, word := range []uint16{0x0000, 0xFFFF, 0x1234, 0x8ABC} {
		ins := Decode(word)
		if ins.Raw != word {
			t.Errorf("Decode(%#04x).Raw = %#04x", word, ins.Raw)
		}
	}
}
