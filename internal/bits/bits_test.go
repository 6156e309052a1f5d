package bits

import "testing"

func TestGetNibbles(t *testing.T) {
	tests := []struct {
		word        uint16
		first, last int
		want        uint16
	}{
		{0xABCD, 0, 0, 0xA},
		{0xABCD, 1, 2, 0xBC},
		{0xABCD, 1, 3, 0xBCD},
		{0xABCD, 0, 3, 0xABCD},
		{0xABCD, 3, 3, 0xD},
	}
	for _, tt := range tests {
		got := GetNibbles(tt.word, tt.first, tt.last)
		if got != tt.want {
			t.Errorf("GetNibbles(%#x, %d, %d) = %#x, want %#x", tt.word, tt.first, tt.last, got, tt.want)
		}
	}
}

func TestConcatBytes(t *testing.T) {
	if got := ConcatBytes(0xA2, 0xF0); got != 0xA2F0 {
		t.Errorf("ConcatBytes(0xA2, 0xF0) = %#x, want 0xA2F0", got)
	}
}

func TestBCD(t *testing.T) {
	h, t2, o := BCD(156)
	if h != 1 || t2 != 5 || o != 6 {
		t.Errorf("BCD(156) = (%d, %d, %d), want (1, 5, 6)", h, t2, o)
	}
	h, t2, o = BCD(0)
	if h != 0 || t2 != 0 || o != 0 {
		t.Errorf("BCD(0) = (%d, %d, %d), want (0, 0, 0)", h, t2, o)
	}
}

func TestMSBLSB(t *testing.T) {
	if MSB(0x81) != 1 {
		t.Error("MSB(0x81) should be 1")
	}
	if MSB(0x01) != 0 {
		t.Error("MSB(0x01) should be 0")
	}
	if LSB(0x03) != 1 {
		t.Error("LSB(0x03) should be 1")
	}
	if LSB(0x02) != 0 {
		t.Error("LSB(0x02) should be 0")
	}
}
