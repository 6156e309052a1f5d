package driver

import (
	"testing"

	"github.com/quietloop/chip8vm/internal/chip8"
)

func TestParseQuirkProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    chip8.QuirkProfile
		wantErr bool
	}{
		{"", chip8.ClassicCOSMAC, false},
		{"classic_cosmac", chip8.ClassicCOSMAC, false},
		{"modern", chip8.Modern, false},
		{"superchip", chip8.SuperChip, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseQuirkProfile(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseQuirkProfile(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseQuirkProfile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStepsAndTimerRatesDefaults(t *testing.T) {
	stepInterval, timerInterval := stepsAndTimerRates(Config{})
	if stepInterval <= 0 || timerInterval <= 0 {
		t.Fatalf("expected positive default intervals, got step=%v timer=%v", stepInterval, timerInterval)
	}
}
