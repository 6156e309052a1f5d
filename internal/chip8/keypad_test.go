package chip8

import "testing"

func TestKeypadPressRelease(t *testing.T) {
	var kp Keypad
	if kp.IsPressed(0x5) {
		t.Fatal("key should start released")
	}
	kp.SetPressed(0x5)
	if !kp.IsPressed(0x5) {
		t.Fatal("key should be pressed")
	}
	kp.SetReleased(0x5)
	if kp.IsPressed(0x5) {
		t.Fatal("key should be released again")
	}
}

func TestKeypadFirstPressed(t *testing.T) {
	var kp Keypad
	if _, ok := kp.firstPressed(); ok {
		t.Fatal("no key pressed should report ok=false")
	}
	kp.SetPressed(0xA)
	kp.SetPressed(0x3)
	key, ok := kp.firstPressed()
	if !ok || key != 0x3 {
		t.Fatalf("firstPressed() = (%v, %v), want (0x3, true)", key, ok)
	}
}
