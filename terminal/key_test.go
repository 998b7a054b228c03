package terminal

import "testing"

func TestCtrl(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{'q', 0x11},
		{'Q', 0x11},
		{'c', 0x03},
		{'a', 0x01},
		{'z', 0x1a},
		{'[', 0x1b},
	}

	for _, tc := range tests {
		if got := Ctrl(tc.in); got != tc.want {
			t.Errorf("Ctrl(%q) = 0x%02x, want 0x%02x", tc.in, got, tc.want)
		}
	}

	if KeyCtrlQ != 0x11 || KeyCtrlC != 0x03 {
		t.Errorf("control key constants: KeyCtrlQ=0x%02x KeyCtrlC=0x%02x", KeyCtrlQ, KeyCtrlC)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{Ctrl('q'), "Ctrl+Q"},
		{Ctrl('c'), "Ctrl+C"},
		{0x1b, "Escape"},
		{0x0d, "Enter"},
		{0x09, "Tab"},
		{0x7f, "Backspace"},
		{0, "NUL"},
		{'a', "a"},
		{' ', " "},
		{0xe9, "0xe9"},
	}

	for _, tc := range tests {
		if got := KeyName(tc.in); got != tc.want {
			t.Errorf("KeyName(0x%02x) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
