package textstate

import (
	"image/color"
	"testing"
)

func TestColorConstructors(t *testing.T) {
	c := RGB(255, 0, 0)
	if c != (Color{R: 255, A: 255}) {
		t.Errorf("RGB(255, 0, 0) = %v", c)
	}
	c = RGBA(10, 20, 30, 40)
	if c != (Color{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("RGBA(10, 20, 30, 40) = %v", c)
	}
}

func TestColorInterface(t *testing.T) {
	got := RGB(255, 0, 0).Color()
	r, g, b, a := got.RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (65535, 0, 0, 65535)", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 128, G: 64, B: 32, A: 255})
	if c != (Color{R: 128, G: 64, B: 32, A: 255}) {
		t.Errorf("FromColor = %v", c)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"RRGGBB", "3498db", Color{R: 0x34, G: 0x98, B: 0xdb, A: 255}},
		{"with hash", "#3498db", Color{R: 0x34, G: 0x98, B: 0xdb, A: 255}},
		{"RRGGBBAA", "ff000080", Color{R: 255, A: 0x80}},
		{"RGB short", "f00", Color{R: 255, A: 255}},
		{"RGBA short", "f008", Color{R: 255, A: 0x88}},
		{"uppercase", "FF0000", Color{R: 255, A: 255}},
		{"invalid length", "12345", Color{A: 255}},
		{"empty", "", Color{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
