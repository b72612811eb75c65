package pix

import "testing"

func TestQuantizeRGB_BlackAndWhite(t *testing.T) {
	// Black quantizes to zero and white to the maximum representable
	// color at every supported depth.
	tests := []struct {
		bpp       int
		wantWhite uint32
	}{
		{1, 0xFFFFFFFF},
		{2, 0xFFFFFFFF},
		{4, 0xFFFFFFFF},
		{8, 0xFFFFFFFF},
		{16, 0xFFFF},
		{24, 0xFFFFFF},
		{32, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		if got := QuantizeRGB(0, 0, 0, tt.bpp); got != 0 {
			t.Errorf("QuantizeRGB(0,0,0,%d) = %#x, want 0", tt.bpp, got)
		}
		got := QuantizeRGB(1, 1, 1, tt.bpp)
		if got&colorMask(tt.bpp) != tt.wantWhite&colorMask(tt.bpp) {
			t.Errorf("QuantizeRGB(1,1,1,%d) = %#x, want %#x", tt.bpp, got, tt.wantWhite)
		}
	}
}

func TestQuantizeRGB_RGB565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    uint32
	}{
		{"red", 1, 0, 0, 0xF800},
		{"green", 0, 1, 0, 0x07E0},
		{"blue", 0, 0, 1, 0x001F},
		{"mid gray", 0.5, 0.5, 0.5, 0x8410}, // 128>>3=16, 128>>2=32, 128>>3=16
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeRGB(tt.r, tt.g, tt.b, 16); got != tt.want {
				t.Errorf("QuantizeRGB(%v,%v,%v,16) = %#04x, want %#04x",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestQuantizeRGB_TrueColor(t *testing.T) {
	if got := QuantizeRGB(1, 0.5, 0, 24); got != 0xFF8000 {
		t.Errorf("24bpp = %#x, want 0xFF8000", got)
	}
	// 32bpp carries the opaque alpha tag.
	if got := QuantizeRGB(1, 0.5, 0, 32); got != 0xFFFF8000 {
		t.Errorf("32bpp = %#x, want 0xFFFF8000", got)
	}
}

func TestQuantizeRGB_Threshold(t *testing.T) {
	// At palette depths, the channel sum decides: >=384 of 765 is on.
	tests := []struct {
		name    string
		r, g, b float64
		want    uint32
	}{
		{"just below", 0.5, 0.5, 0.49, 0},          // 128+128+125 = 381
		{"at threshold", 0.5, 0.5, 0.5, 0xFFFFFFFF}, // 128*3 = 384
		{"white", 1, 1, 1, 0xFFFFFFFF},
		{"single bright channel", 1, 0, 0, 0}, // 255 < 384
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuantizeRGB(tt.r, tt.g, tt.b, 1); got != tt.want {
				t.Errorf("QuantizeRGB(%v,%v,%v,1) = %#x, want %#x",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestQuantizeRGB_Clamping(t *testing.T) {
	// Out-of-range channels clamp on both sides: negatives floor to 0,
	// overshoots cap at 255. A channel of exactly 1.0 scales to 256 and
	// clamps down to 255.
	if got := QuantizeRGB(-1, 2, 1, 24); got != 0x00FFFF {
		t.Errorf("clamped = %#x, want 0x00FFFF", got)
	}
}

func TestColorMask(t *testing.T) {
	tests := []struct {
		bpp  int
		want uint32
	}{
		{1, 0x1},
		{2, 0x3},
		{4, 0xF},
		{8, 0xFF},
		{16, 0xFFFF},
		{24, 0xFFFFFF},
		{32, 0xFFFFFFFF}, // must not overflow a 32-bit shift
	}
	for _, tt := range tests {
		if got := colorMask(tt.bpp); got != tt.want {
			t.Errorf("colorMask(%d) = %#x, want %#x", tt.bpp, got, tt.want)
		}
	}
}
