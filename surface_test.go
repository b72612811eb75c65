package pix

import (
	"errors"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		w, h, bpp int
		wantErr   error
	}{
		{"zero width", 0, 10, 1, ErrInvalidSize},
		{"negative height", 10, -1, 1, ErrInvalidSize},
		{"too wide", 1024, 10, 1, ErrInvalidSize},
		{"too tall", 10, 1024, 1, ErrInvalidSize},
		{"bpp 0", 10, 10, 0, ErrInvalidBPP},
		{"bpp 3", 10, 10, 3, ErrInvalidBPP},
		{"bpp 64", 10, 10, 64, ErrInvalidBPP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, tt.bpp); !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%d,%d,%d) err = %v, want %v", tt.w, tt.h, tt.bpp, err, tt.wantErr)
			}
		})
	}

	for _, bpp := range []int{1, 2, 4, 8, 16, 24, 32} {
		if _, err := New(1023, 1023, bpp); err != nil {
			t.Errorf("New(1023,1023,%d) = %v, want nil", bpp, err)
		}
	}
}

func TestSurface_NilGuard(t *testing.T) {
	// Every public operation on a nil surface is a no-op returning zero.
	var s *Surface
	if s.Width() != 0 || s.Height() != 0 || s.BPP() != 0 {
		t.Error("nil surface dimensions should be zero")
	}
	if s.Color() != 0 || s.BgColor() != 0 || s.Pixel(0, 0) != 0 {
		t.Error("nil surface colors should be zero")
	}
	if s.StringWidth("abc") != 0 {
		t.Error("nil surface StringWidth should be zero")
	}

	// None of these may panic.
	s.SetColor(1, 1, 1)
	s.SetRotation(1, true)
	s.Clear()
	s.FillRect(0, 0, 1, 1)
	s.DrawRect(0, 0, 1, 1)
	s.DrawLine(0, 0, 1, 1)
	s.MoveTo(1, 1)
	s.LineTo(2, 2)
	s.SetPixel(0, 0, 1)
	s.DrawString("abc", 0, 0)
	s.FillPoly([]int{0, 0, 1, 0, 1, 1})
	s.SetFontBitmap()
	s.SetFontVector(12)
	if err := s.SetFontCustom([]byte{0}, 32, FixedWidth(4), 6); err != nil {
		t.Errorf("nil surface SetFontCustom = %v, want nil", err)
	}
	if err := s.DrawImage(&Image{Width: 1, Height: 1, BPP: 1, Data: []byte{0x80}}, 0, 0); err != nil {
		t.Errorf("nil surface DrawImage = %v, want nil", err)
	}
}

func TestSurface_ColorState(t *testing.T) {
	s, err := New(8, 8, 16)
	if err != nil {
		t.Fatal(err)
	}

	s.SetColor(1, 0, 0)
	if s.Color() != 0xF800 {
		t.Errorf("Color() = %#x, want 0xF800", s.Color())
	}

	s.SetBgColor(0, 0, 1)
	if s.BgColor() != 0x001F {
		t.Errorf("BgColor() = %#x, want 0x001F", s.BgColor())
	}

	// Integer colors are stored verbatim and masked only on read-back.
	s.SetColorInt(0xFFFF1234)
	if s.Color() != 0x1234 {
		t.Errorf("masked Color() = %#x, want 0x1234", s.Color())
	}
}

func TestSurface_SetGetPixel(t *testing.T) {
	s, err := New(8, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	s.SetPixel(3, 5, 0xAB)
	if got := s.Pixel(3, 5); got != 0xAB {
		t.Errorf("Pixel(3,5) = %#x, want 0xAB", got)
	}
	if x, y := s.Cursor(); x != 3 || y != 5 {
		t.Errorf("cursor = (%d,%d), want (3,5)", x, y)
	}
}

func TestSurface_RotatedPixelMapping(t *testing.T) {
	s, err := New(4, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.SetRotation(1, false)

	// Under 90-degree rotation the app-space origin lands in the
	// device's top-right corner.
	s.SetPixel(0, 0, 1)
	b := s.Buffer()
	if b.Pixel(3, 0) != 1 {
		t.Error("rotated (0,0) should land on device (3,0)")
	}
	// Reading through the surface undoes the mapping.
	if s.Pixel(0, 0) != 1 {
		t.Error("rotated read-back mismatch")
	}
}

func TestSurface_ClearAndRects(t *testing.T) {
	s, err := New(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.SetBgColorInt(1)
	s.Clear()
	for i, b := range s.Buffer().Pix() {
		if b != 0xFF {
			t.Fatalf("after Clear pix[%d] = %08b, want all ones", i, b)
		}
	}

	s.SetBgColorInt(0)
	s.Clear()
	s.SetColorInt(1)
	s.DrawRect(0, 0, 3, 3)
	b := s.Buffer()
	// Border set, center clear.
	if b.Pixel(0, 0) != 1 || b.Pixel(3, 3) != 1 || b.Pixel(2, 0) != 1 {
		t.Error("DrawRect border missing")
	}
	if b.Pixel(1, 1) != 0 || b.Pixel(2, 2) != 0 {
		t.Error("DrawRect filled the interior")
	}

	s.FillRect(1, 1, 2, 2)
	if b.Pixel(1, 1) != 1 || b.Pixel(2, 2) != 1 {
		t.Error("FillRect missed the interior")
	}
}

func TestSurface_FillRectSwappedCorners(t *testing.T) {
	s, err := New(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.SetColorInt(1)
	s.SetRotation(2, false)
	// Corners arrive reversed in device space; the fill must normalize.
	s.FillRect(0, 0, 3, 3)
	for i, b := range s.Buffer().Pix() {
		if b != 0xFF {
			t.Fatalf("pix[%d] = %08b, want all ones", i, b)
		}
	}
}

func TestSurface_Lines(t *testing.T) {
	s, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.SetColorInt(1)
	s.DrawLine(0, 0, 7, 7)
	b := s.Buffer()
	for i := 0; i < 8; i++ {
		if b.Pixel(i, i) != 1 {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}

	s.MoveTo(0, 7)
	s.LineTo(7, 7)
	if x, y := s.Cursor(); x != 7 || y != 7 {
		t.Errorf("cursor after LineTo = (%d,%d), want (7,7)", x, y)
	}
	for i := 0; i < 8; i++ {
		if b.Pixel(i, 7) != 1 {
			t.Errorf("bottom row pixel (%d,7) not set", i)
		}
	}
}

func TestSurface_FontValidation(t *testing.T) {
	s, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		bitmap    []byte
		firstChar int
		widths    WidthSource
		height    int
		wantField string
	}{
		{"nil bitmap", nil, 32, FixedWidth(4), 6, "bitmap"},
		{"firstChar negative", []byte{0}, -1, FixedWidth(4), 6, "firstChar"},
		{"firstChar too big", []byte{0}, 256, FixedWidth(4), 6, "firstChar"},
		{"nil widths", []byte{0}, 32, nil, 6, "widths"},
		{"height zero", []byte{0}, 32, FixedWidth(4), 0, "height"},
		{"height too big", []byte{0}, 32, FixedWidth(4), 256, "height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetFontCustom(tt.bitmap, tt.firstChar, tt.widths, tt.height)
			var fontErr *FontConfigError
			if !errors.As(err, &fontErr) {
				t.Fatalf("got %v, want FontConfigError", err)
			}
			if fontErr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", fontErr.Field, tt.wantField)
			}
			// Validation failures leave the font selection untouched.
			if _, ok := s.Font().(Font4x6); !ok {
				t.Errorf("font changed to %T after failed validation", s.Font())
			}
		})
	}

	if err := s.SetFontCustom([]byte{0}, 0, FixedWidth(1), 255); err != nil {
		t.Errorf("boundary values rejected: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	if !TargetRegistered(DefaultTarget) {
		t.Fatal("buffer target should be registered by default")
	}

	RegisterTarget("test-null", func(w, h, bpp int) (Target, error) {
		return must(NewCallback(func(int, int, uint32) {}, nil)), nil
	})
	t.Cleanup(func() { UnregisterTarget("test-null") })

	if !TargetRegistered("test-null") {
		t.Error("test-null should be registered")
	}
	found := false
	for _, name := range TargetNames() {
		if name == "test-null" {
			found = true
		}
	}
	if !found {
		t.Errorf("TargetNames() = %v, missing test-null", TargetNames())
	}

	s, err := New(8, 8, 1, WithNamedTarget("test-null"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetPixel(0, 0, 1) // must not panic

	if _, err := New(8, 8, 1, WithNamedTarget("no-such")); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("unknown target err = %v, want ErrUnknownTarget", err)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
