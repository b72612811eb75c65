package pix

import (
	"errors"
	"testing"
)

func TestNewCallback_RequiresSetPixel(t *testing.T) {
	if _, err := NewCallback(nil, nil); !errors.Is(err, ErrNilCallback) {
		t.Errorf("got %v, want ErrNilCallback", err)
	}
}

func TestCallback_ForwardsWrites(t *testing.T) {
	type write struct {
		x, y int
		col  uint32
	}
	var pixels []write
	var rects int

	cb, err := NewCallback(
		func(x, y int, col uint32) { pixels = append(pixels, write{x, y, col}) },
		func(x1, y1, x2, y2 int, col uint32) { rects++ },
	)
	if err != nil {
		t.Fatal(err)
	}

	cb.SetPixel(3, 4, 7)
	cb.FillRect(0, 0, 9, 9, 1)

	if len(pixels) != 1 || pixels[0] != (write{3, 4, 7}) {
		t.Errorf("pixels = %v, want one write of (3,4,7)", pixels)
	}
	if rects != 1 {
		t.Errorf("rects = %d, want 1", rects)
	}
}

func TestCallback_FillRectFallback(t *testing.T) {
	// Without a fill function, rect fills degrade to a pixel loop.
	count := 0
	cb, err := NewCallback(func(x, y int, col uint32) { count++ }, nil)
	if err != nil {
		t.Fatal(err)
	}
	cb.FillRect(0, 0, 3, 2, 1)
	if count != 12 {
		t.Errorf("fallback wrote %d pixels, want 12", count)
	}
}

func TestSurface_WithCallbackTarget(t *testing.T) {
	var got [][3]int
	cb, err := NewCallback(func(x, y int, col uint32) {
		got = append(got, [3]int{x, y, int(col)})
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	s, err := New(16, 16, 8, WithTarget(cb))
	if err != nil {
		t.Fatal(err)
	}
	s.SetPixel(5, 6, 0x42)

	if len(got) != 1 || got[0] != [3]int{5, 6, 0x42} {
		t.Errorf("writes = %v, want [[5 6 66]]", got)
	}
	// Callback targets cannot read back.
	if s.Pixel(5, 6) != 0 {
		t.Error("Pixel through a write-only target should read zero")
	}
}
