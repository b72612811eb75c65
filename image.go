package pix

import (
	"fmt"
	"image"

	"github.com/mi-v/img1b"
)

// Image describes a packed image: width x height samples of BPP bits
// each, row-major, MSB-first, with no padding between scanlines (a
// sample may straddle a byte boundary). An optional transparent color
// key marks samples to skip.
type Image struct {
	Width  int
	Height int
	// BPP is the source bits per pixel, 1 to 32. It is independent of
	// the surface depth: samples are written as-is, except 1-bit images
	// which substitute the surface's foreground and background colors.
	BPP int
	// Transparent, when non-nil, is the sample value treated as
	// transparent.
	Transparent *uint32
	// Data is the packed sample stream.
	Data []byte
}

// DrawImage blits img with its top-left corner at (x, y). Samples equal
// to the transparent key are skipped; 1-bit samples are substituted with
// the foreground (1) or background (0) color. Trailing data past the
// declared height is ignored; missing trailing bytes read as zero.
func (s *Surface) DrawImage(img *Image, x, y int) error {
	if !s.ok() {
		return nil
	}
	if img == nil || img.Width <= 0 || img.Height <= 0 || img.BPP < 1 || img.BPP > 32 {
		return fmt.Errorf("%w: image descriptor", ErrInvalidImage)
	}

	// 64-bit accumulator: at 32 bpp the sample mask and the shifted-in
	// high byte both exceed a 32-bit word.
	mask := uint64(1)<<uint(img.BPP) - 1
	var colData uint64
	bits := 0
	pos := 0
	cx, cy := 0, 0

	for (bits >= img.BPP || pos < len(img.Data)) && cy < img.Height {
		for bits < img.BPP {
			colData <<= 8
			if pos < len(img.Data) {
				colData |= uint64(img.Data[pos])
				pos++
			}
			bits += 8
		}
		col := uint32(colData >> uint(bits-img.BPP) & mask)
		bits -= img.BPP

		if img.Transparent == nil || *img.Transparent != col {
			if img.BPP == 1 {
				if col != 0 {
					col = s.fg
				} else {
					col = s.bg
				}
			}
			s.plot(cx+x, cy+y, col)
		}

		cx++
		if cx >= img.Width {
			cx = 0
			cy++
		}
	}
	return nil
}

// FromImage quantizes a standard image into a packed descriptor at the
// given bit depth, using the same quantization as SetColor.
func FromImage(src image.Image, bpp int) (*Image, error) {
	if !validBPP(bpp) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBPP, bpp)
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImage, w, h)
	}

	enc := newBitWriter(w * h * bpp)
	mask := colorMask(bpp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			col := QuantizeRGB(float64(r)/65535, float64(g)/65535, float64(b)/65535, bpp)
			enc.write(col&mask, bpp)
		}
	}
	return &Image{Width: w, Height: h, BPP: bpp, Data: enc.flush()}, nil
}

// From1Bit repacks an img1b image (row-padded, MSB-first) into the
// unpadded 1-bit stream format. Set samples draw in the foreground
// color, clear samples in the background color.
func From1Bit(src *img1b.Image) *Image {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	enc := newBitWriter(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			enc.write(uint32(src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)), 1)
		}
	}
	return &Image{Width: w, Height: h, BPP: 1, Data: enc.flush()}
}

// bitWriter packs fixed-width samples MSB-first with no row padding,
// the mirror of DrawImage's accumulator.
type bitWriter struct {
	out  []byte
	acc  uint64
	bits int
}

func newBitWriter(totalBits int) *bitWriter {
	return &bitWriter{out: make([]byte, 0, (totalBits+7)/8)}
}

func (w *bitWriter) write(sample uint32, width int) {
	w.acc = w.acc<<uint(width) | uint64(sample)
	w.bits += width
	for w.bits >= 8 {
		w.out = append(w.out, byte(w.acc>>uint(w.bits-8)))
		w.bits -= 8
	}
}

func (w *bitWriter) flush() []byte {
	if w.bits > 0 {
		w.out = append(w.out, byte(w.acc<<uint(8-w.bits)))
		w.bits = 0
	}
	return w.out
}
