package pix

import "fmt"

// Buffer is a Target backed by a packed in-memory byte slice. Pixels are
// stored row-major at the buffer's bit depth, MSB-first within a byte;
// multi-byte pixels are big-endian. Layout variants for common display
// controllers are available through BufferOption values.
type Buffer struct {
	width  int
	height int
	bpp    int
	pix    []byte

	// zigzag alternates the scan direction of odd rows.
	zigzag bool
	// verticalByte packs each byte as a vertical run of 8 pixels
	// (SSD1306-style). Only meaningful at 1 bpp.
	verticalByte bool
}

// BufferOption configures a Buffer during creation.
type BufferOption func(*bufferOptions)

type bufferOptions struct {
	zigzag       bool
	verticalByte bool
}

// WithZigzag alternates the direction of scanlines: even rows run left to
// right, odd rows right to left. Matches zigzag-wired LED matrices.
func WithZigzag() BufferOption {
	return func(o *bufferOptions) { o.zigzag = true }
}

// WithVerticalByte aligns bits in a byte vertically, so byte n holds
// pixels (n%width, 8*(n/width)) through (n%width, 8*(n/width)+7).
// This is the native layout of SSD1306-class controllers and is only
// valid at 1 bpp; at other depths the option is ignored with a warning.
func WithVerticalByte() BufferOption {
	return func(o *bufferOptions) { o.verticalByte = true }
}

// NewBuffer creates a packed buffer target.
func NewBuffer(width, height, bpp int, opts ...BufferOption) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !validBPP(bpp) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBPP, bpp)
	}

	var options bufferOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.verticalByte && bpp != 1 {
		Logger().Warn("pix: vertical byte layout only works for 1bpp buffers",
			"bpp", bpp)
		options.verticalByte = false
	}

	b := &Buffer{
		width:        width,
		height:       height,
		bpp:          bpp,
		zigzag:       options.zigzag,
		verticalByte: options.verticalByte,
	}
	if b.verticalByte {
		b.pix = make([]byte, width*((height+7)/8))
	} else {
		b.pix = make([]byte, (width*height*bpp+7)/8)
	}
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// BPP returns the buffer's bits per pixel.
func (b *Buffer) BPP() int { return b.bpp }

// Pix returns the backing byte slice. Mutating it mutates the buffer.
func (b *Buffer) Pix() []byte { return b.pix }

// SetPixel implements Target. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, col uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	col &= colorMask(b.bpp)
	if b.zigzag && y&1 == 1 {
		x = b.width - 1 - x
	}
	if b.verticalByte {
		idx := x + (y>>3)*b.width
		bit := byte(1) << uint(y&7)
		if col != 0 {
			b.pix[idx] |= bit
		} else {
			b.pix[idx] &^= bit
		}
		return
	}

	bitIdx := (y*b.width + x) * b.bpp
	if b.bpp >= 8 {
		idx := bitIdx >> 3
		for i := b.bpp/8 - 1; i >= 0; i-- {
			b.pix[idx+i] = byte(col)
			col >>= 8
		}
		return
	}
	// Sub-byte depths divide 8, so a pixel never straddles a byte.
	shift := uint(8 - b.bpp - bitIdx&7)
	mask := byte(colorMask(b.bpp)) << shift
	b.pix[bitIdx>>3] = b.pix[bitIdx>>3]&^mask | byte(col)<<shift
}

// FillRect implements Target. The rectangle is inclusive and clipped to
// the buffer bounds.
func (b *Buffer) FillRect(x1, y1, x2, y2 int, col uint32) {
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 >= b.width {
		x2 = b.width - 1
	}
	if y2 >= b.height {
		y2 = b.height - 1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			b.SetPixel(x, y, col)
		}
	}
}

// Pixel implements Reader. Out-of-range coordinates read as zero.
func (b *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	if b.zigzag && y&1 == 1 {
		x = b.width - 1 - x
	}
	if b.verticalByte {
		idx := x + (y>>3)*b.width
		return uint32(b.pix[idx] >> uint(y&7) & 1)
	}

	bitIdx := (y*b.width + x) * b.bpp
	if b.bpp >= 8 {
		idx := bitIdx >> 3
		var col uint32
		for i := 0; i < b.bpp/8; i++ {
			col = col<<8 | uint32(b.pix[idx+i])
		}
		return col
	}
	shift := uint(8 - b.bpp - bitIdx&7)
	return uint32(b.pix[bitIdx>>3]>>shift) & colorMask(b.bpp)
}
