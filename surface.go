package pix

import (
	"fmt"

	"github.com/gogpu/pix/internal/raster"
)

// maxDimension bounds surface width and height. A single color word
// addresses the whole coordinate space at this size on 16-bit targets.
const maxDimension = 1023

// maxVectorFontSize bounds the pixel size of vector fonts.
const maxVectorFontSize = 1023

// Surface is a drawing target with fixed dimensions and bit depth,
// owning the current color, cursor, font and orientation state. All
// drawing resolves through the surface's Target.
//
// A Surface is exclusively owned by the calling goroutine for the
// duration of a call; it holds no locks.
type Surface struct {
	target Target

	width  int // unrotated
	height int // unrotated
	bpp    int

	fg      uint32
	bg      uint32
	cursorX int
	cursorY int
	flags   Flags
	font    Font

	interrupt func() bool
	vector    VectorRasterizer
}

// New creates a surface. Without a WithTarget or WithNamedTarget option
// the surface renders into a packed Buffer, retrievable via Buffer().
//
// Width and height must be in [1, 1023]; bpp must be one of
// 1, 2, 4, 8, 16, 24 or 32.
func New(width, height, bpp int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !validBPP(bpp) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBPP, bpp)
	}

	var options surfaceOptions
	for _, opt := range opts {
		opt(&options)
	}

	target := options.target
	if target == nil {
		name := options.targetName
		var err error
		if name == "" || name == DefaultTarget {
			target, err = NewBuffer(width, height, bpp, options.bufferOpts...)
		} else {
			target, err = newTarget(name, width, height, bpp)
		}
		if err != nil {
			return nil, err
		}
	}

	return &Surface{
		target:    target,
		width:     width,
		height:    height,
		bpp:       bpp,
		font:      Font4x6{},
		interrupt: options.interrupt,
		vector:    options.vector,
	}, nil
}

// ok is the universal guard: every public operation on a nil surface or
// a surface without a target is a no-op returning zero values.
func (s *Surface) ok() bool {
	return s != nil && s.target != nil
}

// Buffer returns the backing Buffer when the surface renders into one,
// or nil for other target kinds.
func (s *Surface) Buffer() *Buffer {
	if !s.ok() {
		return nil
	}
	b, _ := s.target.(*Buffer)
	return b
}

// Width returns the surface width as seen by the application: rotated
// 90 or 270 degrees, it reports the stored height.
func (s *Surface) Width() int {
	if !s.ok() {
		return 0
	}
	if s.flags.SwapXY() {
		return s.height
	}
	return s.width
}

// Height returns the surface height as seen by the application.
func (s *Surface) Height() int {
	if !s.ok() {
		return 0
	}
	if s.flags.SwapXY() {
		return s.width
	}
	return s.height
}

// BPP returns the surface's bits per pixel.
func (s *Surface) BPP() int {
	if !s.ok() {
		return 0
	}
	return s.bpp
}

// SetRotation sets the orientation: rotation is the clockwise quarter
// turn count (0-3), reflect mirrors the result. The mapping is pure
// state; nothing is redrawn.
func (s *Surface) SetRotation(rotation int, reflect bool) {
	if !s.ok() {
		return
	}
	s.flags = RotationFlags(rotation, reflect)
}

// Flags returns the current orientation flags.
func (s *Surface) Flags() Flags {
	if !s.ok() {
		return 0
	}
	return s.flags
}

// SetColor sets the foreground color from a normalized RGB triple,
// quantized to the surface's bit depth.
func (s *Surface) SetColor(r, g, b float64) {
	if !s.ok() {
		return
	}
	s.fg = QuantizeRGB(r, g, b, s.bpp)
}

// SetColorInt sets the foreground color from an already packed value.
// The value is stored verbatim; masking to the bit depth happens on
// read-back.
func (s *Surface) SetColorInt(col uint32) {
	if !s.ok() {
		return
	}
	s.fg = col
}

// SetBgColor sets the background color from a normalized RGB triple.
func (s *Surface) SetBgColor(r, g, b float64) {
	if !s.ok() {
		return
	}
	s.bg = QuantizeRGB(r, g, b, s.bpp)
}

// SetBgColorInt sets the background color from an already packed value.
func (s *Surface) SetBgColorInt(col uint32) {
	if !s.ok() {
		return
	}
	s.bg = col
}

// Color returns the foreground color masked to the surface bit depth.
func (s *Surface) Color() uint32 {
	if !s.ok() {
		return 0
	}
	return s.fg & colorMask(s.bpp)
}

// BgColor returns the background color masked to the surface bit depth.
func (s *Surface) BgColor() uint32 {
	if !s.ok() {
		return 0
	}
	return s.bg & colorMask(s.bpp)
}

// SetInterrupt installs the cancellation predicate polled between glyphs
// during text drawing. Pass nil to remove it.
func (s *Surface) SetInterrupt(fn func() bool) {
	if s == nil {
		return
	}
	s.interrupt = fn
}

// interrupted polls the cancellation predicate.
func (s *Surface) interrupted() bool {
	return s.interrupt != nil && s.interrupt()
}

// plot writes one pixel in user coordinates.
func (s *Surface) plot(x, y int, col uint32) {
	dx, dy := s.flags.apply(x, y, s.width, s.height)
	s.target.SetPixel(dx, dy, col)
}

// fillDeviceRect maps an inclusive user rectangle to device space and
// fills it.
func (s *Surface) fillDeviceRect(x1, y1, x2, y2 int, col uint32) {
	dx1, dy1 := s.flags.apply(x1, y1, s.width, s.height)
	dx2, dy2 := s.flags.apply(x2, y2, s.width, s.height)
	if dx1 > dx2 {
		dx1, dx2 = dx2, dx1
	}
	if dy1 > dy2 {
		dy1, dy2 = dy2, dy1
	}
	s.target.FillRect(dx1, dy1, dx2, dy2, col)
}

// SetPixel writes one pixel in the given packed color and moves the
// cursor there.
func (s *Surface) SetPixel(x, y int, col uint32) {
	if !s.ok() {
		return
	}
	s.plot(x, y, col)
	s.cursorX = x
	s.cursorY = y
}

// Pixel reads one pixel back, masked to the surface bit depth. Targets
// without the Reader capability read as zero.
func (s *Surface) Pixel(x, y int) uint32 {
	if !s.ok() {
		return 0
	}
	r, ok := s.target.(Reader)
	if !ok {
		return 0
	}
	dx, dy := s.flags.apply(x, y, s.width, s.height)
	return r.Pixel(dx, dy) & colorMask(s.bpp)
}

// Clear fills the whole surface with the background color.
func (s *Surface) Clear() {
	if !s.ok() {
		return
	}
	s.target.FillRect(0, 0, s.width-1, s.height-1, s.bg)
}

// FillRect fills the inclusive rectangle (x1,y1)-(x2,y2) with the
// foreground color.
func (s *Surface) FillRect(x1, y1, x2, y2 int) {
	if !s.ok() {
		return
	}
	s.fillDeviceRect(x1, y1, x2, y2, s.fg)
}

// DrawRect draws a one-pixel-wide unfilled rectangle in the foreground
// color.
func (s *Surface) DrawRect(x1, y1, x2, y2 int) {
	if !s.ok() {
		return
	}
	s.fillDeviceRect(x1, y1, x2, y1, s.fg)
	s.fillDeviceRect(x1, y2, x2, y2, s.fg)
	s.fillDeviceRect(x1, y1, x1, y2, s.fg)
	s.fillDeviceRect(x2, y1, x2, y2, s.fg)
}

// MoveTo moves the cursor without drawing.
func (s *Surface) MoveTo(x, y int) {
	if !s.ok() {
		return
	}
	s.cursorX = x
	s.cursorY = y
}

// LineTo draws a line from the cursor to (x, y) in the foreground color
// and moves the cursor there.
func (s *Surface) LineTo(x, y int) {
	if !s.ok() {
		return
	}
	s.drawLine(s.cursorX, s.cursorY, x, y)
	s.cursorX = x
	s.cursorY = y
}

// Cursor returns the current cursor position.
func (s *Surface) Cursor() (x, y int) {
	if !s.ok() {
		return 0, 0
	}
	return s.cursorX, s.cursorY
}

// DrawLine draws a line between two points in the foreground color.
func (s *Surface) DrawLine(x1, y1, x2, y2 int) {
	if !s.ok() {
		return
	}
	s.drawLine(x1, y1, x2, y2)
}

func (s *Surface) drawLine(x1, y1, x2, y2 int) {
	raster.Line(x1, y1, x2, y2, func(x, y int) {
		s.plot(x, y, s.fg)
	})
}

// SetFontBitmap selects the builtin 4x6 bitmap font.
func (s *Surface) SetFontBitmap() {
	if !s.ok() {
		return
	}
	s.font = Font4x6{}
}

// SetFontVector selects a vector font of the given pixel size. Sizes are
// clamped to [1, 1023].
func (s *Surface) SetFontVector(size int) {
	if !s.ok() {
		return
	}
	if size < 1 {
		size = 1
	}
	if size > maxVectorFontSize {
		size = maxVectorFontSize
	}
	s.font = VectorFont{Size: size}
}

// SetFontCustom registers a packed custom bitmap font. firstChar must be
// in [0,255] and height in [1,255]; bitmap and widths must be non-nil.
// On error the surface's font selection is unchanged.
func (s *Surface) SetFontCustom(bitmap []byte, firstChar int, widths WidthSource, height int) error {
	if !s.ok() {
		return nil
	}
	if bitmap == nil {
		return &FontConfigError{Field: "bitmap", Value: 0}
	}
	if firstChar < 0 || firstChar > 255 {
		return &FontConfigError{Field: "firstChar", Value: firstChar}
	}
	if widths == nil {
		return &FontConfigError{Field: "widths", Value: 0}
	}
	if height <= 0 || height > 255 {
		return &FontConfigError{Field: "height", Value: height}
	}
	s.font = &CustomFont{
		Bitmap:    bitmap,
		FirstChar: byte(firstChar),
		Widths:    widths,
		Height:    height,
	}
	return nil
}

// SetFont selects a previously built font, such as one produced by the
// fontconv package.
func (s *Surface) SetFont(f Font) error {
	if !s.ok() {
		return nil
	}
	if cf, ok := f.(*CustomFont); ok {
		return s.SetFontCustom(cf.Bitmap, int(cf.FirstChar), cf.Widths, cf.Height)
	}
	if f == nil {
		f = Font4x6{}
	}
	s.font = f
	return nil
}

// Font returns the currently selected font.
func (s *Surface) Font() Font {
	if !s.ok() {
		return nil
	}
	return s.font
}
