package pix

// Font selects the glyph source for text drawing. It is a closed variant:
// the builtin 4x6 bitmap font, a vector font rendered through an external
// VectorRasterizer, or a custom packed bitmap font.
type Font interface {
	isFont()
}

// Font4x6 is the builtin 4x6 pixel bitmap font.
type Font4x6 struct{}

func (Font4x6) isFont() {}

// VectorFont draws scalable glyphs at the given pixel size through the
// surface's VectorRasterizer. Without a rasterizer installed, vector
// glyphs are skipped.
type VectorFont struct {
	Size int
}

func (VectorFont) isFont() {}

// CustomFont is a packed 1-bit-per-pixel bitmap font. All glyphs share a
// single bitstream: glyph n starts at the bit offset given by the prefix
// sum of width(i)*Height for i<n, columns stored first, bits consumed
// MSB-first within each byte.
type CustomFont struct {
	// Bitmap is the shared packed glyph bitstream.
	Bitmap []byte
	// FirstChar is the code of the first glyph in the font, usually 32.
	// Characters below it are undrawable (zero width, no pixels).
	FirstChar byte
	// Widths gives each glyph's advance in pixels.
	Widths WidthSource
	// Height is the glyph height in pixels, 1 to 255.
	Height int
}

func (*CustomFont) isFont() {}

// glyphSpan resolves a character's advance width and its bit offset into
// the width-source space (columns, not yet multiplied by Height).
// Characters before FirstChar or past a width table's end resolve to
// zero width.
func (f *CustomFont) glyphSpan(ch byte) (width, offset int) {
	idx := int(ch) - int(f.FirstChar)
	if idx < 0 {
		return 0, 0
	}
	switch w := f.Widths.(type) {
	case FixedWidth:
		return int(w), int(w) * idx
	case WidthTable:
		if idx >= len(w) {
			return 0, 0
		}
		for _, b := range w[:idx] {
			offset += int(b)
		}
		return int(w[idx]), offset
	}
	return 0, 0
}

// glyphWidth resolves only the advance width.
func (f *CustomFont) glyphWidth(ch byte) int {
	idx := int(ch) - int(f.FirstChar)
	if idx < 0 {
		return 0
	}
	switch w := f.Widths.(type) {
	case FixedWidth:
		return int(w)
	case WidthTable:
		if idx >= len(w) {
			return 0
		}
		return int(w[idx])
	}
	return 0
}

// WidthSource is the per-glyph width specification of a CustomFont:
// either one uniform width for every glyph, or a table of byte widths
// indexed by char code minus FirstChar.
type WidthSource interface {
	isWidthSource()
}

// FixedWidth gives every glyph the same advance. The bit offset of any
// glyph is then computed directly, without scanning a table.
type FixedWidth int

func (FixedWidth) isWidthSource() {}

// WidthTable holds one byte width per glyph, starting at FirstChar.
type WidthTable []byte

func (WidthTable) isWidthSource() {}

// VectorRasterizer renders scalable glyphs onto a surface. Vector glyph
// rasterization lives outside this package; implementations are
// installed with WithVectorRasterizer.
type VectorRasterizer interface {
	// DrawChar draws ch at (x, y) with the given pixel size in the
	// surface's foreground color and returns the horizontal advance.
	DrawChar(s *Surface, x, y, size int, ch byte) int

	// CharWidth returns the horizontal advance of ch at the given size
	// without drawing.
	CharWidth(size int, ch byte) int
}
