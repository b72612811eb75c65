package pix

// DrawString draws text at (x, y) in the current font and foreground
// color, advancing x by each glyph's width. Text is addressed bytewise:
// custom fonts index glyphs by byte code relative to their first
// character.
//
// The surface's interrupt predicate is polled once per character; when
// it fires, the remaining characters are skipped and the cursor is left
// after the last glyph actually drawn.
func (s *Surface) DrawString(text string, x, y int) {
	if !s.ok() {
		return
	}
	for i := 0; i < len(text); i++ {
		if s.interrupted() {
			break
		}
		x += s.drawGlyph(text[i], x, y)
	}
	s.cursorX = x
	s.cursorY = y
}

// StringWidth returns the width of text in pixels in the current font,
// without drawing.
func (s *Surface) StringWidth(text string) int {
	if !s.ok() {
		return 0
	}
	width := 0
	for i := 0; i < len(text); i++ {
		width += s.glyphWidth(text[i])
	}
	return width
}

// drawGlyph draws one character and returns its horizontal advance.
func (s *Surface) drawGlyph(ch byte, x, y int) int {
	switch f := s.font.(type) {
	case Font4x6:
		return s.drawCustomGlyph(font4x6, ch, x, y)
	case VectorFont:
		if s.vector == nil {
			return 0
		}
		return s.vector.DrawChar(s, x, y, f.Size, ch)
	case *CustomFont:
		return s.drawCustomGlyph(f, ch, x, y)
	}
	return 0
}

// glyphWidth returns one character's advance without drawing.
func (s *Surface) glyphWidth(ch byte) int {
	switch f := s.font.(type) {
	case Font4x6:
		return font4x6.glyphWidth(ch)
	case VectorFont:
		if s.vector == nil {
			return 0
		}
		return s.vector.CharWidth(f.Size, ch)
	case *CustomFont:
		return f.glyphWidth(ch)
	}
	return 0
}

// drawCustomGlyph decodes one glyph from the packed bitstream and plots
// its set bits in the foreground color. Columns are stored first: the
// bit at (cx, cy) is bit cx*Height+cy of the glyph, MSB-first within
// each byte. Returns the glyph width.
func (s *Surface) drawCustomGlyph(f *CustomFont, ch byte, x, y int) int {
	width, cols := f.glyphSpan(ch)
	if width == 0 {
		return 0
	}
	bmpOffset := cols * f.Height
	for cx := 0; cx < width; cx++ {
		for cy := 0; cy < f.Height; cy++ {
			idx := bmpOffset >> 3
			if idx >= len(f.Bitmap) {
				// Truncated bitstream; advance as if drawn.
				return width
			}
			if f.Bitmap[idx]<<uint(bmpOffset&7)&0x80 != 0 {
				s.plot(x+cx, y+cy, s.fg)
			}
			bmpOffset++
		}
	}
	return width
}
