// Package fontconv converts scalable fonts into packed pix custom
// fonts. Embedded projects typically run the conversion offline (see
// cmd/pixfont) and ship the packed bitstream, but the conversion is
// cheap enough to run at startup too.
package fontconv

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/pix"
)

// Common conversion errors.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontconv: empty font data")

	// ErrBadRange is returned when FirstChar exceeds LastChar.
	ErrBadRange = errors.New("fontconv: first char after last char")

	// ErrTooTall is returned when the rendered glyph height does not
	// fit the packed font's 255 pixel limit.
	ErrTooTall = errors.New("fontconv: font too tall for packed format")
)

// Options configures a font conversion.
type Options struct {
	// Size is the pixel size (em height) to rasterize at. Default 8.
	Size float64

	// DPI is the dots-per-inch conversion factor. Default 72, which
	// makes Size a pixel count.
	DPI float64

	// FirstChar and LastChar bound the byte code range to convert.
	// Defaults 32 and 126.
	FirstChar byte
	LastChar  byte

	// Threshold is the coverage level (0-255) above which a pixel is
	// set. Default 128.
	Threshold uint8

	// Charmap maps byte codes at or above 0x80 to runes; codes below
	// are taken as ASCII. Default charmap.ISO8859_1.
	Charmap *charmap.Charmap
}

func (o *Options) fill() {
	if o.Size <= 0 {
		o.Size = 8
	}
	if o.DPI <= 0 {
		o.DPI = 72
	}
	if o.FirstChar == 0 && o.LastChar == 0 {
		o.FirstChar, o.LastChar = 32, 126
	}
	if o.Threshold == 0 {
		o.Threshold = 128
	}
	if o.Charmap == nil {
		o.Charmap = charmap.ISO8859_1
	}
}

// mapRune maps a byte code to the rune it should render.
func (o *Options) mapRune(code byte) rune {
	if code < 0x80 {
		return rune(code)
	}
	return o.Charmap.DecodeByte(code)
}

// FromOpenType parses TTF or OTF data and converts the byte code range
// of opts into a packed custom font. Characters the font has no glyph
// for get zero width (undrawable), determined by a go-text coverage
// pass over the font's character map.
func FromOpenType(data []byte, opts Options) (*pix.CustomFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	opts.fill()
	if opts.FirstChar > opts.LastChar {
		return nil, ErrBadRange
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontconv: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontconv: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	covered, err := coverage(data, &opts)
	if err != nil {
		return nil, err
	}
	return fromFace(face, &opts, covered)
}

// FromFace converts any x/image font face into a packed custom font.
// Coverage is determined through the face itself: characters whose
// glyph is missing get zero width.
func FromFace(face font.Face, opts Options) (*pix.CustomFont, error) {
	opts.fill()
	if opts.FirstChar > opts.LastChar {
		return nil, ErrBadRange
	}

	covered := make([]bool, int(opts.LastChar)-int(opts.FirstChar)+1)
	for i := range covered {
		r := opts.mapRune(opts.FirstChar + byte(i))
		_, ok := face.GlyphAdvance(r)
		covered[i] = ok
	}
	return fromFace(face, &opts, covered)
}

// fromFace renders each covered character into an alpha mask, thresholds
// it, and packs the set bits column-major MSB-first into a single
// bitstream with a per-glyph width table.
func fromFace(face font.Face, opts *Options, covered []bool) (*pix.CustomFont, error) {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if height < 1 {
		height = 1
	}
	if height > 255 {
		return nil, fmt.Errorf("%w: %d rows", ErrTooTall, height)
	}

	n := int(opts.LastChar) - int(opts.FirstChar) + 1
	widths := make(pix.WidthTable, 0, n)
	var enc bitWriter

	for i := 0; i < n; i++ {
		if !covered[i] {
			widths = append(widths, 0)
			continue
		}
		r := opts.mapRune(opts.FirstChar + byte(i))
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			widths = append(widths, 0)
			continue
		}
		width := advance.Ceil()
		if width < 1 {
			width = 1
		}
		if width > 255 {
			width = 255
		}

		mask := image.NewAlpha(image.Rect(0, 0, width, height))
		d := font.Drawer{
			Dst:  mask,
			Src:  image.NewUniform(color.Alpha{A: 0xFF}),
			Face: face,
			Dot:  fixed.P(0, ascent),
		}
		d.DrawString(string(r))

		widths = append(widths, byte(width))
		for cx := 0; cx < width; cx++ {
			for cy := 0; cy < height; cy++ {
				enc.write(mask.AlphaAt(cx, cy).A >= opts.Threshold)
			}
		}
	}

	return &pix.CustomFont{
		Bitmap:    enc.flush(),
		FirstChar: opts.FirstChar,
		Widths:    widths,
		Height:    height,
	}, nil
}

// bitWriter packs single bits MSB-first.
type bitWriter struct {
	out  []byte
	acc  byte
	bits int
}

func (w *bitWriter) write(bit bool) {
	w.acc <<= 1
	if bit {
		w.acc |= 1
	}
	w.bits++
	if w.bits == 8 {
		w.out = append(w.out, w.acc)
		w.acc, w.bits = 0, 0
	}
}

func (w *bitWriter) flush() []byte {
	if w.bits > 0 {
		w.out = append(w.out, w.acc<<uint(8-w.bits))
		w.acc, w.bits = 0, 0
	}
	return w.out
}
