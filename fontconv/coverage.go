package fontconv

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	gotext "github.com/go-text/typesetting/font"
)

// coverage reports, per byte code in the options range, whether the
// font's character map carries a nominal glyph for the mapped rune.
// Uncovered characters become zero-width entries in the packed font
// rather than rendering a notdef box.
func coverage(data []byte, opts *Options) ([]bool, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontconv: coverage parse failed: %w", err)
	}

	n := int(opts.LastChar) - int(opts.FirstChar) + 1
	covered := make([]bool, n)
	for i := 0; i < n; i++ {
		r := opts.mapRune(opts.FirstChar + byte(i))
		if r == utf8.RuneError {
			continue
		}
		_, ok := face.NominalGlyph(r)
		covered[i] = ok
	}
	return covered, nil
}
