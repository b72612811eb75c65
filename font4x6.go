package pix

// font4x6 is the builtin bitmap font: ASCII 32-127, uniform width 4
// (3 pixel glyph body plus 1 pixel spacing), height 6 (rows 0-4 body,
// row 5 for descenders). Packed in the CustomFont bitstream format so
// the custom glyph decoder is the only glyph path.
var font4x6 = &CustomFont{
	Bitmap:    font4x6Bitmap,
	FirstChar: 32,
	Widths:    FixedWidth(4),
	Height:    6,
}

var font4x6Bitmap = []byte{
	0x00, 0x00, 0x00, 0x03, 0xa0, 0x00, 0xc0, 0x0c, 0x00, 0xf9, 0x4f, 0x80,
	0x4b, 0xeb, 0x00, 0x98, 0x8c, 0x80, 0x52, 0xa5, 0x80, 0x03, 0x00, 0x00,
	0x01, 0xc8, 0x80, 0x02, 0x27, 0x00, 0x50, 0x85, 0x00, 0x21, 0xc2, 0x00,
	0x04, 0x60, 0x00, 0x20, 0x82, 0x00, 0x00, 0x20, 0x00, 0x18, 0x8c, 0x00,
	0xfa, 0x2f, 0x80, 0x4b, 0xe0, 0x80, 0xba, 0xae, 0x80, 0x8a, 0xaf, 0x80,
	0xe0, 0x8f, 0x80, 0xea, 0xab, 0x80, 0xfa, 0xab, 0x80, 0x82, 0xec, 0x00,
	0xfa, 0xaf, 0x80, 0xea, 0xaf, 0x80, 0x01, 0x40, 0x00, 0x09, 0x40, 0x00,
	0x21, 0x48, 0x80, 0x51, 0x45, 0x00, 0x89, 0x42, 0x00, 0x82, 0xac, 0x00,
	0x72, 0xae, 0x80, 0x7a, 0x87, 0x80, 0xfa, 0xa5, 0x00, 0x72, 0x28, 0x80,
	0xfa, 0x27, 0x00, 0xfa, 0xa8, 0x80, 0xfa, 0x88, 0x00, 0x72, 0x2b, 0x80,
	0xf8, 0x8f, 0x80, 0x8b, 0xe8, 0x80, 0x10, 0x2f, 0x00, 0xf8, 0x8d, 0x80,
	0xf8, 0x20, 0x80, 0xf9, 0x8f, 0x80, 0xf9, 0xcf, 0x80, 0x72, 0x27, 0x00,
	0xfa, 0x84, 0x00, 0x72, 0x27, 0x80, 0xfa, 0x85, 0x80, 0x4a, 0xa9, 0x00,
	0x83, 0xe8, 0x00, 0xf8, 0x2f, 0x80, 0xf0, 0x2f, 0x00, 0xf8, 0xcf, 0x80,
	0xd8, 0x8d, 0x80, 0xc0, 0xec, 0x00, 0x9a, 0xac, 0x80, 0x03, 0xe8, 0x80,
	0xc0, 0x81, 0x80, 0x8b, 0xe0, 0x00, 0x42, 0x04, 0x00, 0x08, 0x20, 0x80,
	0x81, 0x00, 0x00, 0x31, 0x27, 0x80, 0xf9, 0x23, 0x00, 0x31, 0x24, 0x80,
	0x31, 0x2f, 0x80, 0x31, 0xa2, 0x80, 0x21, 0xea, 0x00, 0x25, 0x57, 0x80,
	0xf9, 0x03, 0x80, 0x02, 0xe0, 0x00, 0x08, 0x1b, 0x80, 0xf8, 0xc4, 0x80,
	0x03, 0xc0, 0x80, 0x79, 0x87, 0x80, 0x79, 0x03, 0x80, 0x31, 0x23, 0x00,
	0x7d, 0x42, 0x00, 0x21, 0x47, 0xc0, 0x78, 0x84, 0x00, 0x29, 0xe5, 0x00,
	0x43, 0xc4, 0x80, 0x70, 0x27, 0x80, 0x70, 0x27, 0x00, 0x78, 0x67, 0x80,
	0x48, 0xc4, 0x80, 0x64, 0x57, 0x80, 0x59, 0xa6, 0x80, 0x21, 0xc8, 0x80,
	0x03, 0xe0, 0x00, 0x89, 0xc2, 0x00, 0x41, 0x82, 0x00, 0xfb, 0xef, 0x80,
}
