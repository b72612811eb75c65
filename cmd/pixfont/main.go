// Command pixfont converts a scalable font (TTF or OTF) into Go source
// embedding a packed pix custom font.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/fontconv"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to the .ttf/.otf file")
		size     = flag.Float64("size", 8, "pixel size to rasterize at")
		first    = flag.Int("first", 32, "first byte code to convert")
		last     = flag.Int("last", 126, "last byte code to convert")
		name     = flag.String("name", "customFont", "Go variable name")
		pkg      = flag.String("pkg", "main", "Go package name")
		output   = flag.String("output", "font.go", "output file")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("pixfont: -font is required")
	}
	if *first < 0 || *first > 255 || *last < 0 || *last > 255 {
		log.Fatal("pixfont: -first and -last must be in [0,255]")
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("pixfont: %v", err)
	}

	f, err := fontconv.FromOpenType(data, fontconv.Options{
		Size:      *size,
		FirstChar: byte(*first),
		LastChar:  byte(*last),
	})
	if err != nil {
		log.Fatalf("pixfont: %v", err)
	}

	if err := os.WriteFile(*output, render(*pkg, *name, f), 0o644); err != nil {
		log.Fatalf("pixfont: %v", err)
	}
	log.Printf("pixfont: wrote %s (%d glyphs, height %d, %d bitmap bytes)",
		*output, len(f.Widths.(pix.WidthTable)), f.Height, len(f.Bitmap))
}

// render emits the font as Go source.
func render(pkg, name string, f *pix.CustomFont) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by pixfont. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/gogpu/pix\"\n\n")
	fmt.Fprintf(&buf, "var %s = &pix.CustomFont{\n", name)
	fmt.Fprintf(&buf, "\tFirstChar: %d,\n", f.FirstChar)
	fmt.Fprintf(&buf, "\tHeight:    %d,\n", f.Height)
	fmt.Fprintf(&buf, "\tWidths: pix.WidthTable{")
	for i, w := range f.Widths.(pix.WidthTable) {
		if i%16 == 0 {
			fmt.Fprintf(&buf, "\n\t\t")
		}
		fmt.Fprintf(&buf, "%d, ", w)
	}
	fmt.Fprintf(&buf, "\n\t},\n")
	fmt.Fprintf(&buf, "\tBitmap: []byte{")
	for i, b := range f.Bitmap {
		if i%12 == 0 {
			fmt.Fprintf(&buf, "\n\t\t")
		}
		fmt.Fprintf(&buf, "0x%02x, ", b)
	}
	fmt.Fprintf(&buf, "\n\t},\n}\n")
	return buf.Bytes()
}
