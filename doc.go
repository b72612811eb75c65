// Package pix provides a device-independent graphics surface for
// low-bit-depth displays.
//
// # Overview
//
// pix sits between an application-facing drawing API and a pluggable
// pixel-output target. It converts high-level drawing requests (set pixel,
// draw text, draw image, set rotation) into target-agnostic pixel writes,
// handling arbitrary color bit depths (1 to 32 bpp), packed custom bitmap
// fonts, and packed arbitrary-bit-depth images.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	// Create a 128x64 monochrome surface backed by a packed buffer
//	s, err := pix.New(128, 64, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.SetColor(1, 1, 1)
//	s.DrawString("hello", 0, 0)
//	s.DrawLine(0, 10, 127, 10)
//
// # Targets
//
// A Target is the concrete pixel-output mechanism: the builtin packed
// Buffer, a Callback pair for driver glue, or any user type implementing
// SetPixel and FillRect. The surface never inspects which variant it
// holds. See NewBuffer and NewCallback.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// SetRotation remaps coordinates through three flags (swap-xy, invert-x,
// invert-y) covering all eight 90-degree orientations; targets always see
// unrotated device coordinates.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Target, Font, Image, Flags
//   - Internal: raster (line and polygon scan conversion)
//   - Tools: fontconv (scalable font to packed bitmap font), cmd/pixfont
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
