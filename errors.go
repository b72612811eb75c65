package pix

import (
	"errors"
	"fmt"
)

// Common surface and target errors.
var (
	// ErrInvalidBPP is returned when a bit depth is not one of
	// 1, 2, 4, 8, 16, 24 or 32.
	ErrInvalidBPP = errors.New("pix: invalid bits per pixel")

	// ErrInvalidSize is returned when surface dimensions are out of range.
	ErrInvalidSize = errors.New("pix: invalid surface size")

	// ErrInvalidImage is returned when an image descriptor is malformed.
	ErrInvalidImage = errors.New("pix: invalid image")

	// ErrNilCallback is returned when a callback target is created
	// without a set-pixel function.
	ErrNilCallback = errors.New("pix: callback target needs a setPixel function")

	// ErrUnknownTarget is returned when a named target is not registered.
	ErrUnknownTarget = errors.New("pix: unknown target")
)

// FontConfigError is returned when a custom font registration fails
// validation. The surface is left unchanged.
type FontConfigError struct {
	Field string // "firstChar", "height", "bitmap", "widths"
	Value int
}

func (e *FontConfigError) Error() string {
	return fmt.Sprintf("pix: invalid font %s: %d", e.Field, e.Value)
}
