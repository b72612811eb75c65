package pix

// Target is the pixel-output capability a surface draws through. It is
// the concrete output mechanism: a packed memory buffer, driver glue via
// callbacks, or a hardware display. The surface never inspects which
// variant it holds.
//
// Coordinates passed to a Target are device coordinates (rotation already
// applied). Out-of-range coordinates must be clipped or ignored by the
// target, not by the caller.
type Target interface {
	// SetPixel writes one pixel in the target's native packed format.
	SetPixel(x, y int, col uint32)

	// FillRect fills the inclusive rectangle (x1,y1)-(x2,y2).
	// x1 <= x2 and y1 <= y2 are guaranteed by the caller.
	FillRect(x1, y1, x2, y2 int, col uint32)
}

// Reader is an optional Target capability for reading pixels back.
// Targets that cannot read (write-only driver glue) simply omit it, and
// Surface.Pixel returns zero.
type Reader interface {
	// Pixel returns the packed color at device coordinates (x, y).
	Pixel(x, y int) uint32
}
