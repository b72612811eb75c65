package pix

// Callback is a Target that forwards pixel writes to user functions.
// It is the glue layer for display drivers that expose their own
// set-pixel primitive. The fill function is optional; without it, rect
// fills degrade to a pixel loop.
type Callback struct {
	setPixel func(x, y int, col uint32)
	fillRect func(x1, y1, x2, y2 int, col uint32)
}

// NewCallback creates a callback target. setPixel must be non-nil;
// fillRect may be nil.
func NewCallback(setPixel func(x, y int, col uint32), fillRect func(x1, y1, x2, y2 int, col uint32)) (*Callback, error) {
	if setPixel == nil {
		return nil, ErrNilCallback
	}
	return &Callback{setPixel: setPixel, fillRect: fillRect}, nil
}

// SetPixel implements Target.
func (c *Callback) SetPixel(x, y int, col uint32) {
	c.setPixel(x, y, col)
}

// FillRect implements Target.
func (c *Callback) FillRect(x1, y1, x2, y2 int, col uint32) {
	if c.fillRect != nil {
		c.fillRect(x1, y1, x2, y2, col)
		return
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.setPixel(x, y, col)
		}
	}
}
