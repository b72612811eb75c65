package pix

// Flags encodes the surface orientation as three independent booleans.
// Every 90-degree rotation, with or without mirroring, is expressible as
// exactly one combination of these flags, so the encoding covers all
// eight orientations without collisions.
type Flags uint8

const (
	// FlagSwapXY exchanges the x and y axes.
	FlagSwapXY Flags = 1 << iota
	// FlagInvertX mirrors the x axis.
	FlagInvertX
	// FlagInvertY mirrors the y axis.
	FlagInvertY
)

// RotationFlags returns the flag set for a clockwise rotation (0 for none,
// 1 for 90 degrees, 2 for 180, 3 for 270), optionally reflected.
func RotationFlags(rotation int, reflect bool) Flags {
	var f Flags
	switch rotation & 3 {
	case 0:
	case 1:
		f = FlagSwapXY | FlagInvertX
	case 2:
		f = FlagInvertX | FlagInvertY
	case 3:
		f = FlagSwapXY | FlagInvertY
	}
	if reflect {
		if f&FlagSwapXY != 0 {
			f ^= FlagInvertY
		} else {
			f ^= FlagInvertX
		}
	}
	return f
}

// SwapXY reports whether the x and y axes are exchanged.
func (f Flags) SwapXY() bool { return f&FlagSwapXY != 0 }

// InvertX reports whether the x axis is mirrored.
func (f Flags) InvertX() bool { return f&FlagInvertX != 0 }

// InvertY reports whether the y axis is mirrored.
func (f Flags) InvertY() bool { return f&FlagInvertY != 0 }

// apply maps user coordinates to device coordinates on a target of the
// given unrotated dimensions. Swap runs first so the invert flags always
// act on device axes.
func (f Flags) apply(x, y, devW, devH int) (int, int) {
	if f&FlagSwapXY != 0 {
		x, y = y, x
	}
	if f&FlagInvertX != 0 {
		x = devW - 1 - x
	}
	if f&FlagInvertY != 0 {
		y = devH - 1 - y
	}
	return x, y
}
