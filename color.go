package pix

// QuantizeRGB converts a normalized color triple into the packed native
// color word for the given bit depth. Each channel is in [0,1]; values
// outside that range are clamped after scaling.
//
// Packing by depth:
//   - 16 bpp: RGB565, blue in bits 0-4, green in 5-10, red in 11-15
//   - 24 bpp: RGB888
//   - 32 bpp: RGB888 tagged opaque (0xFF000000)
//   - 1/2/4/8 bpp: monochrome threshold, all bits set when the channel
//     sum reaches 384 (out of 765), zero otherwise
func QuantizeRGB(r, g, b float64, bpp int) uint32 {
	ri := clampChannel(int(r * 256))
	gi := clampChannel(int(g * 256))
	bi := clampChannel(int(b * 256))

	switch bpp {
	case 16:
		return uint32(bi>>3) | uint32(gi>>2)<<5 | uint32(ri>>3)<<11
	case 32:
		return 0xFF000000 | uint32(bi) | uint32(gi)<<8 | uint32(ri)<<16
	case 24:
		return uint32(bi) | uint32(gi)<<8 | uint32(ri)<<16
	default:
		if ri+gi+bi >= 384 {
			return 0xFFFFFFFF
		}
		return 0
	}
}

// clampChannel clamps a scaled channel value to [0,255]. A channel of
// exactly 1.0 scales to 256 and clamps down to 255.
func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// colorMask returns the mask covering every representable color bit at
// the given depth. Computed in 64 bits so bpp=32 does not overflow a
// 32-bit shift.
func colorMask(bpp int) uint32 {
	if bpp <= 0 {
		return 0
	}
	if bpp >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(uint64(1)<<uint(bpp) - 1)
}

// validBPP reports whether bpp is a supported surface depth. A single
// color never spreads across byte boundaries at these depths.
func validBPP(bpp int) bool {
	switch bpp {
	case 1, 2, 4, 8, 16, 24, 32:
		return true
	}
	return false
}
