package pix

import "github.com/gogpu/pix/internal/raster"

// maxPolyVertices caps FillPoly input. Coordinates past the cap are
// dropped with a warning rather than failing the whole draw.
const maxPolyVertices = 64

// FillPoly fills the polygon given as interleaved x,y coordinate pairs
// in the foreground color. At most 64 vertices (128 coordinate values)
// are used; excess coordinates are dropped and a warning logged, and the
// truncated polygon is still filled. An odd trailing coordinate is
// ignored.
func (s *Surface) FillPoly(coords []int) {
	if !s.ok() {
		return
	}
	verts, truncated := collectVertices(coords, maxPolyVertices)
	if truncated {
		Logger().Warn("pix: maximum number of polygon points exceeded",
			"max", maxPolyVertices, "got", len(coords)/2)
	}
	raster.FillPoly(verts, func(x1, x2, y int) {
		s.fillDeviceRect(x1, y, x2, y, s.fg)
	})
}

// collectVertices walks coords pairwise into a bounded vertex list.
// It reports whether the input held more scalars than the cap allows.
func collectVertices(coords []int, maxVerts int) (verts []int, truncated bool) {
	n := len(coords)
	if n > 2*maxVerts {
		n = 2 * maxVerts
		truncated = true
	}
	n &^= 1
	return coords[:n], truncated
}
