// Package raster provides integer scan conversion for lines and filled
// polygons. It knows nothing about surfaces or colors: callers supply
// plot and span callbacks and apply their own state.
package raster

import "sort"

// Line rasterizes the segment (x1,y1)-(x2,y2) with Bresenham's
// algorithm, calling plot for every pixel including both endpoints.
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPoly fills the polygon given as interleaved x,y vertex pairs using
// even-odd scanline filling. span is called once per horizontal run with
// x1 <= x2. Polygons with fewer than three vertices fill nothing.
func FillPoly(verts []int, span func(x1, x2, y int)) {
	n := len(verts) / 2
	if n < 3 {
		return
	}

	minY, maxY := verts[1], verts[1]
	for i := 1; i < n; i++ {
		y := verts[i*2+1]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	// Intersections in half-open edge space: sampling at the scanline's
	// integer y keeps shared vertices from double-counting.
	xs := make([]int, 0, n)
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			x1, y1 := verts[i*2], verts[i*2+1]
			x2, y2 := verts[j*2], verts[j*2+1]
			if y1 == y2 {
				continue
			}
			if y1 > y2 {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}
			if y < y1 || y >= y2 {
				continue
			}
			xs = append(xs, x1+(y-y1)*(x2-x1)/(y2-y1))
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			span(xs[i], xs[i+1], y)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
