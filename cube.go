package lutfilter

import (
	"fmt"
	"math"
)

// Layout selects how a LUT reference image encodes the color cube.
//
// Two incompatible encodings exist in the wild and cannot be told apart
// reliably from image dimensions alone, so the layout is an explicit
// build-time parameter rather than a guess.
type Layout uint8

const (
	// LayoutLinear reads the reference image row-major, one pixel per grid
	// point, with r the fastest-varying axis, then g, then b.
	LayoutLinear Layout = iota

	// LayoutTiled reads the reference image as a square grid of N×N tiles,
	// each tile holding the (r,g) plane for one fixed b. Tiles are arranged
	// in a ⌈√N⌉ × ⌈√N⌉ grid, row-major.
	LayoutTiled
)

// String returns a string representation of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutLinear:
		return "Linear"
	case LayoutTiled:
		return "Tiled"
	default:
		return "Unknown"
	}
}

// Cube is a dense 3D color lookup table.
//
// Data holds normalized [0,1] RGBA values, one per grid point, addressed at
// integer coordinate (r,g,b) by ((b*N+g)*N + r)*4 + channel. A Cube is
// immutable after construction and safe to share between goroutines.
type Cube struct {
	dimension int
	layout    Layout
	data      []float32
}

// Dimension returns the cube's grid size N.
func (c *Cube) Dimension() int {
	return c.dimension
}

// Layout returns the layout the cube was built from.
func (c *Cube) Layout() Layout {
	return c.layout
}

// Data returns the raw grid data, N*N*N*4 floats.
func (c *Cube) Data() []float32 {
	return c.data
}

// at returns the stored RGBA value at integer grid coordinate (r,g,b).
// Coordinates must satisfy 0 ≤ r,g,b < N.
func (c *Cube) at(r, g, b int) (float32, float32, float32, float32) {
	i := ((b*c.dimension+g)*c.dimension + r) * 4
	return c.data[i], c.data[i+1], c.data[i+2], c.data[i+3]
}

// InvalidDimensionError is returned by BuildCube when the requested cube
// dimension is below the minimum of 2. No cube is produced.
type InvalidDimensionError struct {
	Dimension int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("lutfilter: invalid cube dimension %d (minimum 2)", e.Dimension)
}

// SizeMismatchError is returned by BuildCube when the reference image does
// not contain exactly N³ pixels. The build still succeeds in a degraded
// form: grid points without a source pixel stay zero. Callers that require
// a complete cube should treat this error as fatal.
type SizeMismatchError struct {
	Dimension  int
	WantPixels int
	GotPixels  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("lutfilter: LUT reference has %d pixels, want %d for dimension %d",
		e.GotPixels, e.WantPixels, e.Dimension)
}

// BuildCube decodes a LUT reference image into a lookup cube of the given
// dimension.
//
// The reference image is read according to layout and is never mutated.
// If its pixel count differs from N³ the returned error is a
// *SizeMismatchError and the cube is still usable: grid points beyond the
// available pixels hold zero. A dimension below 2 is fatal and returns a
// nil cube with an *InvalidDimensionError.
func BuildCube(ref *Pixmap, dimension int, layout Layout) (*Cube, error) {
	if dimension < 2 {
		return nil, &InvalidDimensionError{Dimension: dimension}
	}

	n := dimension
	cube := &Cube{
		dimension: n,
		layout:    layout,
		data:      make([]float32, n*n*n*4),
	}

	var mismatch error
	want := n * n * n
	got := ref.Width() * ref.Height()
	if got != want {
		mismatch = &SizeMismatchError{Dimension: n, WantPixels: want, GotPixels: got}
		Logger().Warn("LUT reference size mismatch",
			"dimension", n, "wantPixels", want, "gotPixels", got, "layout", layout.String())
	}

	switch layout {
	case LayoutTiled:
		fillTiled(cube, ref)
	default:
		fillLinear(cube, ref)
	}

	return cube, mismatch
}

// fillLinear fills grid points in ascending (b,g,r) index order from
// row-major reference pixels: pixel i maps to r=i%N, g=(i/N)%N, b=i/N².
func fillLinear(cube *Cube, ref *Pixmap) {
	n := cube.dimension
	src := ref.Data()

	count := ref.Width() * ref.Height()
	if max := n * n * n; count > max {
		count = max
	}

	for i := 0; i < count; i++ {
		si := i * 4
		di := i * 4 // linear pixel order matches grid index order
		cube.data[di+0] = float32(src[si+0]) / 255
		cube.data[di+1] = float32(src[si+1]) / 255
		cube.data[di+2] = float32(src[si+2]) / 255
		cube.data[di+3] = float32(src[si+3]) / 255
	}
}

// fillTiled fills the cube from a square tile grid. Tile (tx,ty) holds the
// (r,g) plane for b = ty*cols + tx; within a tile, x is r and y is g.
func fillTiled(cube *Cube, ref *Pixmap) {
	n := cube.dimension
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	src := ref.Data()
	w, h := ref.Width(), ref.Height()

	for b := 0; b < n; b++ {
		tileX := (b % cols) * n
		tileY := (b / cols) * n
		for g := 0; g < n; g++ {
			y := tileY + g
			if y >= h {
				continue
			}
			for r := 0; r < n; r++ {
				x := tileX + r
				if x >= w {
					continue
				}
				si := (y*w + x) * 4
				di := ((b*n+g)*n + r) * 4
				cube.data[di+0] = float32(src[si+0]) / 255
				cube.data[di+1] = float32(src[si+1]) / 255
				cube.data[di+2] = float32(src[si+2]) / 255
				cube.data[di+3] = float32(src[si+3]) / 255
			}
		}
	}
}
