package image

import "math"

// InterpolationMode defines how resampling selects source pixels.
type InterpolationMode uint8

const (
	// InterpBilinear performs linear interpolation between 4 neighboring
	// pixels. Good balance between quality and performance, and the zero
	// value so unset configs resample smoothly.
	InterpBilinear InterpolationMode = iota

	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Resize resamples src to the given dimensions, covering the full target
// raster (aspect-fill). A source already at the target size is returned
// as-is without copying.
func Resize(src Buf, width, height int, mode InterpolationMode) Buf {
	if src.Width == width && src.Height == height {
		return src
	}

	dst := NewBuf(width, height)
	for y := 0; y < height; y++ {
		v := (float64(y) + 0.5) / float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)

			var r, g, b, a uint8
			switch mode {
			case InterpNearest:
				r, g, b, a = SampleNearest(src, u, v)
			default:
				r, g, b, a = SampleBilinear(src, u, v)
			}
			dst.SetRGBA(x, y, r, g, b, a)
		}
	}
	return dst
}

// SampleNearest performs nearest-neighbor sampling at normalized
// coordinates (u, v), where (0,0) is top-left and (1,1) bottom-right.
// Out-of-bounds coordinates are clamped to the edge.
func SampleNearest(img Buf, u, v float64) (r, g, b, a uint8) {
	x := int(math.Floor(u * float64(img.Width)))
	y := int(math.Floor(v * float64(img.Height)))

	x = clamp(x, 0, img.Width-1)
	y = clamp(y, 0, img.Height-1)

	return img.GetRGBA(x, y)
}

// SampleBilinear performs bilinear interpolation at normalized coordinates
// (u, v), blending the 4 neighboring pixels with linear weights.
func SampleBilinear(img Buf, u, v float64) (r, g, b, a uint8) {
	fx := u*float64(img.Width) - 0.5
	fy := v*float64(img.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	x0 = clamp(x0, 0, img.Width-1)
	y0 = clamp(y0, 0, img.Height-1)
	x1 = clamp(x1, 0, img.Width-1)
	y1 = clamp(y1, 0, img.Height-1)

	r00, g00, b00, a00 := img.GetRGBA(x0, y0)
	r10, g10, b10, a10 := img.GetRGBA(x1, y0)
	r01, g01, b01, a01 := img.GetRGBA(x0, y1)
	r11, g11, b11, a11 := img.GetRGBA(x1, y1)

	r = uint8(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty) + 0.5)
	g = uint8(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty) + 0.5)
	b = uint8(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty) + 0.5)
	a = uint8(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty) + 0.5)

	return r, g, b, a
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
