// Package image provides raw RGBA raster buffers and the pixel-level
// operations the filter pipeline needs: orientation normalization,
// resampling, and a file I/O bridge for tools and tests.
package image

import "errors"

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Buf is a minimal RGBA8 raster: 4 bytes per pixel, row-major, tightly
// packed (stride == width*4), non-premultiplied.
//
// Buf is a value type around a shared pixel slice; copying a Buf aliases
// the same pixels.
type Buf struct {
	Data   []uint8
	Width  int
	Height int
}

// NewBuf allocates a zeroed buffer with the given dimensions.
func NewBuf(width, height int) Buf {
	return Buf{
		Data:   make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// GetRGBA returns the four channel bytes of pixel (x, y).
// Out-of-bounds coordinates return zeros.
func (b Buf) GetRGBA(x, y int) (uint8, uint8, uint8, uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0, 0, 0, 0
	}
	i := (y*b.Width + x) * 4
	return b.Data[i], b.Data[i+1], b.Data[i+2], b.Data[i+3]
}

// SetRGBA sets the four channel bytes of pixel (x, y).
// Out-of-bounds coordinates are ignored.
func (b Buf) SetRGBA(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 4
	b.Data[i+0] = r
	b.Data[i+1] = g
	b.Data[i+2] = bl
	b.Data[i+3] = a
}

// copyPixel copies one pixel from src(sx,sy) to dst(dx,dy).
// Both coordinates must be in bounds.
func copyPixel(dst Buf, dx, dy int, src Buf, sx, sy int) {
	di := (dy*dst.Width + dx) * 4
	si := (sy*src.Width + sx) * 4
	copy(dst.Data[di:di+4], src.Data[si:si+4])
}
