package lutfilter

import (
	imageutil "github.com/gablabelle/expo-lut-filter/internal/image"
)

// Orientation describes an image's stored rotation or mirroring relative
// to its display orientation. Normalizing runs before LUT sampling so that
// sampling coordinates correspond to the visually correct raster.
type Orientation uint8

const (
	// OrientIdentity leaves the buffer as-is.
	OrientIdentity Orientation = iota
	// OrientRotate90 rotates 90 degrees clockwise (dimensions swap).
	OrientRotate90
	// OrientRotate180 rotates 180 degrees.
	OrientRotate180
	// OrientRotate270 rotates 270 degrees clockwise (dimensions swap).
	OrientRotate270
	// OrientFlipHorizontal mirrors across the vertical axis.
	OrientFlipHorizontal
	// OrientFlipVertical mirrors across the horizontal axis.
	OrientFlipVertical
)

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientIdentity:
		return "Identity"
	case OrientRotate90:
		return "Rotate90"
	case OrientRotate180:
		return "Rotate180"
	case OrientRotate270:
		return "Rotate270"
	case OrientFlipHorizontal:
		return "FlipHorizontal"
	case OrientFlipVertical:
		return "FlipVertical"
	default:
		return "Unknown"
	}
}

// OrientationFromEXIF maps an EXIF orientation value (1-8) to an
// Orientation. EXIF values 5 and 7 combine a flip with a quarter turn and
// have no single-state equivalent here; they map to OrientIdentity, as do
// out-of-range values.
func OrientationFromEXIF(v int) Orientation {
	switch v {
	case 2:
		return OrientFlipHorizontal
	case 3:
		return OrientRotate180
	case 4:
		return OrientFlipVertical
	case 6:
		return OrientRotate90
	case 8:
		return OrientRotate270
	default:
		return OrientIdentity
	}
}

// Normalize applies the orientation's raster permutation to p and returns
// the result. OrientIdentity returns p unchanged without copying; every
// other orientation allocates a new pixmap. The transform is exact, so an
// orientation composed with its inverse reproduces the original bytes.
func (o Orientation) Normalize(p *Pixmap) *Pixmap {
	if o == OrientIdentity {
		return p
	}

	src := imageutil.Buf{Data: p.data, Width: p.width, Height: p.height}

	var dst imageutil.Buf
	switch o {
	case OrientRotate90:
		dst = imageutil.Rotate90(src)
	case OrientRotate180:
		dst = imageutil.Rotate180(src)
	case OrientRotate270:
		dst = imageutil.Rotate270(src)
	case OrientFlipHorizontal:
		dst = imageutil.FlipHorizontal(src)
	case OrientFlipVertical:
		dst = imageutil.FlipVertical(src)
	default:
		return p
	}

	return &Pixmap{width: dst.Width, height: dst.Height, data: dst.Data}
}
