package image

// Orientation raster operations. Each is an exact pixel permutation: no
// interpolation, so applying an operation and its inverse reproduces the
// input byte for byte. Rotations by 90 and 270 degrees swap dimensions.

// Rotate90 rotates the buffer 90 degrees clockwise.
func Rotate90(src Buf) Buf {
	dst := NewBuf(src.Height, src.Width)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			copyPixel(dst, src.Height-1-y, x, src, x, y)
		}
	}
	return dst
}

// Rotate180 rotates the buffer 180 degrees.
func Rotate180(src Buf) Buf {
	dst := NewBuf(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			copyPixel(dst, src.Width-1-x, src.Height-1-y, src, x, y)
		}
	}
	return dst
}

// Rotate270 rotates the buffer 270 degrees clockwise (90 counter-clockwise).
func Rotate270(src Buf) Buf {
	dst := NewBuf(src.Height, src.Width)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			copyPixel(dst, y, src.Width-1-x, src, x, y)
		}
	}
	return dst
}

// FlipHorizontal mirrors the buffer across the vertical axis.
func FlipHorizontal(src Buf) Buf {
	dst := NewBuf(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			copyPixel(dst, src.Width-1-x, y, src, x, y)
		}
	}
	return dst
}

// FlipVertical mirrors the buffer across the horizontal axis.
func FlipVertical(src Buf) Buf {
	dst := NewBuf(src.Width, src.Height)
	rowBytes := src.Width * 4
	for y := 0; y < src.Height; y++ {
		di := (src.Height - 1 - y) * rowBytes
		si := y * rowBytes
		copy(dst.Data[di:di+rowBytes], src.Data[si:si+rowBytes])
	}
	return dst
}
