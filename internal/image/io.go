package image

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is used when no quality is specified for JPEG output.
const DefaultJPEGQuality = 95

// Load reads an image file into a Buf, auto-detecting the format by
// extension. Supported formats: PNG, JPEG, BMP, TIFF.
func Load(path string) (Buf, error) {
	var decode func(io.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		decode = png.Decode
	case ".jpg", ".jpeg":
		decode = jpeg.Decode
	case ".bmp":
		decode = bmp.Decode
	case ".tif", ".tiff":
		decode = tiff.Decode
	default:
		return Buf{}, fmt.Errorf("image: load %q: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Buf{}, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := decode(f)
	if err != nil {
		return Buf{}, fmt.Errorf("image: decode %q: %w", path, err)
	}

	return FromImage(img), nil
}

// Save writes a Buf to a file, choosing the encoder by extension.
// Supported formats: PNG, JPEG (with the given quality), BMP, TIFF.
func Save(path string, b Buf, jpegQuality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, b, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."), jpegQuality); err != nil {
		return fmt.Errorf("image: encode %q: %w", path, err)
	}
	return nil
}

// Encode writes a Buf to w in the named format ("png", "jpg", "jpeg",
// "bmp", "tif", "tiff").
func Encode(w io.Writer, b Buf, format string, jpegQuality int) error {
	img := ToImage(b)
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		if jpegQuality <= 0 || jpegQuality > 100 {
			jpegQuality = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("image: format %q: %w", format, ErrUnsupportedFormat)
	}
}

// FromImage converts any image.Image into a Buf.
func FromImage(img image.Image) Buf {
	bounds := img.Bounds()
	b := NewBuf(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok && src.Stride == b.Width*4 {
		copy(b.Data, src.Pix)
		return b
	}

	dst := &image.NRGBA{Pix: b.Data, Stride: b.Width * 4, Rect: image.Rect(0, 0, b.Width, b.Height)}
	draw.Draw(dst, dst.Rect, img, bounds.Min, draw.Src)
	return b
}

// ToImage wraps a Buf as an image.NRGBA sharing the same pixel slice.
func ToImage(b Buf) *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Data,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
