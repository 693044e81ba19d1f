package lutfilter

import (
	"bytes"
	"testing"
)

// asymmetricPixmap builds a 3x2 pixmap with a distinct value per pixel.
func asymmetricPixmap() *Pixmap {
	p := NewPixmap(3, 2)
	for i := 0; i < 6; i++ {
		idx := i * 4
		p.data[idx+0] = uint8(i + 1)
		p.data[idx+1] = uint8(i + 51)
		p.data[idx+2] = uint8(i + 101)
		p.data[idx+3] = 255
	}
	return p
}

func TestNormalizeIdentityReturnsSameBuffer(t *testing.T) {
	p := asymmetricPixmap()
	if got := OrientIdentity.Normalize(p); got != p {
		t.Error("Identity should return the input buffer, not a copy")
	}
}

func TestNormalizeRotate180Twice(t *testing.T) {
	p := asymmetricPixmap()
	back := OrientRotate180.Normalize(OrientRotate180.Normalize(p))
	if !bytes.Equal(back.data, p.data) {
		t.Error("Rotate180 twice did not reproduce the original buffer")
	}
}

func TestNormalizeInverses(t *testing.T) {
	tests := []struct {
		name     string
		op, inv  Orientation
	}{
		{"Rotate90 then Rotate270", OrientRotate90, OrientRotate270},
		{"Rotate270 then Rotate90", OrientRotate270, OrientRotate90},
		{"FlipHorizontal twice", OrientFlipHorizontal, OrientFlipHorizontal},
		{"FlipVertical twice", OrientFlipVertical, OrientFlipVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := asymmetricPixmap()
			back := tt.inv.Normalize(tt.op.Normalize(p))
			if back.width != p.width || back.height != p.height {
				t.Fatalf("dimensions changed: %dx%d", back.width, back.height)
			}
			if !bytes.Equal(back.data, p.data) {
				t.Error("orientation composed with inverse did not reproduce the input")
			}
		})
	}
}

func TestNormalizeRotateSwapsDimensions(t *testing.T) {
	p := asymmetricPixmap()
	for _, o := range []Orientation{OrientRotate90, OrientRotate270} {
		got := o.Normalize(p)
		if got.width != p.height || got.height != p.width {
			t.Errorf("%v: got %dx%d, want %dx%d", o, got.width, got.height, p.height, p.width)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	p := asymmetricPixmap()
	before := p.Clone()
	OrientRotate90.Normalize(p)
	if !bytes.Equal(p.data, before.data) {
		t.Error("Normalize mutated its input")
	}
}

func TestOrientationFromEXIF(t *testing.T) {
	tests := []struct {
		exif int
		want Orientation
	}{
		{1, OrientIdentity},
		{2, OrientFlipHorizontal},
		{3, OrientRotate180},
		{4, OrientFlipVertical},
		{5, OrientIdentity}, // transposition, no single-state equivalent
		{6, OrientRotate90},
		{7, OrientIdentity}, // transverse, no single-state equivalent
		{8, OrientRotate270},
		{0, OrientIdentity},
		{99, OrientIdentity},
	}
	for _, tt := range tests {
		if got := OrientationFromEXIF(tt.exif); got != tt.want {
			t.Errorf("OrientationFromEXIF(%d) = %v, want %v", tt.exif, got, tt.want)
		}
	}
}

func TestOrientationString(t *testing.T) {
	names := map[Orientation]string{
		OrientIdentity:       "Identity",
		OrientRotate90:       "Rotate90",
		OrientRotate180:      "Rotate180",
		OrientRotate270:      "Rotate270",
		OrientFlipHorizontal: "FlipHorizontal",
		OrientFlipVertical:   "FlipVertical",
		Orientation(42):      "Unknown",
	}
	for o, want := range names {
		if got := o.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", o, got, want)
		}
	}
}
