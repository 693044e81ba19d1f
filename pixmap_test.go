package lutfilter

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	p := NewPixmap(10, 20)
	if p.Width() != 10 || p.Height() != 20 {
		t.Errorf("dimensions = %dx%d, want 10x20", p.Width(), p.Height())
	}
	if len(p.Data()) != 10*20*4 {
		t.Errorf("data length = %d, want %d", len(p.Data()), 10*20*4)
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	p := NewPixmap(4, 4)
	want := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	p.SetPixel(2, 3, want)

	got := p.GetPixel(2, 3)
	if got.R != 1 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel = %+v", got)
	}
	// 0.5*255 rounds to 128.
	if g := uint8(got.G*255 + 0.5); g != 128 {
		t.Errorf("green byte = %d, want 128", g)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(-1, 0, RGBA{R: 1})
	p.SetPixel(0, 2, RGBA{R: 1})
	for _, b := range p.Data() {
		if b != 0 {
			t.Fatal("out-of-bounds SetPixel wrote to the buffer")
		}
	}
	if got := p.GetPixel(5, 5); got != (RGBA{}) {
		t.Errorf("out-of-bounds GetPixel = %+v, want zero", got)
	}
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(RGB(1, 0, 0))
	for i := 0; i < len(p.Data()); i += 4 {
		if p.Data()[i] != 255 || p.Data()[i+1] != 0 || p.Data()[i+2] != 0 || p.Data()[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want opaque red", i/4, p.Data()[i:i+4])
		}
	}
}

func TestPixmapClone(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, RGB(0.2, 0.4, 0.6))

	c := p.Clone()
	if !bytes.Equal(c.Data(), p.Data()) {
		t.Error("clone differs from original")
	}

	c.SetPixel(0, 0, RGB(1, 1, 1))
	if bytes.Equal(c.Data(), p.Data()) {
		t.Error("mutating the clone changed the original")
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	p := NewPixmap(3, 2)
	p.SetPixel(0, 0, RGB(1, 0, 0))
	p.SetPixel(2, 1, RGBA{R: 0, G: 1, B: 0, A: 0.5})

	back := FromImage(p.ToImage())
	if !bytes.Equal(back.Data(), p.Data()) {
		t.Error("NRGBA round trip changed pixel data")
	}
}

func TestFromImageGenericPath(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	p := FromImage(src)
	got := p.GetPixel(1, 1)
	if b := uint8(got.B*255 + 0.5); b != 30 {
		t.Errorf("blue byte = %d, want 30", b)
	}
}

func TestPixmapImplementsImage(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(1, 0, RGB(0, 0, 1))

	var img image.Image = p
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel is not NRGBA")
	}
	if c := img.At(1, 0).(color.NRGBA); c.B != 255 {
		t.Errorf("At(1,0) = %+v, want blue", c)
	}
}
