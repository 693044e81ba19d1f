package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	imageutil "github.com/gablabelle/expo-lut-filter/internal/image"
)

// writeIdentityLUT writes an N=2 row-major LUT whose grid points equal
// their own coordinates, i.e. a no-op color transform.
func writeIdentityLUT(t *testing.T, path string) {
	t.Helper()
	lut := imageutil.NewBuf(4, 2)
	i := 0
	for b := 0; b < 2; b++ {
		for g := 0; g < 2; g++ {
			for r := 0; r < 2; r++ {
				lut.SetRGBA(i%4, i/4, uint8(r*255), uint8(g*255), uint8(b*255), 255)
				i++
			}
		}
	}
	require.NoError(t, imageutil.Save(path, lut, 0))
}

func writeGradient(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imageutil.NewBuf(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, uint8(x*37%256), uint8(y*53%256), uint8((x+y)*11%256), 255)
		}
	}
	require.NoError(t, imageutil.Save(path, img, 0))
}

func TestRunApplyIdentityLUT(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	lut := filepath.Join(dir, "lut.png")
	out := filepath.Join(dir, "out.png")

	writeGradient(t, in, 12, 8)
	writeIdentityLUT(t, lut)

	err := runApply(applyArgs{
		in: in, lut: lut, out: out,
		size: 2, tiled: false, intensity: 1.0,
		blend: "screen", orientation: 1, quality: 0,
	})
	require.NoError(t, err)

	src, err := imageutil.Load(in)
	require.NoError(t, err)
	got, err := imageutil.Load(out)
	require.NoError(t, err)
	require.Equal(t, src.Width, got.Width)
	require.Equal(t, src.Height, got.Height)
	// An identity LUT at full intensity must reproduce the source.
	require.Equal(t, src.Data, got.Data)
}

func TestRunApplyWithGrain(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	lut := filepath.Join(dir, "lut.png")
	grain := filepath.Join(dir, "grain.png")
	out := filepath.Join(dir, "out.jpg")

	writeGradient(t, in, 10, 10)
	writeIdentityLUT(t, lut)
	writeGradient(t, grain, 4, 4)

	err := runApply(applyArgs{
		in: in, lut: lut, out: out,
		size: 2, tiled: false, intensity: 0.7,
		grain: grain, grainOpacity: 0.4, blend: "overlay",
		orientation: 1, quality: 90,
	})
	require.NoError(t, err)

	got, err := imageutil.Load(out)
	require.NoError(t, err)
	require.Equal(t, 10, got.Width)
	require.Equal(t, 10, got.Height)
}

func TestRunApplyDegradedLUTStillWrites(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	lut := filepath.Join(dir, "lut.png")
	out := filepath.Join(dir, "out.png")

	writeGradient(t, in, 6, 6)
	// An N=2 reference declared as N=4: a size mismatch, not a fatal error.
	writeIdentityLUT(t, lut)

	err := runApply(applyArgs{
		in: in, lut: lut, out: out,
		size: 4, tiled: false, intensity: 1.0,
		blend: "screen", orientation: 1, quality: 0,
	})
	require.NoError(t, err)

	got, err := imageutil.Load(out)
	require.NoError(t, err)
	require.Equal(t, 6, got.Width)
	require.Equal(t, 6, got.Height)
}

func TestRunApplyMissingLUT(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeGradient(t, in, 4, 4)

	err := runApply(applyArgs{
		in: in, lut: filepath.Join(dir, "missing.png"),
		out: filepath.Join(dir, "out.png"),
		size: 2, intensity: 1, blend: "screen", orientation: 1,
	})
	require.Error(t, err)
}

func TestApplyCmdRequiresFlags(t *testing.T) {
	cmd := NewApplyCmd(context.Background())
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}
