package lutfilter

import (
	"strings"

	"github.com/gablabelle/expo-lut-filter/internal/blend"
	colorutil "github.com/gablabelle/expo-lut-filter/internal/color"
	imageutil "github.com/gablabelle/expo-lut-filter/internal/image"
)

// BlendMode selects the per-channel formula used when compositing a grain
// texture onto a base image.
type BlendMode = blend.Mode

const (
	// BlendMultiply darkens the base by the grain.
	BlendMultiply = blend.Multiply
	// BlendScreen lightens the base by the grain.
	BlendScreen = blend.Screen
	// BlendOverlay multiplies shadows and screens highlights.
	BlendOverlay = blend.Overlay
)

// ParseBlendMode maps a textual blend-mode label ("multiply", "screen",
// "overlay", case-insensitive) to a BlendMode. Unrecognized labels resolve
// to BlendScreen with ok=false rather than failing; the compositor treats
// Screen as the safe default.
func ParseBlendMode(label string) (mode BlendMode, ok bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "multiply":
		return BlendMultiply, true
	case "screen":
		return BlendScreen, true
	case "overlay":
		return BlendOverlay, true
	default:
		return BlendScreen, false
	}
}

// ResampleMode selects how a grain texture is rescaled to the base image.
type ResampleMode = imageutil.InterpolationMode

const (
	// ResampleNearest picks the closest grain pixel.
	ResampleNearest = imageutil.InterpNearest
	// ResampleBilinear blends the four closest grain pixels.
	ResampleBilinear = imageutil.InterpBilinear
)

// GrainConfig describes how a grain texture is composited onto an image.
// The zero value is a fully transparent Screen composite, i.e. a no-op.
type GrainConfig struct {
	// Opacity is the grain layer's alpha in [0, 1]. 0 leaves the base
	// unchanged, 1 replaces it with the blended result.
	Opacity float64

	// Mode is the per-channel blend formula.
	Mode BlendMode

	// Resample selects the rescaling filter used when the grain texture's
	// dimensions differ from the base image. Defaults to bilinear.
	Resample ResampleMode
}

// CompositeGrain blends a grain texture onto base and returns a new pixmap
// of base's dimensions. The grain buffer is borrowed read-only for the
// duration of the call and rescaled to cover the full base raster when the
// sizes differ.
//
// Per channel, the grain value is combined with the base value by the blend
// mode and the result is alpha-composited over the base with cfg.Opacity as
// the grain layer's alpha. The base alpha channel is preserved.
//
// A nil grain is not an error: the composite is skipped and base is
// returned unchanged, as is the case for opacity <= 0.
func CompositeGrain(base, grain *Pixmap, cfg GrainConfig) *Pixmap {
	if grain == nil {
		Logger().Debug("grain composite skipped, no texture")
		return base
	}
	if cfg.Opacity <= 0 {
		return base
	}

	opacity := float32(cfg.Opacity)
	if opacity > 1 {
		opacity = 1
	}

	scaled := imageutil.Resize(
		imageutil.Buf{Data: grain.data, Width: grain.width, Height: grain.height},
		base.width, base.height, cfg.Resample,
	)

	kernel := blend.ForMode(cfg.Mode)
	out := NewPixmap(base.width, base.height)
	inv := 1 - opacity

	for i := 0; i < len(base.data); i += 4 {
		for c := 0; c < 3; c++ {
			cb := colorutil.ByteToUnit(base.data[i+c])
			cg := colorutil.ByteToUnit(scaled.Data[i+c])
			blended := kernel(cb, cg)
			out.data[i+c] = colorutil.UnitToByte(blended*opacity + cb*inv)
		}
		out.data[i+3] = base.data[i+3]
	}

	return out
}
