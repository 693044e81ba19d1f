package lutfilter

import (
	"errors"

	colorutil "github.com/gablabelle/expo-lut-filter/internal/color"
	"github.com/gablabelle/expo-lut-filter/internal/parallel"
)

// Errors returned by Apply.
var (
	// ErrNilImage is returned when the source image is nil.
	ErrNilImage = errors.New("lutfilter: nil source image")

	// ErrNilCube is returned when the lookup cube is nil.
	ErrNilCube = errors.New("lutfilter: nil lookup cube")
)

// ApplyOption configures a single Apply call.
type ApplyOption func(*applyOptions)

// applyOptions holds optional configuration for one transform.
type applyOptions struct {
	orientation Orientation
	grain       *Pixmap
	grainCfg    GrainConfig
	workers     int
}

// WithOrientation normalizes the source orientation before sampling.
// Use this with EXIF metadata supplied by the decoder:
//
//	out, err := lutfilter.Apply(img, cube, 0.8,
//	    lutfilter.WithOrientation(lutfilter.OrientationFromEXIF(exif)))
func WithOrientation(o Orientation) ApplyOption {
	return func(opts *applyOptions) {
		opts.orientation = o
	}
}

// WithGrain composites a grain texture after the color transform.
// A nil grain is tolerated and skips the composite step.
func WithGrain(grain *Pixmap, cfg GrainConfig) ApplyOption {
	return func(opts *applyOptions) {
		opts.grain = grain
		opts.grainCfg = cfg
	}
}

// WithWorkers sets the number of worker goroutines for the per-pixel
// transform. Zero or negative selects GOMAXPROCS. The worker count never
// affects the output, only the wall time.
func WithWorkers(n int) ApplyOption {
	return func(opts *applyOptions) {
		opts.workers = n
	}
}

// Apply runs the full transform pipeline over img: orientation
// normalization, per-pixel cube sampling blended with the original color
// by intensity, and an optional grain composite.
//
// Apply is a pure function of its inputs: identical inputs produce
// byte-identical output. The input pixmap is never mutated; the result is
// always a new buffer owned by the caller. Intensity is clamped to [0, 1];
// an intensity of 0 reproduces the (orientation-normalized) input exactly.
func Apply(img *Pixmap, cube *Cube, intensity float64, opts ...ApplyOption) (*Pixmap, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if cube == nil {
		return nil, ErrNilCube
	}

	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}

	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	src := o.orientation.Normalize(img)

	var dst *Pixmap
	if intensity == 0 {
		// Identity: skip sampling entirely, but still hand back a copy so
		// the caller always owns the result.
		dst = src.Clone()
	} else {
		dst = transformCube(src, cube, intensity, o.workers)
	}

	if o.grain != nil {
		dst = CompositeGrain(dst, o.grain, o.grainCfg)
	}

	return dst, nil
}

// transformCube samples the cube for every pixel of src and blends with
// the original color by intensity, returning a new pixmap. It prefers a
// registered accelerator and falls back to the scalar row-parallel path.
func transformCube(src *Pixmap, cube *Cube, intensity float64, workers int) *Pixmap {
	if a := RegisteredAccelerator(); a != nil && a.CanAccelerate(AccelCube) {
		dst := src.Clone()
		target := Target{Data: dst.data, Width: dst.width, Height: dst.height, Stride: dst.width * 4}
		if err := a.ApplyCube(target, cube, intensity); err == nil {
			return dst
		} else if !errors.Is(err, ErrFallbackToCPU) {
			Logger().Warn("accelerator failed, using CPU path", "name", a.Name(), "error", err)
		}
	}

	dst := NewPixmap(src.width, src.height)
	k := float32(intensity)
	invK := 1 - k
	rowBytes := src.width * 4

	parallel.ForRows(src.height, workers, func(start, end int) {
		for i := start * rowBytes; i < end*rowBytes; i += 4 {
			sr, sg, sb, _ := cube.sample(
				float32(src.data[i+0]),
				float32(src.data[i+1]),
				float32(src.data[i+2]),
			)

			dst.data[i+0] = colorutil.UnitToByte(sr*k + colorutil.ByteToUnit(src.data[i+0])*invK)
			dst.data[i+1] = colorutil.UnitToByte(sg*k + colorutil.ByteToUnit(src.data[i+1])*invK)
			dst.data[i+2] = colorutil.UnitToByte(sb*k + colorutil.ByteToUnit(src.data[i+2])*invK)
			dst.data[i+3] = src.data[i+3]
		}
	})

	return dst
}

// ApplyCached is a convenience that resolves the filter through the cache
// and applies it: the cube for id is built from ref at most once. Degraded
// entries (reference pixel count ≠ dimension³) are rejected here; use
// FilterCache.GetOrBuild directly to accept them.
func ApplyCached(c *FilterCache, id string, ref, img *Pixmap, dimension int, layout Layout, intensity float64, opts ...ApplyOption) (*Pixmap, error) {
	entry, err := c.GetOrBuild(id, ref, dimension, layout)
	if err != nil {
		return nil, err
	}
	if entry.Degraded {
		return nil, &SizeMismatchError{
			Dimension:  entry.Cube.Dimension(),
			WantPixels: dimension * dimension * dimension,
			GotPixels:  ref.Width() * ref.Height(),
		}
	}
	return Apply(img, entry.Cube, intensity, opts...)
}
