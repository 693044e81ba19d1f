// Package lutfilter applies 3D color-lookup-table (LUT) transforms to raster
// images, reproducing photographic "filter" looks.
//
// The pipeline parses a LUT reference image into a dense lookup cube
// ([BuildCube]), samples the cube with trilinear interpolation for every
// source pixel, blends the sampled color with the original by an intensity
// factor, and optionally composites a grain texture using Multiply, Screen,
// or Overlay blending ([CompositeGrain]).
//
// Basic usage:
//
//	cube, err := lutfilter.BuildCube(lutImage, 64, lutfilter.LayoutTiled)
//	if err != nil {
//	    // a *SizeMismatchError still carries a usable (degraded) cube
//	}
//	out, err := lutfilter.Apply(src, cube, 0.8)
//
// Repeated application of the same filter should go through [FilterCache],
// which parses each reference image at most once per filter id.
//
// The package performs no file or network I/O: it consumes and produces
// decoded pixel buffers ([Pixmap]). Decoding, encoding, and metadata handling
// belong to the caller.
package lutfilter
