package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	lutfilter "github.com/gablabelle/expo-lut-filter"
	imageutil "github.com/gablabelle/expo-lut-filter/internal/image"
)

// NewApplyCmd creates the apply cobra command.
func NewApplyCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [image]",
		Short: "Apply a LUT filter to an image",
		Long: "Decodes a source image and a LUT reference image, applies the color " +
			"transform with the given intensity, optionally composites a grain " +
			"texture, and writes the result (PNG, JPEG, BMP, or TIFF by extension).",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input image is required; use --in or provide as argument")
			}

			lutPath, _ := cmd.Flags().GetString("lut")
			if lutPath == "" {
				return fmt.Errorf("--lut is required")
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			size, _ := cmd.Flags().GetInt("lut-size")
			tiled, _ := cmd.Flags().GetBool("tiled")
			intensity, _ := cmd.Flags().GetFloat64("intensity")
			grainPath, _ := cmd.Flags().GetString("grain")
			grainOpacity, _ := cmd.Flags().GetFloat64("grain-opacity")
			blendLabel, _ := cmd.Flags().GetString("blend-mode")
			orientation, _ := cmd.Flags().GetInt("orientation")
			workers, _ := cmd.Flags().GetInt("workers")
			quality, _ := cmd.Flags().GetInt("jpeg-quality")

			return runApply(applyArgs{
				in: in, lut: lutPath, out: out,
				size: size, tiled: tiled, intensity: intensity,
				grain: grainPath, grainOpacity: grainOpacity, blend: blendLabel,
				orientation: orientation, workers: workers, quality: quality,
			})
		},
	}

	pf := cmd.Flags()
	pf.StringP("in", "i", "", "Source image path")
	pf.StringP("lut", "l", "", "LUT reference image path")
	pf.StringP("out", "o", "", "Output image path")
	pf.Int("lut-size", 64, "LUT cube dimension N")
	pf.Bool("tiled", true, "Read the LUT image as a tiled square grid (false: row-major linear)")
	pf.Float64("intensity", 1.0, "Blend factor between filtered and original color (0-1)")
	pf.StringP("grain", "g", "", "Grain texture image path (optional)")
	pf.Float64("grain-opacity", 0.5, "Grain layer opacity (0-1)")
	pf.String("blend-mode", "screen", "Grain blend mode: multiply, screen, or overlay")
	pf.Int("orientation", 1, "EXIF orientation of the source image (1-8)")
	pf.Int("workers", 0, "Worker goroutines for the transform (0: all cores)")
	pf.Int("jpeg-quality", imageutil.DefaultJPEGQuality, "JPEG output quality (1-100)")

	return cmd
}

type applyArgs struct {
	in, lut, out        string
	size                int
	tiled               bool
	intensity           float64
	grain, blend        string
	grainOpacity        float64
	orientation         int
	workers, quality    int
}

// runApply performs the decode → transform → encode round trip.
func runApply(a applyArgs) error {
	src, err := imageutil.Load(a.in)
	if err != nil {
		return err
	}
	ref, err := imageutil.Load(a.lut)
	if err != nil {
		return err
	}

	layout := lutfilter.LayoutLinear
	if a.tiled {
		layout = lutfilter.LayoutTiled
	}

	cube, err := lutfilter.BuildCube(bufToPixmap(ref), a.size, layout)
	if err != nil {
		// A degraded cube is usable; anything else is fatal.
		var mismatch *lutfilter.SizeMismatchError
		if !errors.As(err, &mismatch) {
			return err
		}
		slog.Warn("LUT reference size mismatch, continuing with degraded cube", "error", err)
	}

	opts := []lutfilter.ApplyOption{
		lutfilter.WithOrientation(lutfilter.OrientationFromEXIF(a.orientation)),
		lutfilter.WithWorkers(a.workers),
	}

	if a.grain != "" {
		grain, err := imageutil.Load(a.grain)
		if err != nil {
			return err
		}
		mode, ok := lutfilter.ParseBlendMode(a.blend)
		if !ok {
			slog.Warn("unknown blend mode, using screen", "mode", a.blend)
		}
		opts = append(opts, lutfilter.WithGrain(bufToPixmap(grain), lutfilter.GrainConfig{
			Opacity:  a.grainOpacity,
			Mode:     mode,
			Resample: lutfilter.ResampleBilinear,
		}))
	}

	result, err := lutfilter.Apply(bufToPixmap(src), cube, a.intensity, opts...)
	if err != nil {
		return err
	}

	if err := imageutil.Save(a.out, pixmapToBuf(result), a.quality); err != nil {
		return err
	}
	slog.Info("filtered image written", "in", a.in, "out", a.out,
		"lut", a.lut, "intensity", a.intensity)
	return nil
}

// bufToPixmap converts a decoded buffer into a Pixmap.
func bufToPixmap(b imageutil.Buf) *lutfilter.Pixmap {
	return lutfilter.FromImage(imageutil.ToImage(b))
}

// pixmapToBuf wraps a Pixmap's pixels as a Buf without copying.
func pixmapToBuf(p *lutfilter.Pixmap) imageutil.Buf {
	return imageutil.Buf{Data: p.Data(), Width: p.Width(), Height: p.Height()}
}
