// Package color provides fast byte ↔ normalized-float channel conversion
// using lookup tables.
//
// The normalization table replaces a division per channel with a single
// array lookup. The per-pixel transform touches three channels per pixel,
// so this is on the hottest path of the whole pipeline.
package color

// byteToUnitLUT maps a channel byte [0,255] to its normalized value in
// [0.0, 1.0]. Pre-computed 256 entries, 1KB memory cost.
var byteToUnitLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		byteToUnitLUT[i] = float32(i) / 255.0
	}
}

// ByteToUnit converts a channel byte to a normalized float32 in [0, 1]
// using a lookup table.
func ByteToUnit(b uint8) float32 {
	return byteToUnitLUT[b]
}

// UnitToByte converts a normalized float32 to a channel byte with
// round-to-nearest. Input is clamped to [0.0, 1.0] automatically, so
// UnitToByte(ByteToUnit(b)) == b for every byte value.
func UnitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
