// Package blend implements separable per-channel blend formulas for layer
// compositing, following the W3C Compositing and Blending Level 1
// specification.
//
// Kernels operate on normalized [0,1] channel values: Cb is the backdrop
// (base) channel and Cg the grain (source) channel. Alpha handling and
// opacity compositing belong to the caller.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode identifies a separable blend formula.
type Mode uint8

const (
	// Multiply darkens: B(Cb, Cg) = Cb * Cg.
	Multiply Mode = iota
	// Screen lightens: B(Cb, Cg) = 1 - (1-Cb) * (1-Cg).
	Screen
	// Overlay multiplies or screens depending on the backdrop:
	// Cb < 0.5 multiplies, otherwise screens (HardLight with swapped layers).
	Overlay
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Multiply:
		return "Multiply"
	case Screen:
		return "Screen"
	case Overlay:
		return "Overlay"
	default:
		return "Unknown"
	}
}

// Kernel is a per-channel blend function over normalized channel values.
type Kernel func(cb, cg float32) float32

// ForMode returns the kernel for a mode. Unknown modes resolve to Screen.
func ForMode(m Mode) Kernel {
	switch m {
	case Multiply:
		return BlendMultiply
	case Overlay:
		return BlendOverlay
	default:
		return BlendScreen
	}
}

// BlendMultiply multiplies backdrop and grain channels.
func BlendMultiply(cb, cg float32) float32 {
	return cb * cg
}

// BlendScreen is the complement of multiplying the complements. Screening
// with black (cg = 0) leaves the backdrop unchanged.
func BlendScreen(cb, cg float32) float32 {
	return 1 - (1-cb)*(1-cg)
}

// BlendOverlay multiplies dark backdrop regions and screens light ones,
// doubling the contribution so the midpoint stays continuous.
func BlendOverlay(cb, cg float32) float32 {
	if cb < 0.5 {
		return 2 * cb * cg
	}
	return 1 - 2*(1-cb)*(1-cg)
}
