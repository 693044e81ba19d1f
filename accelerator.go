package lutfilter

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this operation.
// The caller transparently falls back to the scalar CPU path.
var ErrFallbackToCPU = errors.New("lutfilter: falling back to CPU transform")

// AcceleratedOp describes operation types for accelerator capability
// checking.
type AcceleratedOp uint32

const (
	// AccelCube represents per-pixel cube sampling plus intensity blending.
	AccelCube AcceleratedOp = 1 << iota

	// AccelGrain represents grain compositing.
	AccelGrain
)

// Target provides pixel buffer access for accelerator output.
// Data is non-premultiplied RGBA, 4 bytes per pixel, laid out row by row
// with the given Stride.
type Target struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// Accelerator is an optional alternate transform backend (typically GPU).
//
// When registered via RegisterAccelerator, Apply tries the accelerator
// first for supported operations. If the accelerator returns
// ErrFallbackToCPU or any other error, the transform transparently falls
// back to the scalar CPU path.
//
// An accelerated implementation must match the scalar path within one unit
// of 255 per channel; backends are interchangeable variants of one
// contract, not divergent behaviors.
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "metal").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// operation. This is a fast check used to skip the backend entirely
	// for unsupported operations.
	CanAccelerate(op AcceleratedOp) bool

	// ApplyCube samples the cube for every pixel of target in place and
	// blends with the original color by intensity.
	// Returns ErrFallbackToCPU if the buffer cannot be accelerated.
	ApplyCube(target Target, cube *Cube, intensity float64) error

	// CompositeGrain blends the grain target over the base target in
	// place. The grain target is already rescaled to the base dimensions.
	// Returns ErrFallbackToCPU if the composite cannot be accelerated.
	CompositeGrain(base, grain Target, opacity float64, mode BlendMode) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers an accelerator for optional accelerated
// transforms.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration, and if it fails the accelerator is not registered.
//
// Typical usage via blank import in backend packages:
//
//	func init() {
//	    lutfilter.RegisterAccelerator(NewWGPUAccelerator())
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("lutfilter: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("accelerator registered", "name", a.Name())
	return nil
}

// RegisteredAccelerator returns the current accelerator, or nil if none.
func RegisteredAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// UnregisterAccelerator removes and closes the current accelerator, if any.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}
