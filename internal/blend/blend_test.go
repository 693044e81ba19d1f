package blend

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestBlendMultiply(t *testing.T) {
	tests := []struct {
		cb, cg, want float32
	}{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0.5, 0.5},
		{0.5, 0.5, 0.25},
		{0.25, 0, 0},
	}
	for _, tt := range tests {
		if got := BlendMultiply(tt.cb, tt.cg); !almostEqual(got, tt.want) {
			t.Errorf("BlendMultiply(%v, %v) = %v, want %v", tt.cb, tt.cg, got, tt.want)
		}
	}
}

func TestBlendScreen(t *testing.T) {
	tests := []struct {
		cb, cg, want float32
	}{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.5, 0.75},
		{1, 0.25, 1},
	}
	for _, tt := range tests {
		if got := BlendScreen(tt.cb, tt.cg); !almostEqual(got, tt.want) {
			t.Errorf("BlendScreen(%v, %v) = %v, want %v", tt.cb, tt.cg, got, tt.want)
		}
	}
}

func TestBlendScreenWithBlackIsIdentity(t *testing.T) {
	for i := 0; i <= 100; i++ {
		cb := float32(i) / 100
		if got := BlendScreen(cb, 0); !almostEqual(got, cb) {
			t.Fatalf("BlendScreen(%v, 0) = %v, want %v", cb, got, cb)
		}
	}
}

func TestBlendOverlay(t *testing.T) {
	tests := []struct {
		cb, cg, want float32
	}{
		{0, 1, 0},        // black backdrop stays black
		{1, 0, 1},        // white backdrop stays white
		{0.25, 0.5, 0.25}, // dark side: 2*0.25*0.5
		{0.75, 0.5, 0.75}, // light side: 1 - 2*0.25*0.5
	}
	for _, tt := range tests {
		if got := BlendOverlay(tt.cb, tt.cg); !almostEqual(got, tt.want) {
			t.Errorf("BlendOverlay(%v, %v) = %v, want %v", tt.cb, tt.cg, got, tt.want)
		}
	}
}

func TestBlendOverlayContinuousAtMidpoint(t *testing.T) {
	for i := 0; i <= 10; i++ {
		cg := float32(i) / 10
		below := BlendOverlay(0.5-1e-4, cg)
		above := BlendOverlay(0.5, cg)
		if math.Abs(float64(below-above)) > 1e-3 {
			t.Errorf("discontinuity at cb=0.5, cg=%v: %v vs %v", cg, below, above)
		}
	}
}

func TestForModeUnknownFallsBackToScreen(t *testing.T) {
	k := ForMode(Mode(200))
	if got, want := k(0.5, 0.5), BlendScreen(0.5, 0.5); !almostEqual(got, want) {
		t.Errorf("unknown mode kernel(0.5, 0.5) = %v, want Screen result %v", got, want)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Multiply, "Multiply"},
		{Screen, "Screen"},
		{Overlay, "Overlay"},
		{Mode(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
