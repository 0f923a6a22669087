package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

const epsilon = 1e-9

func TestSmoother_SeedsWithFirstSample(t *testing.T) {
	s := NewSmoother(DefaultSmoothingGain)

	x, y := s.Smooth(640, 360)

	if x != 640 || y != 360 {
		t.Errorf("first sample = (%v, %v), want (640, 360) unchanged", x, y)
	}

	px, py, seeded := s.Position()
	if !seeded {
		t.Error("expected filter to be seeded after first sample")
	}
	if px != 640 || py != 360 {
		t.Errorf("running state = (%v, %v), want (640, 360)", px, py)
	}
}

func TestSmoother_GeometricConvergence(t *testing.T) {
	// With gain 0.3 the error against a constant input shrinks by 0.7 per
	// step: err_k = err_0 * 0.7^k.
	s := NewSmoother(0.3)
	s.Smooth(0, 0) // seed at origin

	const targetX, targetY = 100.0, 200.0
	for k := 1; k <= 10; k++ {
		x, y := s.Smooth(targetX, targetY)

		wantErrX := targetX * math.Pow(0.7, float64(k))
		wantErrY := targetY * math.Pow(0.7, float64(k))

		if math.Abs((targetX-x)-wantErrX) > epsilon {
			t.Errorf("step %d: x error = %v, want %v", k, targetX-x, wantErrX)
		}
		if math.Abs((targetY-y)-wantErrY) > epsilon {
			t.Errorf("step %d: y error = %v, want %v", k, targetY-y, wantErrY)
		}
	}
}

func TestSmoother_Reset(t *testing.T) {
	s := NewSmoother(0.3)
	s.Smooth(500, 500)
	s.Smooth(510, 510)

	s.Reset()

	if _, _, seeded := s.Position(); seeded {
		t.Error("expected filter to be unseeded after Reset")
	}

	// Next sample re-seeds instead of lerping from the stale position.
	x, y := s.Smooth(10, 20)
	if x != 10 || y != 20 {
		t.Errorf("post-reset sample = (%v, %v), want (10, 20) unchanged", x, y)
	}
}

func TestSmoother_InvalidGainFallsBack(t *testing.T) {
	for _, gain := range []float64{0, -0.5, 1.5} {
		s := NewSmoother(gain)
		if s.gain != DefaultSmoothingGain {
			t.Errorf("NewSmoother(%v) gain = %v, want default %v", gain, s.gain, DefaultSmoothingGain)
		}
	}
}

func TestMapToScreen(t *testing.T) {
	t.Run("mirrors horizontally", func(t *testing.T) {
		wrist := detector.Point3D{X: 0.2, Y: 0.5}

		x, y := MapToScreen(wrist, 1000, 500)

		if math.Abs(x-800) > epsilon {
			t.Errorf("screenX = %v, want 800", x)
		}
		if math.Abs(y-250) > epsilon {
			t.Errorf("screenY = %v, want 250", y)
		}
	})

	t.Run("edges map to opposite edges", func(t *testing.T) {
		left, _ := MapToScreen(detector.Point3D{X: 1.0}, 1920, 1080)
		right, _ := MapToScreen(detector.Point3D{X: 0.0}, 1920, 1080)

		if left != 0 {
			t.Errorf("x=1.0 maps to %v, want 0", left)
		}
		if right != 1920 {
			t.Errorf("x=0.0 maps to %v, want 1920", right)
		}
	})
}
