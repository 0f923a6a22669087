package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestFrame_Valid(t *testing.T) {
	t.Run("complete frame is valid", func(t *testing.T) {
		f := NeutralFrame()
		if !f.Valid() {
			t.Error("expected neutral frame to be valid")
		}
	})

	t.Run("nil frame is invalid", func(t *testing.T) {
		var f *Frame
		if f.Valid() {
			t.Error("expected nil frame to be invalid")
		}
	})

	t.Run("NaN coordinate is invalid", func(t *testing.T) {
		f := NeutralFrame()
		f.Points[IndexTip].X = math.NaN()
		if f.Valid() {
			t.Error("expected frame with NaN coordinate to be invalid")
		}
	})

	t.Run("infinite coordinate is invalid", func(t *testing.T) {
		f := NeutralFrame()
		f.Points[Wrist].Y = math.Inf(1)
		if f.Valid() {
			t.Error("expected frame with infinite coordinate to be invalid")
		}
	})

	t.Run("zero value frame is valid", func(t *testing.T) {
		// All-zero landmarks are structurally fine; whether they mean
		// anything is the gesture layer's problem.
		var f Frame
		if !f.Valid() {
			t.Error("expected zero value frame to be valid")
		}
	})
}

func TestDist2D(t *testing.T) {
	t.Run("ignores depth", func(t *testing.T) {
		a := Point3D{X: 0.0, Y: 0.0, Z: 0.5}
		b := Point3D{X: 0.3, Y: 0.4, Z: -0.5}

		if got := Dist2D(a, b); math.Abs(got-0.5) > epsilon {
			t.Errorf("Dist2D() = %f, want 0.5", got)
		}
	})

	t.Run("zero for identical points", func(t *testing.T) {
		p := Point3D{X: 0.2, Y: 0.7, Z: 0.1}
		if got := Dist2D(p, p); got != 0 {
			t.Errorf("Dist2D() = %f, want 0", got)
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty frames by default", func(t *testing.T) {
		mock := NewMockDetector()

		frames, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if frames != nil {
			t.Errorf("expected nil frames, got %v", frames)
		}
	})

	t.Run("returns configured frames", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetFrames([]Frame{PointingFrame(), FistFrame()})

		frames, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(frames) != 2 {
			t.Errorf("expected 2 frames, got %d", len(frames))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		frames, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if frames != nil {
			t.Errorf("expected nil frames when error is set, got %v", frames)
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()
		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestPointingFrame(t *testing.T) {
	f := PointingFrame()

	t.Run("index finger is extended", func(t *testing.T) {
		if f.Points[IndexTip].Y >= f.Points[IndexDIP].Y {
			t.Error("index tip should be above index DIP (lower Y value)")
		}
	})

	t.Run("index and middle tips are separated", func(t *testing.T) {
		spread := math.Abs(f.Points[IndexTip].X - f.Points[MiddleTip].X)
		if spread <= 0.1 {
			t.Errorf("index/middle tip separation = %f, want > 0.1", spread)
		}
	})

	t.Run("thumb is held away from index tip", func(t *testing.T) {
		gap := math.Abs(f.Points[ThumbTip].X - f.Points[IndexTip].X)
		if gap <= 0.15 {
			t.Errorf("thumb/index tip gap = %f, want > 0.15", gap)
		}
	})
}

func TestPinchFrame(t *testing.T) {
	f := PinchFrame()

	t.Run("thumb and index tips are close", func(t *testing.T) {
		d := Dist2D(f.Points[ThumbTip], f.Points[IndexTip])
		if d >= 0.05 {
			t.Errorf("thumb/index distance = %f, want < 0.05", d)
		}
	})

	t.Run("index tip is not above its DIP", func(t *testing.T) {
		// Keeps the pinch pose from also reading as pointing.
		if f.Points[IndexTip].Y < f.Points[IndexDIP].Y {
			t.Error("index tip should not be above index DIP in a pinch pose")
		}
	})
}

func TestFistFrame(t *testing.T) {
	f := FistFrame()

	pairs := [][2]int{
		{ThumbTip, ThumbMCP},
		{IndexTip, IndexMCP},
		{MiddleTip, MiddleMCP},
		{RingTip, RingMCP},
		{PinkyTip, PinkyMCP},
	}

	for _, pair := range pairs {
		tip, base := pair[0], pair[1]
		if f.Points[tip].Y < f.Points[base].Y {
			t.Errorf("landmark %d should be folded at or below landmark %d", tip, base)
		}
	}
}

func TestNeutralFrame(t *testing.T) {
	f := NeutralFrame()

	t.Run("fingers are extended", func(t *testing.T) {
		if f.Points[IndexTip].Y >= f.Points[IndexMCP].Y {
			t.Error("index finger should be extended")
		}
		if f.Points[MiddleTip].Y >= f.Points[MiddleMCP].Y {
			t.Error("middle finger should be extended")
		}
	})

	t.Run("index and middle tips stay close", func(t *testing.T) {
		spread := math.Abs(f.Points[IndexTip].X - f.Points[MiddleTip].X)
		if spread > 0.1 {
			t.Errorf("index/middle tip separation = %f, want <= 0.1", spread)
		}
	})
}

func TestJSONHand_ToFrame(t *testing.T) {
	t.Run("rejects short payload", func(t *testing.T) {
		h := jsonHand{Points: make([]jsonPoint, 12), Handedness: "Left", Score: 0.8}
		if _, ok := h.toFrame(); ok {
			t.Error("expected hand with 12 points to be rejected")
		}
	})

	t.Run("converts full payload", func(t *testing.T) {
		h := jsonHand{Points: make([]jsonPoint, NumLandmarks), Handedness: "Left", Score: 0.8}
		h.Points[Wrist] = jsonPoint{X: 0.4, Y: 0.6, Z: 0.1}

		f, ok := h.toFrame()
		if !ok {
			t.Fatal("expected full payload to convert")
		}
		if f.Handedness != "Left" || f.Score != 0.8 {
			t.Errorf("metadata not carried over: %+v", f)
		}
		if f.Points[Wrist].X != 0.4 || f.Points[Wrist].Y != 0.6 {
			t.Errorf("wrist = %+v, want {0.4 0.6 0.1}", f.Points[Wrist])
		}
	})
}
