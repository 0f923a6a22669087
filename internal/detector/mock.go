package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	frames []Frame
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrames sets the landmark frames that will be returned by Detect.
func (m *MockDetector) SetFrames(frames []Frame) {
	m.frames = frames
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured frames or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.frames, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingFrame returns a preset Frame representing a pointing hand:
// index finger extended, clearly separated from the curled middle finger,
// thumb held away from the index tip.
func PointingFrame() Frame {
	f := Frame{
		Handedness: "Right",
		Score:      0.95,
	}

	f.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb swung out to the side, tip well clear of the index tip
	f.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0.0}
	f.Points[ThumbMCP] = Point3D{X: 0.52, Y: 0.72, Z: 0.01}
	f.Points[ThumbIP] = Point3D{X: 0.46, Y: 0.66, Z: 0.01}
	f.Points[ThumbTip] = Point3D{X: 0.40, Y: 0.60, Z: 0.01}

	// Index finger extended upward
	f.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	f.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.55, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	f.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger curled back toward the palm
	f.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: -0.02}
	f.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.64, Z: -0.05}
	f.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.67, Z: -0.04}
	f.Points[MiddleTip] = Point3D{X: 0.44, Y: 0.70, Z: -0.02}

	// Ring finger curled
	f.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	f.Points[RingPIP] = Point3D{X: 0.45, Y: 0.66, Z: -0.05}
	f.Points[RingDIP] = Point3D{X: 0.42, Y: 0.69, Z: -0.04}
	f.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	// Pinky finger curled
	f.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: -0.02}
	f.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.68, Z: -0.05}
	f.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.71, Z: -0.04}
	f.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.74, Z: -0.02}

	return f
}

// PinchFrame returns a preset Frame with thumb tip and index tip nearly
// touching. The index tip sits below its DIP joint so the pose does not
// also read as pointing.
func PinchFrame() Frame {
	f := Frame{
		Handedness: "Right",
		Score:      0.95,
	}

	f.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb reaching in toward the index tip
	f.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.74, Z: 0.0}
	f.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.66, Z: 0.01}
	f.Points[ThumbIP] = Point3D{X: 0.53, Y: 0.58, Z: 0.01}
	f.Points[ThumbTip] = Point3D{X: 0.50, Y: 0.50, Z: 0.01}

	// Index finger curled down onto the thumb
	f.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.60, Z: 0.0}
	f.Points[IndexPIP] = Point3D{X: 0.54, Y: 0.52, Z: -0.01}
	f.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.48, Z: -0.01}
	f.Points[IndexTip] = Point3D{X: 0.52, Y: 0.52, Z: 0.0}

	// Remaining fingers loosely extended
	f.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.60, Z: 0.0}
	f.Points[MiddlePIP] = Point3D{X: 0.48, Y: 0.50, Z: 0.0}
	f.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.42, Z: 0.0}
	f.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.36, Z: 0.0}

	f.Points[RingMCP] = Point3D{X: 0.45, Y: 0.62, Z: 0.0}
	f.Points[RingPIP] = Point3D{X: 0.43, Y: 0.52, Z: 0.0}
	f.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	f.Points[RingTip] = Point3D{X: 0.41, Y: 0.38, Z: 0.0}

	f.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.65, Z: 0.0}
	f.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.57, Z: 0.0}
	f.Points[PinkyDIP] = Point3D{X: 0.36, Y: 0.50, Z: 0.0}
	f.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.44, Z: 0.0}

	return f
}

// FistFrame returns a preset Frame with every fingertip folded at or below
// its base joint.
func FistFrame() Frame {
	f := Frame{
		Handedness: "Right",
		Score:      0.95,
	}

	f.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	f.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.74, Z: 0.0}
	f.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.68, Z: -0.01}
	f.Points[ThumbIP] = Point3D{X: 0.57, Y: 0.70, Z: -0.02}
	f.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.72, Z: -0.02}

	f.Points[IndexMCP] = Point3D{X: 0.53, Y: 0.66, Z: -0.01}
	f.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.62, Z: -0.04}
	f.Points[IndexDIP] = Point3D{X: 0.51, Y: 0.67, Z: -0.04}
	f.Points[IndexTip] = Point3D{X: 0.50, Y: 0.70, Z: -0.02}

	f.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.65, Z: -0.01}
	f.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.61, Z: -0.04}
	f.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.66, Z: -0.04}
	f.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.69, Z: -0.02}

	f.Points[RingMCP] = Point3D{X: 0.46, Y: 0.66, Z: -0.01}
	f.Points[RingPIP] = Point3D{X: 0.46, Y: 0.62, Z: -0.04}
	f.Points[RingDIP] = Point3D{X: 0.44, Y: 0.67, Z: -0.04}
	f.Points[RingTip] = Point3D{X: 0.42, Y: 0.70, Z: -0.02}

	f.Points[PinkyMCP] = Point3D{X: 0.42, Y: 0.68, Z: -0.01}
	f.Points[PinkyPIP] = Point3D{X: 0.42, Y: 0.65, Z: -0.04}
	f.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.69, Z: -0.04}
	f.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72, Z: -0.02}

	return f
}

// NeutralFrame returns a preset Frame representing a relaxed open hand that
// matches none of the pointer gestures: fingers extended, index and middle
// tips close together, thumb far from the index tip but with all tips above
// their bases.
func NeutralFrame() Frame {
	f := Frame{
		Handedness: "Right",
		Score:      0.95,
	}

	f.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	f.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	f.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	f.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	f.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	f.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	f.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	f.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	f.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	f.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	f.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	f.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	f.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	f.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	f.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	f.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	f.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	f.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	f.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	f.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	f.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return f
}
