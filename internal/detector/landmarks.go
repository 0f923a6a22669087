// Package detector provides hand landmark frame types and detection interfaces.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a landmark position in normalized image coordinates.
// X and Y are in [0,1] relative to the frame dimensions with Y increasing
// downward; Z is a depth proxy supplied by the landmark model.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Frame represents the 21 hand landmarks observed at one time sample.
// A Frame is immutable once produced; consumers must not modify Points.
type Frame struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Valid reports whether the frame is usable for gesture classification.
// A frame is rejected when any coordinate is NaN or infinite, which is how
// a truncated or garbled landmark payload surfaces after decoding.
func (f *Frame) Valid() bool {
	if f == nil {
		return false
	}
	for i := range f.Points {
		p := f.Points[i]
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) ||
			math.IsNaN(p.Y) || math.IsInf(p.Y, 0) ||
			math.IsNaN(p.Z) || math.IsInf(p.Z, 0) {
			return false
		}
	}
	return true
}

// Dist2D returns the Euclidean distance between two landmarks in the image
// plane. Depth is ignored: gesture thresholds are calibrated against the
// 2D coordinates the landmark model reports, and the z proxy carries a
// different noise profile.
func Dist2D(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
