package gesture

import "github.com/ayusman/mudra/internal/detector"

// Smoother low-passes raw cursor positions with an exponential moving
// average. The filter is sample-indexed: inter-frame time deltas do not
// enter the math.
type Smoother struct {
	gain   float64
	x, y   float64
	seeded bool
}

// NewSmoother creates a Smoother with the given gain in (0,1]. The retained
// fraction per step is 1-gain.
func NewSmoother(gain float64) *Smoother {
	if gain <= 0 || gain > 1 {
		gain = DefaultSmoothingGain
	}
	return &Smoother{gain: gain}
}

// Smooth folds a raw screen-space sample into the running position and
// returns the filtered coordinates.
//
// The first sample after construction or Reset seeds the filter and is
// returned unchanged; seeding with the first observation avoids the visible
// jump a fixed origin seed would cause on first detection. From then on the
// error against a constant input shrinks by the retained fraction each step.
func (s *Smoother) Smooth(rawX, rawY float64) (float64, float64) {
	if !s.seeded {
		s.x, s.y = rawX, rawY
		s.seeded = true
		return s.x, s.y
	}

	keep := 1 - s.gain
	s.x = s.x*keep + rawX*s.gain
	s.y = s.y*keep + rawY*s.gain
	return s.x, s.y
}

// Position returns the current filtered position and whether the filter has
// been seeded.
func (s *Smoother) Position() (x, y float64, seeded bool) {
	return s.x, s.y, s.seeded
}

// Reset clears the running state so the next sample re-seeds the filter.
func (s *Smoother) Reset() {
	s.x, s.y = 0, 0
	s.seeded = false
}

// MapToScreen converts a wrist landmark to screen-pixel coordinates.
// The camera feed is treated as a mirror, so x is flipped; y maps straight
// through because landmark and screen coordinates both grow downward.
func MapToScreen(wrist detector.Point3D, width, height int) (float64, float64) {
	return (1 - wrist.X) * float64(width), wrist.Y * float64(height)
}
