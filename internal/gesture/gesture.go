// Package gesture implements the pointer-gesture classification core:
// a fixed, priority-ordered set of landmark predicates, a resolver that
// selects at most one action per frame, and an exponential smoother for
// the cursor position.
package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Action is a discrete pointer effect resolved from a gesture.
type Action string

const (
	ActionMove       Action = "move"
	ActionClick      Action = "click"
	ActionRightClick Action = "right-click"
	ActionScrollUp   Action = "scroll-up"
	ActionScrollDown Action = "scroll-down"
)

// Default thresholds. All are in normalized landmark coordinates except the
// smoothing gain. There is no per-user calibration.
const (
	// DefaultPinchThreshold is the strict upper bound on the thumb-to-index
	// tip distance for a pinch.
	DefaultPinchThreshold = 0.05
	// DefaultSpreadThreshold is the minimum horizontal separation between
	// index and middle tips for a pointing pose.
	DefaultSpreadThreshold = 0.1
	// DefaultThumbThreshold is the minimum horizontal gap between thumb and
	// index tips for a pointing pose.
	DefaultThumbThreshold = 0.15
	// DefaultSwipeThreshold is the minimum vertical wrist travel between
	// consecutive frames for a swipe.
	DefaultSwipeThreshold = 0.1
	// DefaultSmoothingGain is the EMA gain applied to raw cursor samples.
	DefaultSmoothingGain = 0.3
)

// Config holds the gesture classification tunables.
type Config struct {
	PinchThreshold  float64
	SpreadThreshold float64
	ThumbThreshold  float64
	SwipeThreshold  float64
	SmoothingGain   float64
}

// DefaultConfig returns a Config with the stock thresholds.
func DefaultConfig() Config {
	return Config{
		PinchThreshold:  DefaultPinchThreshold,
		SpreadThreshold: DefaultSpreadThreshold,
		ThumbThreshold:  DefaultThumbThreshold,
		SwipeThreshold:  DefaultSwipeThreshold,
		SmoothingGain:   DefaultSmoothingGain,
	}
}

// Definition pairs a named gesture predicate with the action it emits.
// Predicates are pure over their inputs: the current frame and, for swipes,
// the previous frame. They must not modify either frame.
type Definition struct {
	Name   string
	Action Action
	Match  func(cur, prev *detector.Frame) bool
}

// Definitions returns the detector set in priority order. Order is
// significant: the resolver short-circuits on the first match, so movement
// and click poses win over scroll swipes when a frame satisfies both.
func Definitions(cfg Config) []Definition {
	return []Definition{
		{
			Name:   "pointing",
			Action: ActionMove,
			Match: func(cur, _ *detector.Frame) bool {
				return isPointing(cfg, cur)
			},
		},
		{
			Name:   "pinch",
			Action: ActionClick,
			Match: func(cur, _ *detector.Frame) bool {
				return isPinch(cfg, cur)
			},
		},
		{
			Name:   "fist",
			Action: ActionRightClick,
			Match: func(cur, _ *detector.Frame) bool {
				return isFist(cur)
			},
		},
		{
			Name:   "swipe-up",
			Action: ActionScrollUp,
			Match: func(cur, prev *detector.Frame) bool {
				return prev != nil && wristDeltaY(cur, prev) < -cfg.SwipeThreshold
			},
		},
		{
			Name:   "swipe-down",
			Action: ActionScrollDown,
			Match: func(cur, prev *detector.Frame) bool {
				return prev != nil && wristDeltaY(cur, prev) > cfg.SwipeThreshold
			},
		},
	}
}

// isPointing reports whether the index finger is extended (tip above the DIP
// joint; y increases downward) with the middle finger and thumb clearly out
// of the way.
func isPointing(cfg Config, f *detector.Frame) bool {
	indexTip := f.Points[detector.IndexTip]
	indexDIP := f.Points[detector.IndexDIP]
	middleTip := f.Points[detector.MiddleTip]
	thumbTip := f.Points[detector.ThumbTip]

	return indexTip.Y < indexDIP.Y &&
		math.Abs(indexTip.X-middleTip.X) > cfg.SpreadThreshold &&
		math.Abs(thumbTip.X-indexTip.X) > cfg.ThumbThreshold
}

// isPinch reports whether thumb and index tips are within the pinch
// threshold. The comparison is strict: a distance exactly at the threshold
// does not match.
func isPinch(cfg Config, f *detector.Frame) bool {
	d := detector.Dist2D(f.Points[detector.ThumbTip], f.Points[detector.IndexTip])
	return d < cfg.PinchThreshold
}

// fistPairs lists the (tip, base) landmark pairs checked for a fist.
var fistPairs = [5][2]int{
	{detector.ThumbTip, detector.ThumbMCP},
	{detector.IndexTip, detector.IndexMCP},
	{detector.MiddleTip, detector.MiddleMCP},
	{detector.RingTip, detector.RingMCP},
	{detector.PinkyTip, detector.PinkyMCP},
}

// isFist reports whether every fingertip is folded at or below its base
// joint. A single extended finger breaks the match.
func isFist(f *detector.Frame) bool {
	for _, pair := range fistPairs {
		tip, base := f.Points[pair[0]], f.Points[pair[1]]
		if tip.Y < base.Y {
			return false
		}
	}
	return true
}

// wristDeltaY returns the vertical wrist travel from the previous frame to
// the current one. Negative means the hand moved up in the image.
func wristDeltaY(cur, prev *detector.Frame) float64 {
	return cur.Points[detector.Wrist].Y - prev.Points[detector.Wrist].Y
}
