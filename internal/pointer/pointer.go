// Package pointer dispatches resolved gestures as synthetic pointer input:
// cursor movement, momentary clicks, scrolling, and an absence signal when
// the hand disappears.
package pointer

import (
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// Dispatch timing and magnitude defaults.
const (
	// DefaultClickDelay is the gap between synthetic press and release.
	DefaultClickDelay = 100 * time.Millisecond
	// DefaultScrollDelta is the scroll amount applied per triggering frame.
	DefaultScrollDelta = 50
	// DefaultEffectDuration is how long a dispatched action's visual
	// acknowledgement stays active.
	DefaultEffectDuration = 300 * time.Millisecond
)

// Config holds dispatcher tunables.
type Config struct {
	ClickDelay     time.Duration
	ScrollDelta    int
	EffectDuration time.Duration
}

// DefaultConfig returns a Config with the stock dispatch timings.
func DefaultConfig() Config {
	return Config{
		ClickDelay:     DefaultClickDelay,
		ScrollDelta:    DefaultScrollDelta,
		EffectDuration: DefaultEffectDuration,
	}
}

// Dispatcher turns per-cycle pipeline output into externally observable
// pointer effects. Implementations must tolerate being called once per
// frame; scroll actions in particular repeat while the gesture persists.
type Dispatcher interface {
	// Move updates the cursor to the smoothed screen position. Called every
	// cycle a hand is present, independent of the resolved action.
	Move(x, y float64)

	// Click dispatches a momentary left click (press, short delay, release).
	Click()

	// RightClick dispatches a momentary right click.
	RightClick()

	// Scroll applies a scroll of delta units; positive scrolls up.
	Scroll(delta int)

	// SetDragging starts or ends a drag hold. While the hold is active,
	// Move calls drag whatever is under the cursor.
	SetDragging(dragging bool)

	// Dragging reports whether a drag hold is active.
	Dragging() bool

	// Absent signals that no usable hand was observed this cycle. Ends any
	// held drag so the button is not left stuck down.
	Absent()

	// LastEffect returns the most recently dispatched action's visual
	// effect, and false if nothing has been dispatched yet.
	LastEffect() (Effect, bool)
}

// Effect records a momentary visual acknowledgement of a dispatched action.
// The dispatcher owns all timing: consumers ask whether the effect is still
// active at a given instant instead of juggling timers themselves.
type Effect struct {
	Action   gesture.Action `json:"action"`
	At       time.Time      `json:"at"`
	Duration time.Duration  `json:"duration"`
}

// ActiveAt reports whether the effect should still be shown at t.
func (e Effect) ActiveAt(t time.Time) bool {
	if e.At.IsZero() {
		return false
	}
	return !t.Before(e.At) && t.Before(e.At.Add(e.Duration))
}
