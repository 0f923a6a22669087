package pointer

import (
	"sync"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/ayusman/mudra/internal/gesture"
)

// System dispatches pointer effects to the operating system via robotgo.
type System struct {
	config     Config
	mu         sync.Mutex
	dragging   bool
	lastEffect Effect
	hasEffect  bool
}

// NewSystem creates a system dispatcher with the given config.
func NewSystem(config Config) *System {
	if config.ClickDelay <= 0 {
		config.ClickDelay = DefaultClickDelay
	}
	if config.ScrollDelta <= 0 {
		config.ScrollDelta = DefaultScrollDelta
	}
	if config.EffectDuration <= 0 {
		config.EffectDuration = DefaultEffectDuration
	}
	return &System{config: config}
}

// ScreenSize returns the primary display dimensions in pixels.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// Move positions the OS cursor at the smoothed coordinates.
func (s *System) Move(x, y float64) {
	robotgo.Move(int(x), int(y))
}

// Click presses the left button and releases it after the configured delay.
// The release runs on a timer so the detection cycle never blocks.
func (s *System) Click() {
	s.record(gesture.ActionClick)
	robotgo.Toggle("left", "down")
	time.AfterFunc(s.config.ClickDelay, func() {
		robotgo.Toggle("left", "up")
	})
}

// RightClick presses the right button and releases it after the configured
// delay.
func (s *System) RightClick() {
	s.record(gesture.ActionRightClick)
	robotgo.Toggle("right", "down")
	time.AfterFunc(s.config.ClickDelay, func() {
		robotgo.Toggle("right", "up")
	})
}

// Scroll applies a vertical scroll. Positive delta scrolls up. Called once
// per frame while a swipe persists, so the delta is per-frame, not total.
func (s *System) Scroll(delta int) {
	if delta > 0 {
		s.record(gesture.ActionScrollUp)
	} else {
		s.record(gesture.ActionScrollDown)
	}
	robotgo.Scroll(0, delta)
}

// SetDragging starts or ends a drag by holding or releasing the left
// button. While dragging, Move calls translate into OS drag motion.
func (s *System) SetDragging(dragging bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dragging == s.dragging {
		return
	}
	s.dragging = dragging

	if dragging {
		robotgo.Toggle("left", "down")
	} else {
		robotgo.Toggle("left", "up")
	}
}

// Dragging returns whether a drag is currently held.
func (s *System) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// Absent releases a held drag when the hand disappears. The cursor itself
// is left where it was; the UI layer handles fading.
func (s *System) Absent() {
	s.mu.Lock()
	wasDragging := s.dragging
	s.dragging = false
	s.mu.Unlock()

	if wasDragging {
		robotgo.Toggle("left", "up")
	}
}

// LastEffect returns the most recent dispatched action's visual effect.
func (s *System) LastEffect() (Effect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastEffect, s.hasEffect
}

func (s *System) record(action gesture.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEffect = Effect{
		Action:   action,
		At:       time.Now(),
		Duration: s.config.EffectDuration,
	}
	s.hasEffect = true
}
