package pointer

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

func TestEffect_ActiveAt(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	effect := Effect{
		Action:   gesture.ActionClick,
		At:       base,
		Duration: 300 * time.Millisecond,
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before trigger", base.Add(-time.Millisecond), false},
		{"at trigger", base, true},
		{"mid duration", base.Add(150 * time.Millisecond), true},
		{"at expiry", base.Add(300 * time.Millisecond), false},
		{"after expiry", base.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effect.ActiveAt(tt.at); got != tt.want {
				t.Errorf("ActiveAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	t.Run("zero effect is never active", func(t *testing.T) {
		var zero Effect
		if zero.ActiveAt(base) {
			t.Error("zero-value effect should never be active")
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ClickDelay != 100*time.Millisecond {
		t.Errorf("ClickDelay = %v, want 100ms", cfg.ClickDelay)
	}
	if cfg.ScrollDelta != 50 {
		t.Errorf("ScrollDelta = %d, want 50", cfg.ScrollDelta)
	}
}

func TestNewSystem_FillsZeroConfig(t *testing.T) {
	var _ Dispatcher = (*System)(nil)

	s := NewSystem(Config{})

	if s.config.ClickDelay != DefaultClickDelay {
		t.Errorf("ClickDelay = %v, want %v", s.config.ClickDelay, DefaultClickDelay)
	}
	if s.config.ScrollDelta != DefaultScrollDelta {
		t.Errorf("ScrollDelta = %d, want %d", s.config.ScrollDelta, DefaultScrollDelta)
	}
	if s.config.EffectDuration != DefaultEffectDuration {
		t.Errorf("EffectDuration = %v, want %v", s.config.EffectDuration, DefaultEffectDuration)
	}
}

func TestMockDispatcher(t *testing.T) {
	t.Run("implements Dispatcher interface", func(t *testing.T) {
		var _ Dispatcher = (*MockDispatcher)(nil)
	})

	t.Run("records moves in order", func(t *testing.T) {
		m := NewMockDispatcher()
		m.Move(10, 20)
		m.Move(30, 40)

		moves := m.Moves()
		if len(moves) != 2 {
			t.Fatalf("got %d moves, want 2", len(moves))
		}
		if moves[0] != (Move{X: 10, Y: 20}) || moves[1] != (Move{X: 30, Y: 40}) {
			t.Errorf("moves = %v", moves)
		}
	})

	t.Run("records clicks and effects", func(t *testing.T) {
		m := NewMockDispatcher()

		if _, ok := m.LastEffect(); ok {
			t.Error("expected no effect before dispatch")
		}

		m.Click()
		m.RightClick()

		if m.Clicks() != 1 || m.RightClicks() != 1 {
			t.Errorf("clicks = %d, right clicks = %d, want 1 each", m.Clicks(), m.RightClicks())
		}

		effect, ok := m.LastEffect()
		if !ok {
			t.Fatal("expected an effect after dispatch")
		}
		if effect.Action != gesture.ActionRightClick {
			t.Errorf("last effect = %s, want %s", effect.Action, gesture.ActionRightClick)
		}
		if !effect.ActiveAt(time.Now()) {
			t.Error("fresh effect should be active")
		}
	})

	t.Run("records scroll direction", func(t *testing.T) {
		m := NewMockDispatcher()
		m.Scroll(50)
		m.Scroll(-50)

		scrolls := m.Scrolls()
		if len(scrolls) != 2 || scrolls[0] != 50 || scrolls[1] != -50 {
			t.Errorf("scrolls = %v, want [50 -50]", scrolls)
		}

		effect, _ := m.LastEffect()
		if effect.Action != gesture.ActionScrollDown {
			t.Errorf("last effect = %s, want %s", effect.Action, gesture.ActionScrollDown)
		}
	})

	t.Run("counts absences", func(t *testing.T) {
		m := NewMockDispatcher()
		m.Absent()
		m.Absent()

		if m.Absences() != 2 {
			t.Errorf("absences = %d, want 2", m.Absences())
		}
	})

	t.Run("tracks drag transitions", func(t *testing.T) {
		m := NewMockDispatcher()

		m.SetDragging(true)
		m.SetDragging(true) // repeated holds are a single transition

		if !m.Dragging() {
			t.Error("expected drag hold to be active")
		}
		if m.DragStarts() != 1 {
			t.Errorf("drag starts = %d, want 1", m.DragStarts())
		}

		m.SetDragging(false)
		if m.Dragging() {
			t.Error("expected drag hold to be released")
		}
		if m.DragEnds() != 1 {
			t.Errorf("drag ends = %d, want 1", m.DragEnds())
		}
	})

	t.Run("absence ends an active drag", func(t *testing.T) {
		m := NewMockDispatcher()
		m.SetDragging(true)

		m.Absent()

		if m.Dragging() {
			t.Error("expected absence to release the drag hold")
		}
		if m.DragEnds() != 1 {
			t.Errorf("drag ends = %d, want 1", m.DragEnds())
		}
	})
}
