package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestResolver_FirstMatchWins(t *testing.T) {
	t.Run("pointing resolves to move", func(t *testing.T) {
		r := NewResolver(DefaultConfig())
		f := detector.PointingFrame()

		action, ok := r.Resolve(&f)
		if !ok {
			t.Fatal("expected pointing frame to resolve")
		}
		if action != ActionMove {
			t.Errorf("action = %s, want %s", action, ActionMove)
		}
	})

	t.Run("pinch resolves to click", func(t *testing.T) {
		r := NewResolver(DefaultConfig())
		f := detector.PinchFrame()

		action, ok := r.Resolve(&f)
		if !ok {
			t.Fatal("expected pinch frame to resolve")
		}
		if action != ActionClick {
			t.Errorf("action = %s, want %s", action, ActionClick)
		}
	})

	t.Run("fist resolves to right-click", func(t *testing.T) {
		r := NewResolver(DefaultConfig())
		f := detector.FistFrame()

		action, ok := r.Resolve(&f)
		if !ok {
			t.Fatal("expected fist frame to resolve")
		}
		if action != ActionRightClick {
			t.Errorf("action = %s, want %s", action, ActionRightClick)
		}
	})

	t.Run("neutral frame resolves to nothing", func(t *testing.T) {
		r := NewResolver(DefaultConfig())
		f := detector.NeutralFrame()

		if action, ok := r.Resolve(&f); ok {
			t.Errorf("expected no match for neutral frame, got %s", action)
		}
	})
}

func TestResolver_PinchBeatsSwipe(t *testing.T) {
	// A pinched hand yanked upward satisfies both PINCH and SWIPE_UP;
	// pinch sits earlier in the priority order so the click wins.
	r := NewResolver(DefaultConfig())

	prev := detector.PinchFrame()
	prev.Points[detector.Wrist].Y = 0.80
	cur := detector.PinchFrame()
	cur.Points[detector.Wrist].Y = 0.60

	if _, ok := r.Resolve(&prev); !ok {
		t.Fatal("expected first pinch frame to resolve")
	}

	action, ok := r.Resolve(&cur)
	if !ok {
		t.Fatal("expected second frame to resolve")
	}
	if action != ActionClick {
		t.Errorf("action = %s, want %s (pinch outranks swipe)", action, ActionClick)
	}
}

func TestResolver_ScrollScenario(t *testing.T) {
	// First observed frame: no previous memory, so no swipe is possible and
	// nothing else matches a neutral hand. Second frame moves the wrist from
	// 0.5 to 0.35 (-0.15, beyond the 0.1 threshold): scroll-up.
	r := NewResolver(DefaultConfig())

	f1 := detector.NeutralFrame()
	f1.Points[detector.Wrist].Y = 0.50
	if action, ok := r.Resolve(&f1); ok {
		t.Fatalf("first frame should not resolve, got %s", action)
	}

	f2 := detector.NeutralFrame()
	f2.Points[detector.Wrist].Y = 0.35
	action, ok := r.Resolve(&f2)
	if !ok {
		t.Fatal("expected second frame to resolve")
	}
	if action != ActionScrollUp {
		t.Errorf("action = %s, want %s", action, ActionScrollUp)
	}
}

func TestResolver_PreviousFrameMemory(t *testing.T) {
	t.Run("advances once per resolution regardless of outcome", func(t *testing.T) {
		r := NewResolver(DefaultConfig())

		f1 := detector.NeutralFrame()
		f1.Points[detector.Wrist].Y = 0.42

		r.Resolve(&f1) // no match, memory must still advance

		prev := r.Previous()
		if prev == nil {
			t.Fatal("previous frame not stored after resolution")
		}
		if prev.Points[detector.Wrist].Y != 0.42 {
			t.Errorf("stored wrist.y = %v, want 0.42", prev.Points[detector.Wrist].Y)
		}
	})

	t.Run("stores a copy, not the caller's pointer", func(t *testing.T) {
		r := NewResolver(DefaultConfig())

		f := detector.NeutralFrame()
		r.Resolve(&f)

		f.Points[detector.Wrist].Y = 0.99
		if r.Previous().Points[detector.Wrist].Y == 0.99 {
			t.Error("resolver memory aliases the caller's frame")
		}
	})

	t.Run("invalid frame leaves memory untouched", func(t *testing.T) {
		r := NewResolver(DefaultConfig())

		good := detector.NeutralFrame()
		r.Resolve(&good)

		bad := detector.NeutralFrame()
		bad.Points[detector.IndexTip].X = math.NaN()

		if _, ok := r.Resolve(&bad); ok {
			t.Error("invalid frame must not resolve")
		}
		if r.Previous() == nil || r.Previous().Points[detector.Wrist].Y != good.Points[detector.Wrist].Y {
			t.Error("invalid frame disturbed the previous-frame memory")
		}

		if _, ok := r.Resolve(nil); ok {
			t.Error("nil frame must not resolve")
		}
		if r.Previous() == nil {
			t.Error("nil frame disturbed the previous-frame memory")
		}
	})

	t.Run("Reset clears memory", func(t *testing.T) {
		r := NewResolver(DefaultConfig())

		f := detector.NeutralFrame()
		r.Resolve(&f)
		r.Reset()

		if r.Previous() != nil {
			t.Error("expected nil previous frame after Reset")
		}
	})
}

func TestResolver_Deterministic(t *testing.T) {
	// Identical frame sequences through fresh resolvers yield identical
	// action sequences.
	sequence := []detector.Frame{
		detector.NeutralFrame(),
		detector.PointingFrame(),
		detector.PinchFrame(),
		detector.FistFrame(),
		detector.NeutralFrame(),
	}

	run := func() []Action {
		r := NewResolver(DefaultConfig())
		var out []Action
		for i := range sequence {
			f := sequence[i]
			action, ok := r.Resolve(&f)
			if !ok {
				action = ""
			}
			out = append(out, action)
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("frame %d: run 1 resolved %q, run 2 resolved %q", i, first[i], second[i])
		}
	}
}
