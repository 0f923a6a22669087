package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// runPipeline is the main capture loop. It idles at a low frame rate until
// motion is observed, then switches to the active rate and feeds frames
// through the detector.
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()

	idleInterval := time.Second / IdleFPS
	activeInterval := time.Second / ActiveFPS

	ticker := time.NewTicker(idleInterval)
	defer ticker.Stop()

	a.mu.RLock()
	stopCh := a.stopCh
	a.mu.RUnlock()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					ticker.Reset(activeInterval)
					log.Println("Motion detected, switching to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > IdleTimeoutMs*time.Millisecond {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				ticker.Reset(idleInterval)
				log.Println("Idle timeout, switching to idle mode")
			}

			if !activeMode || !a.IsEnabled() {
				frame.Close()
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Detection error: %v", err)
				a.signalAbsence()
				continue
			}

			a.RunCycle(hands)
		}
	}
}

// RunCycle executes one detection cycle over the extracted landmark
// frames. A missing or malformed hand counts as absence: the dispatcher is
// told, and resolver and smoother state are left untouched so tracking
// resumes seamlessly when the hand reappears.
//
// A pinch is debounced into one click per streak of consecutive matching
// frames; holding the pinch for DragHoldFrames turns it into a drag hold
// that persists until the pinch breaks or the hand disappears.
func (a *App) RunCycle(hands []detector.Frame) {
	if len(hands) == 0 {
		a.signalAbsence()
		return
	}

	// Pointer control tracks a single hand.
	hand := &hands[0]
	if !hand.Valid() {
		a.signalAbsence()
		return
	}

	a.mu.RLock()
	resolver := a.resolver
	smoother := a.smoother
	scrollDelta := a.scrollDelta
	a.mu.RUnlock()

	action, matched := resolver.Resolve(hand)

	rawX, rawY := gesture.MapToScreen(hand.Points[detector.Wrist], a.screenW, a.screenH)
	x, y := smoother.Smooth(rawX, rawY)

	a.dispatcher.Move(x, y)

	if matched && action == gesture.ActionClick {
		a.pinchStreak++
		switch a.pinchStreak {
		case 1:
			a.dispatcher.Click()
			a.recordEvent(action, x, y)
		case DragHoldFrames:
			a.dispatcher.SetDragging(true)
		}
	} else {
		a.breakPinchStreak()
		if matched {
			switch action {
			case gesture.ActionMove:
				// Cursor already moved above.
			case gesture.ActionRightClick:
				a.dispatcher.RightClick()
			case gesture.ActionScrollUp:
				a.dispatcher.Scroll(scrollDelta)
			case gesture.ActionScrollDown:
				a.dispatcher.Scroll(-scrollDelta)
			}
			a.recordEvent(action, x, y)
		}
	}

	a.notifyCycle(Output{X: x, Y: y, Action: action, Matched: matched, Hand: true})
}

// breakPinchStreak resets the pinch run and releases a drag hold the streak
// had escalated into.
func (a *App) breakPinchStreak() {
	if a.pinchStreak >= DragHoldFrames {
		a.dispatcher.SetDragging(false)
	}
	a.pinchStreak = 0
}

// signalAbsence tells the dispatcher no hand was usable this cycle. The
// dispatcher releases any held drag itself; only the streak counter needs
// clearing here.
func (a *App) signalAbsence() {
	a.pinchStreak = 0
	a.dispatcher.Absent()
	a.notifyCycle(Output{Hand: false})
}

func (a *App) recordEvent(action gesture.Action, x, y float64) {
	if a.config.Store == nil {
		return
	}

	err := a.config.Store.Events().Insert(&store.Event{
		ID:     uuid.New().String(),
		Action: string(action),
		X:      x,
		Y:      y,
	})
	if err != nil {
		log.Printf("Error recording event: %v", err)
	}
}

func (a *App) notifyCycle(out Output) {
	a.mu.RLock()
	fn := a.onCycle
	a.mu.RUnlock()

	if fn != nil {
		fn(out)
	}
}
