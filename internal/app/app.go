// Package app wires the per-frame pointer-control pipeline: capture a
// frame, extract hand landmarks, resolve a gesture, smooth the cursor
// position, and dispatch the result.
package app

import (
	"log"
	"strconv"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/pointer"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching
	// back to idle mode.
	IdleTimeoutMs = 2000
	// DragHoldFrames is the number of consecutive pinch frames that turn a
	// momentary click into a drag hold. A shorter pinch is a click; holding
	// it keeps the button down until the pinch breaks or the hand leaves.
	DragHoldFrames = 3
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64

	// ScreenWidth/ScreenHeight define the viewport the wrist position maps
	// onto. Zero values are filled from the primary display.
	ScreenWidth  int
	ScreenHeight int

	// Dispatcher receives the per-cycle pointer effects. Defaults to the
	// robotgo system dispatcher.
	Dispatcher pointer.Dispatcher

	// Camera overrides the capture device. Defaults to the gocv camera for
	// CameraID; tests inject a capture.MockCamera here.
	Camera capture.Camera

	Gesture gesture.Config
	Pointer pointer.Config
}

// Output is the per-cycle result handed to registered observers.
type Output struct {
	X, Y    float64
	Action  gesture.Action
	Matched bool
	Hand    bool
}

// App orchestrates the detection cycle and owns its state. One cycle runs
// to completion before the next begins; resolver and smoother state are
// only touched from the pipeline goroutine.
type App struct {
	config      Config
	camera      capture.Camera
	motion      *capture.MotionDetector
	detector    detector.Detector
	dispatcher  pointer.Dispatcher
	resolver    *gesture.Resolver
	smoother    *gesture.Smoother
	scrollDelta int
	pinchStreak int
	screenW     int
	screenH     int
	enabled     bool
	mu          sync.RWMutex
	stopCh      chan struct{}
	onCycle     func(Output)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	gcfg := config.Gesture
	if gcfg == (gesture.Config{}) {
		gcfg = gesture.DefaultConfig()
	}
	pcfg := config.Pointer
	if pcfg.ScrollDelta <= 0 {
		pcfg.ScrollDelta = pointer.DefaultScrollDelta
	}

	dispatcher := config.Dispatcher
	if dispatcher == nil {
		dispatcher = pointer.NewSystem(pcfg)
	}

	screenW, screenH := config.ScreenWidth, config.ScreenHeight
	if screenW <= 0 || screenH <= 0 {
		screenW, screenH = pointer.ScreenSize()
	}

	camera := config.Camera
	if camera == nil {
		camera = capture.NewCamera(config.CameraID)
	}

	a := &App{
		config:      config,
		camera:      camera,
		motion:      capture.NewMotionDetector(motionThreshold),
		dispatcher:  dispatcher,
		resolver:    gesture.NewResolver(gcfg),
		smoother:    gesture.NewSmoother(gcfg.SmoothingGain),
		scrollDelta: pcfg.ScrollDelta,
		screenW:     screenW,
		screenH:     screenH,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables pointer control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether pointer control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnCycle registers a callback invoked with every cycle's output.
func (a *App) OnCycle(fn func(Output)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onCycle = fn
}

// Setting keys recognized by LoadSettings.
const (
	SettingPinchThreshold  = "pinch_threshold"
	SettingSpreadThreshold = "spread_threshold"
	SettingThumbThreshold  = "thumb_threshold"
	SettingSwipeThreshold  = "swipe_threshold"
	SettingSmoothingGain   = "smoothing_gain"
	SettingScrollDelta     = "scroll_delta"
)

// LoadSettings applies stored tunable overrides on top of the current
// gesture configuration and rebuilds the resolver and smoother. Unknown
// keys and unparseable values are logged and skipped. The click delay is
// owned by the dispatcher and only applies at startup.
func (a *App) LoadSettings() error {
	if a.config.Store == nil {
		return nil
	}

	stored, err := a.config.Store.Settings().All()
	if err != nil {
		return err
	}

	cfg := a.config.Gesture
	if cfg == (gesture.Config{}) {
		cfg = gesture.DefaultConfig()
	}
	scrollDelta := a.scrollDelta

	for key, value := range stored {
		if key == SettingScrollDelta {
			n, err := strconv.Atoi(value)
			if err != nil {
				log.Printf("Ignoring setting %s=%q: %v", key, value, err)
				continue
			}
			scrollDelta = n
			continue
		}

		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Printf("Ignoring setting %s=%q: %v", key, value, err)
			continue
		}

		switch key {
		case SettingPinchThreshold:
			cfg.PinchThreshold = f
		case SettingSpreadThreshold:
			cfg.SpreadThreshold = f
		case SettingThumbThreshold:
			cfg.ThumbThreshold = f
		case SettingSwipeThreshold:
			cfg.SwipeThreshold = f
		case SettingSmoothingGain:
			cfg.SmoothingGain = f
		default:
			log.Printf("Ignoring unknown setting %q", key)
		}
	}

	a.applyGestureConfig(cfg, scrollDelta)
	log.Printf("Loaded %d setting overrides", len(stored))
	return nil
}

// applyGestureConfig swaps in a rebuilt resolver and smoother. The running
// pipeline picks the new components up on its next cycle.
func (a *App) applyGestureConfig(cfg gesture.Config, scrollDelta int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Re-validate against nonsense values before rebuilding.
	if cfg.PinchThreshold <= 0 {
		cfg.PinchThreshold = gesture.DefaultPinchThreshold
	}
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = gesture.DefaultSwipeThreshold
	}

	a.config.Gesture = cfg
	a.resolver = gesture.NewResolver(cfg)
	a.smoother = gesture.NewSmoother(cfg.SmoothingGain)
	if scrollDelta > 0 {
		a.scrollDelta = scrollDelta
	}
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Pointer pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources. Resolver and
// smoother state are cleared so a restart begins a fresh session.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.pinchStreak >= DragHoldFrames {
		a.dispatcher.SetDragging(false)
	}
	a.pinchStreak = 0

	a.resolver.Reset()
	a.smoother.Reset()

	log.Println("Pointer pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Dispatcher returns the pointer dispatcher.
func (a *App) Dispatcher() pointer.Dispatcher {
	return a.dispatcher
}
