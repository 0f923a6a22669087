package pointer

import (
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// Move is a recorded cursor position.
type Move struct {
	X, Y float64
}

// MockDispatcher records dispatched effects for tests instead of producing
// system input.
type MockDispatcher struct {
	mu          sync.Mutex
	moves       []Move
	clicks      int
	rightClicks int
	scrolls     []int
	absences    int
	dragging    bool
	dragStarts  int
	dragEnds    int
	lastEffect  Effect
	hasEffect   bool
}

// NewMockDispatcher creates a new MockDispatcher.
func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Move(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, Move{X: x, Y: y})
}

func (m *MockDispatcher) Click() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks++
	m.record(gesture.ActionClick)
}

func (m *MockDispatcher) RightClick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rightClicks++
	m.record(gesture.ActionRightClick)
}

func (m *MockDispatcher) Scroll(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scrolls = append(m.scrolls, delta)
	if delta > 0 {
		m.record(gesture.ActionScrollUp)
	} else {
		m.record(gesture.ActionScrollDown)
	}
}

func (m *MockDispatcher) SetDragging(dragging bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if dragging == m.dragging {
		return
	}
	m.dragging = dragging
	if dragging {
		m.dragStarts++
	} else {
		m.dragEnds++
	}
}

func (m *MockDispatcher) Dragging() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dragging
}

func (m *MockDispatcher) Absent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.absences++
	if m.dragging {
		m.dragging = false
		m.dragEnds++
	}
}

func (m *MockDispatcher) LastEffect() (Effect, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastEffect, m.hasEffect
}

// record must be called with the mutex held.
func (m *MockDispatcher) record(action gesture.Action) {
	m.lastEffect = Effect{Action: action, At: time.Now(), Duration: DefaultEffectDuration}
	m.hasEffect = true
}

// Moves returns the recorded cursor positions.
func (m *MockDispatcher) Moves() []Move {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Clicks returns the number of recorded left clicks.
func (m *MockDispatcher) Clicks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clicks
}

// RightClicks returns the number of recorded right clicks.
func (m *MockDispatcher) RightClicks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rightClicks
}

// Scrolls returns the recorded scroll deltas.
func (m *MockDispatcher) Scrolls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.scrolls))
	copy(out, m.scrolls)
	return out
}

// Absences returns the number of recorded absence signals.
func (m *MockDispatcher) Absences() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.absences
}

// DragStarts returns the number of recorded drag-hold starts.
func (m *MockDispatcher) DragStarts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dragStarts
}

// DragEnds returns the number of recorded drag-hold ends.
func (m *MockDispatcher) DragEnds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dragEnds
}
