package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical scene action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleRotation
	ActionRotateLeft
	ActionRotateRight
	ActionLightUp
	ActionLightDown
	ActionLightLeft
	ActionLightRight
	ActionColor1
	ActionColor2
	ActionColor3
	ActionColor4
	ActionCount // Sentinel value for array sizing
)

// Manager maps physical keys to logical actions and keeps per-tick state.
// GLFW callbacks write into it, the update loop reads it once per tick.
type Manager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	// an action stays held while any of its keys is down
	keyDown      map[glfw.Key]bool
	heldKeys     [ActionCount]int
	currentState [ActionCount]bool

	// reset by PostUpdate
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	mouse  MouseTracker
	scroll float64
}

// NewManager creates a Manager with the default key bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		keyDown:      make(map[glfw.Key]bool),
	}
	m.mouse.Reset()

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyR, ActionToggleRotation)
	m.BindKey(glfw.KeyLeft, ActionRotateLeft)
	m.BindKey(glfw.KeyRight, ActionRotateRight)
	m.BindKey(glfw.KeyUp, ActionLightUp)
	m.BindKey(glfw.KeyDown, ActionLightDown)
	m.BindKey(glfw.KeyComma, ActionLightLeft)
	m.BindKey(glfw.KeyPeriod, ActionLightRight)
	m.BindKey(glfw.Key1, ActionColor1)
	m.BindKey(glfw.Key2, ActionColor2)
	m.BindKey(glfw.Key3, ActionColor3)
	m.BindKey(glfw.Key4, ActionColor4)

	return m
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
	if m.keyDown[key] {
		m.hold(action)
	}
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.keyDown[key] {
		for _, act := range m.keyToActions[key] {
			m.release(act)
		}
		delete(m.keyDown, key)
	}
	delete(m.keyToActions, key)
}

// HandleKeyEvent records a key press or release
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, exists := m.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	if isPressed == m.keyDown[key] {
		// repeat, or a release we never saw pressed
		return
	}
	if isPressed {
		m.keyDown[key] = true
	} else {
		delete(m.keyDown, key)
	}

	for _, act := range actions {
		if isPressed {
			m.hold(act)
		} else {
			m.release(act)
		}
	}
}

func (m *Manager) hold(act Action) {
	if m.heldKeys[act] == 0 {
		m.justPressed[act] = true
	}
	m.heldKeys[act]++
	m.currentState[act] = true
}

func (m *Manager) release(act Action) {
	if m.heldKeys[act] == 0 {
		return
	}
	m.heldKeys[act]--
	if m.heldKeys[act] == 0 {
		m.justReleased[act] = true
		m.currentState[act] = false
	}
}

// HandleCursorPos records an absolute cursor sample
func (m *Manager) HandleCursorPos(xpos, ypos float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mouse.Sample(xpos, ypos)
}

// HandleScroll accumulates vertical scroll for the current tick
func (m *Manager) HandleScroll(yoff float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scroll += yoff
}

// DrainMouse returns the mouse delta accumulated since the last call
func (m *Manager) DrainMouse() (dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mouse.Drain()
}

// DrainScroll returns the scroll accumulated since the last call
func (m *Manager) DrainScroll() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.scroll
	m.scroll = 0
	return s
}

// ResetMouse re-arms first-sample handling, e.g. after the cursor is recaptured
func (m *Manager) ResetMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mouse.Reset()
}

// PostUpdate must be called at the end of each tick to clear edge flags
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed during this tick
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released during this tick
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
