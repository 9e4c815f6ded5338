package input

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/common"
)

// Manager owns the binding tables and the per-device frame buffers and
// resolves actions against them.
//
// Call Initialize once, then Update exactly once per frame before any query
// for that frame. Pointer setters may be called at any time; whatever they
// write is visible to queries until the next Update consumes the requests.
// All methods are safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	sampler Sampler
	debug   bool

	bindings *BindingTable
	gestures *GestureTable

	// staged by Reset, applied by the next Update
	pendingBindings *BindingTable
	pendingGestures *GestureTable

	frames   uint64
	keyboard frame[KeyboardState]
	gamepad  frame[GamePadState]
	mouse    frame[MouseState]
	pointer  frame[PointerState]
}

type Option func(*Manager)

// WithDebug logs every gesture-driven activation and table reset.
func WithDebug(debug bool) Option {
	return func(m *Manager) { m.debug = debug }
}

func NewManager(sampler Sampler, opts ...Option) *Manager {
	m := &Manager{sampler: sampler}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize installs the default binding and gesture tables.
func (m *Manager) Initialize() {
	m.InitializeWith(DefaultBindings(), DefaultGestures())
}

// InitializeWith installs the given tables. A nil table is replaced by the
// default one. The manager keeps its own copies.
func (m *Manager) InitializeWith(bindings *BindingTable, gestures *GestureTable) {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	if gestures == nil {
		gestures = DefaultGestures()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = bindings.Clone()
	m.gestures = gestures.Clone()
	m.pendingBindings = nil
	m.pendingGestures = nil
}

func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bindings != nil
}

// Reset replaces both tables in full. The swap happens at the start of the
// next Update so queries within one frame always see one table. A nil
// gestures table keeps the current gesture rules.
func (m *Manager) Reset(bindings *BindingTable, gestures *GestureTable) error {
	if bindings == nil {
		return fmt.Errorf("input: reset: nil binding table")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bindings == nil {
		return fmt.Errorf("input: reset: %w", ErrNotInitialized)
	}
	m.pendingBindings = bindings.Clone()
	m.pendingGestures = nil
	if gestures != nil {
		m.pendingGestures = gestures.Clone()
	}
	return nil
}

// Update advances every device by one frame.
func (m *Manager) Update() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bindings == nil {
		return fmt.Errorf("input: update: %w", ErrNotInitialized)
	}

	if m.pendingBindings != nil {
		m.bindings = m.pendingBindings
		m.pendingBindings = nil
		if m.pendingGestures != nil {
			m.gestures = m.pendingGestures
			m.pendingGestures = nil
		}
		if m.debug {
			log.Printf("input: binding table reset at frame %d", m.frames)
		}
	}

	s := m.sampler.Sample()
	m.keyboard.advance(s.Keyboard)
	m.gamepad.advance(s.GamePad)
	m.mouse.advance(s.Mouse)

	next := m.pointer.cur
	next.InteractionRequested = false
	next.InventoryRequested = false
	// The first sample has no real predecessor; the zero mouse position
	// would read as a long swipe from the origin.
	if m.frames == 0 {
		next.Movement = common.Vec2{}
	} else {
		next.Movement = common.PointDelta(m.mouse.cur.Position, m.mouse.prev.Position)
	}
	m.pointer.advance(next)

	m.frames++
	return nil
}

// Frame returns the number of completed Update calls.
func (m *Manager) Frame() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

func (m *Manager) checkAction(a Action) error {
	if m.bindings == nil {
		return ErrNotInitialized
	}
	if !a.Valid() {
		return fmt.Errorf("action %d: %w", int(a), ErrInvalidAction)
	}
	return nil
}

// ActionPressed reports whether a is active this frame.
func (m *Manager) ActionPressed(a Action) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkAction(a); err != nil {
		return false, fmt.Errorf("input: action pressed: %w", err)
	}
	return m.pressed(a), nil
}

// ActionTriggered reports whether a became active this frame.
func (m *Manager) ActionTriggered(a Action) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkAction(a); err != nil {
		return false, fmt.Errorf("input: action triggered: %w", err)
	}
	return m.triggered(a), nil
}

// IsActionPressed is ActionPressed for callers that hold the preconditions.
// It panics if the manager is not initialized or a is out of range.
func (m *Manager) IsActionPressed(a Action) bool {
	v, err := m.ActionPressed(a)
	if err != nil {
		panic(err)
	}
	return v
}

// IsActionTriggered is ActionTriggered for callers that hold the
// preconditions. It panics if the manager is not initialized or a is out of
// range.
func (m *Manager) IsActionTriggered(a Action) bool {
	v, err := m.ActionTriggered(a)
	if err != nil {
		panic(err)
	}
	return v
}

func (m *Manager) pressed(a Action) bool {
	b := &m.bindings.bindings[a]
	for _, k := range b.Keys {
		if m.keyboard.cur.IsKeyDown(k) {
			return true
		}
	}

	if m.gamepad.cur.Connected {
		for _, c := range b.GamePad {
			if c.pressedIn(m.gamepad.cur) {
				return true
			}
		}
	}

	if rule := m.gestures.rules[a].Pressed; rule != nil && rule(m.pointer.cur) {
		m.logGesture(a, "pressed")
		return true
	}
	return false
}

func (m *Manager) triggered(a Action) bool {
	b := &m.bindings.bindings[a]
	for _, k := range b.Keys {
		if m.keyboard.cur.IsKeyDown(k) && !m.keyboard.prev.IsKeyDown(k) {
			return true
		}
	}

	if m.gamepad.cur.Connected {
		for _, c := range b.GamePad {
			if c.triggeredIn(m.gamepad.cur, m.gamepad.prev) {
				return true
			}
		}
	}

	// Gesture triggers test the live pointer state only, so a held request
	// triggers on every frame it is asserted.
	if rule := m.gestures.rules[a].Triggered; rule != nil && rule(m.pointer.cur) {
		m.logGesture(a, "triggered")
		return true
	}
	return false
}

func (m *Manager) logGesture(a Action, kind string) {
	if !m.debug {
		return
	}
	p := m.pointer.cur
	log.Printf("input: %s %s by pointer: pressed=%v movement=(%.0f,%.0f) interaction=%v inventory=%v",
		a, kind, p.Pressed, p.Movement.X, p.Movement.Y, p.InteractionRequested, p.InventoryRequested)
}

// Bindings returns a copy of the active binding table, or nil before
// Initialize.
func (m *Manager) Bindings() *BindingTable {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bindings == nil {
		return nil
	}
	return m.bindings.Clone()
}

func (m *Manager) IsKeyPressed(k ebiten.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.cur.IsKeyDown(k)
}

// IsKeyTriggered reports whether k went down in the most recent Update.
func (m *Manager) IsKeyTriggered(k ebiten.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.cur.IsKeyDown(k) && !m.keyboard.prev.IsKeyDown(k)
}

func (m *Manager) IsGamePadConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamepad.cur.Connected
}

// IsGamePadButtonPressed reports whether control b reads as pressed.
// Controls outside the defined range never do.
func (m *Manager) IsGamePadButtonPressed(b GamePadButton) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return b.pressedIn(m.gamepad.cur)
}

func (m *Manager) IsGamePadButtonTriggered(b GamePadButton) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return b.triggeredIn(m.gamepad.cur, m.gamepad.prev)
}

// Keyboard returns the current and previous keyboard samples.
func (m *Manager) Keyboard() (cur, prev KeyboardState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyboard.cur, m.keyboard.prev
}

func (m *Manager) GamePad() (cur, prev GamePadState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamepad.cur, m.gamepad.prev
}

func (m *Manager) Mouse() (cur, prev MouseState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse.cur, m.mouse.prev
}

func (m *Manager) Pointer() (cur, prev PointerState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur, m.pointer.prev
}

func (m *Manager) SetPointerPosition(p image.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.cur.Position = p
}

func (m *Manager) SetPointerPressed(pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.cur.Pressed = pressed
}

func (m *Manager) SetInteractionRequested(requested bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.cur.InteractionRequested = requested
}

func (m *Manager) SetInventoryRequested(requested bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.cur.InventoryRequested = requested
}

// SetPointerMovement overrides the movement until the next Update.
func (m *Manager) SetPointerMovement(v common.Vec2) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.cur.Movement = v
}

func (m *Manager) PointerPosition() image.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.Position
}

func (m *Manager) IsPointerPressed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.Pressed
}

// IsPointerTriggered reports whether the pointer is pressed now and was not
// at the previous Update.
func (m *Manager) IsPointerTriggered() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.Pressed && !m.pointer.prev.Pressed
}

func (m *Manager) PointerMovement() common.Vec2 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.Movement
}

func (m *Manager) InteractionRequested() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.InteractionRequested
}

func (m *Manager) InventoryRequested() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer.cur.InventoryRequested
}
