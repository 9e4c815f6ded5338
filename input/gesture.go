package input

import "fmt"

// SwipeThreshold is the movement, in pixels along one axis, above which a
// pointer movement counts as a directional gesture.
const SwipeThreshold = 5

// PointerPredicate reports whether a pointer state satisfies a gesture.
type PointerPredicate func(PointerState) bool

// GestureRule is the pointer side of an action. A nil predicate never fires.
type GestureRule struct {
	Pressed   PointerPredicate
	Triggered PointerPredicate
}

// GestureTable maps actions to gesture rules. It is evaluated alongside the
// BindingTable and, like it, is read-only once handed to a Manager.
type GestureTable struct {
	rules [ActionCount]GestureRule
}

func NewGestureTable() *GestureTable {
	return &GestureTable{}
}

func (t *GestureTable) Set(a Action, r GestureRule) error {
	if !a.Valid() {
		return fmt.Errorf("input: gesture for action %d: %w", int(a), ErrInvalidAction)
	}
	t.rules[a] = r
	return nil
}

func (t *GestureTable) Rule(a Action) (GestureRule, error) {
	if !a.Valid() {
		return GestureRule{}, fmt.Errorf("input: gesture of action %d: %w", int(a), ErrInvalidAction)
	}
	return t.rules[a], nil
}

// Clone returns a copy of t. Predicates are shared.
func (t *GestureTable) Clone() *GestureTable {
	out := *t
	return &out
}

func SwipeLeft(p PointerState) bool  { return p.Movement.X < -SwipeThreshold }
func SwipeRight(p PointerState) bool { return p.Movement.X > SwipeThreshold }
func SwipeUp(p PointerState) bool    { return p.Movement.Y < -SwipeThreshold }
func SwipeDown(p PointerState) bool  { return p.Movement.Y > SwipeThreshold }

// InteractionRequest holds while a primary press is down and its request
// has not been consumed by Update.
func InteractionRequest(p PointerState) bool {
	return p.Pressed && p.InteractionRequested
}

// InventoryRequest holds while a secondary or long press is down and its
// request has not been consumed by Update.
func InventoryRequest(p PointerState) bool {
	return p.Pressed && p.InventoryRequested
}

// GestureSpec names the predicates of a GestureRule. A name is either one
// of the built-in predicates (swipe_left, swipe_right, swipe_up, swipe_down,
// interaction, inventory) or a script expression, see CompilePredicate.
type GestureSpec struct {
	Pressed   string `yaml:"pressed,omitempty"`
	Triggered string `yaml:"triggered,omitempty"`
}

var builtinPredicates = map[string]PointerPredicate{
	"swipe_left":  SwipeLeft,
	"swipe_right": SwipeRight,
	"swipe_up":    SwipeUp,
	"swipe_down":  SwipeDown,
	"interaction": InteractionRequest,
	"inventory":   InventoryRequest,
}

// ResolvePredicate returns the built-in predicate called src, or compiles
// src as a script expression. An empty src resolves to nil.
func ResolvePredicate(src string) (PointerPredicate, error) {
	if src == "" {
		return nil, nil
	}
	if p, ok := builtinPredicates[src]; ok {
		return p, nil
	}
	return CompilePredicate(src)
}

// GestureTableFromSpecs builds a full gesture table. Actions missing from
// specs get no pointer rule.
func GestureTableFromSpecs(specs map[Action]GestureSpec) (*GestureTable, error) {
	t := NewGestureTable()
	for a, spec := range specs {
		pressed, err := ResolvePredicate(spec.Pressed)
		if err != nil {
			return nil, fmt.Errorf("input: gesture %s pressed: %w", a.ID(), err)
		}
		triggered, err := ResolvePredicate(spec.Triggered)
		if err != nil {
			return nil, fmt.Errorf("input: gesture %s triggered: %w", a.ID(), err)
		}
		if err := t.Set(a, GestureRule{Pressed: pressed, Triggered: triggered}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DefaultGestureSpecs describes the pointer rules of the default control
// scheme.
//
// Swipes only drive Pressed. Request rules drive both Pressed and Triggered,
// so a request keeps triggering every frame it stays asserted.
func DefaultGestureSpecs() map[Action]GestureSpec {
	return map[Action]GestureSpec{
		MoveCharacterLeft:   {Pressed: "swipe_left"},
		MoveCharacterRight:  {Pressed: "swipe_right"},
		MoveCharacterUp:     {Pressed: "swipe_up"},
		MoveCharacterDown:   {Pressed: "swipe_down"},
		Ok:                  {Pressed: "interaction", Triggered: "interaction"},
		CharacterManagement: {Pressed: "inventory", Triggered: "inventory"},
		MainMenu:            {Pressed: "inventory", Triggered: "inventory"},
	}
}

func DefaultGestures() *GestureTable {
	t, err := GestureTableFromSpecs(DefaultGestureSpecs())
	if err != nil {
		panic(err)
	}
	return t
}
