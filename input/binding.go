package input

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the set of physical controls that satisfy one action. Any one
// bound control suffices.
type Binding struct {
	Keys    []ebiten.Key
	GamePad []GamePadButton
}

func (b Binding) clone() Binding {
	return Binding{Keys: slices.Clone(b.Keys), GamePad: slices.Clone(b.GamePad)}
}

// BindingTable maps every action to its binding. A fresh table holds an
// empty binding for every action; Set replaces one entry while the table is
// being built. Once handed to a Manager the table is never written again.
type BindingTable struct {
	bindings [ActionCount]Binding
}

func NewBindingTable() *BindingTable {
	return &BindingTable{}
}

// Set replaces the binding of a.
func (t *BindingTable) Set(a Action, b Binding) error {
	if !a.Valid() {
		return fmt.Errorf("input: bind action %d: %w", int(a), ErrInvalidAction)
	}
	for _, c := range b.GamePad {
		if !c.Valid() {
			return fmt.Errorf("input: bind %s: control %d: %w", a.ID(), int(c), ErrInvalidControl)
		}
	}
	t.bindings[a] = b.clone()
	return nil
}

// Binding returns a copy of the binding of a.
func (t *BindingTable) Binding(a Action) (Binding, error) {
	if !a.Valid() {
		return Binding{}, fmt.Errorf("input: binding of action %d: %w", int(a), ErrInvalidAction)
	}
	return t.bindings[a].clone(), nil
}

// Clone returns a deep copy of t.
func (t *BindingTable) Clone() *BindingTable {
	out := &BindingTable{}
	for i, b := range t.bindings {
		out.bindings[i] = b.clone()
	}
	return out
}

func (t *BindingTable) mustSet(a Action, keys []ebiten.Key, pad ...GamePadButton) {
	if err := t.Set(a, Binding{Keys: keys, GamePad: pad}); err != nil {
		panic(err)
	}
}

// DefaultBindings returns the default keyboard and gamepad bindings.
func DefaultBindings() *BindingTable {
	t := NewBindingTable()
	k := func(keys ...ebiten.Key) []ebiten.Key { return keys }

	t.mustSet(MainMenu, k(ebiten.KeyTab), GamePadStart)
	t.mustSet(Ok, k(ebiten.KeyE), GamePadA)
	t.mustSet(Back, k(ebiten.KeyEscape), GamePadB)
	t.mustSet(CharacterManagement, k(ebiten.KeySpace), GamePadY)
	t.mustSet(ExitGame, k(ebiten.KeyEscape), GamePadBack)
	t.mustSet(TakeView, k(ebiten.KeyControlLeft), GamePadY)
	t.mustSet(DropUnEquip, k(ebiten.KeyD), GamePadX)
	t.mustSet(MoveCharacterUp, k(ebiten.KeyW), GamePadUp)
	t.mustSet(MoveCharacterDown, k(ebiten.KeyS), GamePadDown)
	t.mustSet(MoveCharacterLeft, k(ebiten.KeyA), GamePadLeft)
	t.mustSet(MoveCharacterRight, k(ebiten.KeyD), GamePadRight)
	t.mustSet(CursorUp, k(ebiten.KeyArrowUp), GamePadUp)
	t.mustSet(CursorDown, k(ebiten.KeyArrowDown), GamePadDown)
	t.mustSet(DecreaseAmount, k(ebiten.KeyArrowLeft), GamePadLeft)
	t.mustSet(IncreaseAmount, k(ebiten.KeyArrowRight), GamePadRight)
	t.mustSet(PageLeft, k(ebiten.KeyShiftLeft), GamePadLeftTrigger)
	t.mustSet(PageRight, k(ebiten.KeyShiftRight), GamePadRightTrigger)
	t.mustSet(TargetUp, k(ebiten.KeyArrowUp), GamePadUp)
	t.mustSet(TargetDown, k(ebiten.KeyArrowDown), GamePadDown)
	t.mustSet(ActiveCharacterLeft, k(ebiten.KeyArrowLeft), GamePadLeft)
	t.mustSet(ActiveCharacterRight, k(ebiten.KeyArrowRight), GamePadRight)

	return t
}
