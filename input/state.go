package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/common"
)

// KeyboardState is the set of keys held down at one sample.
type KeyboardState struct {
	down [ebiten.KeyMax + 1]bool
}

// NewKeyboardState returns a keyboard state with the given keys held.
// Keys outside the ebiten key range are ignored.
func NewKeyboardState(keys ...ebiten.Key) KeyboardState {
	var s KeyboardState
	for _, k := range keys {
		if k >= 0 && k <= ebiten.KeyMax {
			s.down[k] = true
		}
	}
	return s
}

func (s KeyboardState) IsKeyDown(k ebiten.Key) bool {
	if k < 0 || k > ebiten.KeyMax {
		return false
	}
	return s.down[k]
}

// Keys returns the held keys in key order.
func (s KeyboardState) Keys() []ebiten.Key {
	var out []ebiten.Key
	for k, d := range s.down {
		if d {
			out = append(out, ebiten.Key(k))
		}
	}
	return out
}

// Buttons holds the discrete gamepad buttons.
type Buttons struct {
	Start, Back   bool
	A, B, X, Y    bool
	LeftShoulder  bool
	RightShoulder bool
}

// DPad holds the directional pad.
type DPad struct {
	Up, Down, Left, Right bool
}

// GamePadState is one sample of the first gamepad.
//
// LeftStick uses +Y up; both stick axes range over [-1, 1]. Triggers range
// over [0, 1]. A disconnected pad reports the zero value.
type GamePadState struct {
	Connected    bool
	Buttons      Buttons
	DPad         DPad
	LeftStick    common.Vec2
	LeftTrigger  float64
	RightTrigger float64
}

// MouseState is the raw platform cursor sample.
type MouseState struct {
	Position image.Point
}

// PointerState is the presentation-fed pointer/touch state.
type PointerState struct {
	Position image.Point
	Pressed  bool
	// Movement is in screen space (+Y down). Gesture inference may set a
	// quantized swipe here; Update replaces it with the raw mouse delta.
	Movement             common.Vec2
	InteractionRequested bool
	InventoryRequested   bool
}

// frame is a current/previous double buffer advanced once per Update.
type frame[T any] struct {
	cur, prev T
}

func (f *frame[T]) advance(next T) {
	f.prev = f.cur
	f.cur = next
}

// Sample is one read of the platform devices the core does not own.
type Sample struct {
	Keyboard KeyboardState
	GamePad  GamePadState
	Mouse    MouseState
}

// Sampler acquires device samples from the platform.
type Sampler interface {
	Sample() Sample
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() Sample

func (f SamplerFunc) Sample() Sample {
	return f()
}
