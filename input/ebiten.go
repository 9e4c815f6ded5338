package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/actionmap/common"
)

// EbitenSampler reads the keyboard, the first gamepad and the cursor from
// ebiten. It must be used from the game's Update goroutine.
type EbitenSampler struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
}

func NewEbitenSampler() *EbitenSampler {
	return &EbitenSampler{}
}

func (s *EbitenSampler) Sample() Sample {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])

	mx, my := ebiten.CursorPosition()
	return Sample{
		Keyboard: NewKeyboardState(s.keys...),
		GamePad:  s.sampleGamePad(),
		Mouse:    MouseState{Position: image.Pt(mx, my)},
	}
}

func (s *EbitenSampler) sampleGamePad() GamePadState {
	if len(s.gamepads) == 0 {
		return GamePadState{}
	}

	id := s.gamepads[0]
	st := GamePadState{Connected: true}
	// Pads without the standard layout stay connected but neutral.
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return st
	}

	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}

	st.Buttons = Buttons{
		Start:         pressed(ebiten.StandardGamepadButtonCenterRight),
		Back:          pressed(ebiten.StandardGamepadButtonCenterLeft),
		A:             pressed(ebiten.StandardGamepadButtonRightBottom),
		B:             pressed(ebiten.StandardGamepadButtonRightRight),
		X:             pressed(ebiten.StandardGamepadButtonRightLeft),
		Y:             pressed(ebiten.StandardGamepadButtonRightTop),
		LeftShoulder:  pressed(ebiten.StandardGamepadButtonFrontTopLeft),
		RightShoulder: pressed(ebiten.StandardGamepadButtonFrontTopRight),
	}
	st.DPad = DPad{
		Up:    pressed(ebiten.StandardGamepadButtonLeftTop),
		Down:  pressed(ebiten.StandardGamepadButtonLeftBottom),
		Left:  pressed(ebiten.StandardGamepadButtonLeftLeft),
		Right: pressed(ebiten.StandardGamepadButtonLeftRight),
	}
	// ebiten reports the vertical axis with +Y down.
	st.LeftStick = common.Vec2{
		X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		Y: -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	}
	st.LeftTrigger = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	st.RightTrigger = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	return st
}
