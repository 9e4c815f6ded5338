package input

import (
	"fmt"
	"strings"
)

// AnalogLimit is the value of an analog control that reads as a pressed button.
const AnalogLimit = 0.5

// GamePadButton is a gamepad control with button semantics. Sticks and
// triggers are folded in through AnalogLimit.
type GamePadButton int

const (
	GamePadStart GamePadButton = iota
	GamePadBack
	GamePadA
	GamePadB
	GamePadX
	GamePadY
	GamePadUp
	GamePadDown
	GamePadLeft
	GamePadRight
	GamePadLeftShoulder
	GamePadRightShoulder
	GamePadLeftTrigger
	GamePadRightTrigger

	GamePadButtonCount
)

// source reads one primitive of a control: a button, a D-pad direction,
// a stick axis past AnalogLimit or a trigger past AnalogLimit.
type source func(GamePadState) bool

type gamePadControl struct {
	name    string
	sources []source
}

func button(read func(Buttons) bool) []source {
	return []source{func(s GamePadState) bool { return read(s.Buttons) }}
}

// direction pairs a D-pad direction with the matching left-stick half.
// sign selects the half of the axis: +1 for right/up, -1 for left/down.
func direction(pad func(DPad) bool, axis func(GamePadState) float64, sign float64) []source {
	return []source{
		func(s GamePadState) bool { return pad(s.DPad) },
		func(s GamePadState) bool { return sign*axis(s) > AnalogLimit },
	}
}

func trigger(read func(GamePadState) float64) []source {
	return []source{func(s GamePadState) bool { return read(s) > AnalogLimit }}
}

func stickX(s GamePadState) float64 { return s.LeftStick.X }
func stickY(s GamePadState) float64 { return s.LeftStick.Y }

// gamePadControls is indexed by GamePadButton. A control is pressed when any
// of its sources is, and triggered when any single source went from released
// to pressed.
var gamePadControls = [GamePadButtonCount]gamePadControl{
	GamePadStart:         {"Start", button(func(b Buttons) bool { return b.Start })},
	GamePadBack:          {"Back", button(func(b Buttons) bool { return b.Back })},
	GamePadA:             {"A", button(func(b Buttons) bool { return b.A })},
	GamePadB:             {"B", button(func(b Buttons) bool { return b.B })},
	GamePadX:             {"X", button(func(b Buttons) bool { return b.X })},
	GamePadY:             {"Y", button(func(b Buttons) bool { return b.Y })},
	GamePadUp:            {"Up", direction(func(d DPad) bool { return d.Up }, stickY, 1)},
	GamePadDown:          {"Down", direction(func(d DPad) bool { return d.Down }, stickY, -1)},
	GamePadLeft:          {"Left", direction(func(d DPad) bool { return d.Left }, stickX, -1)},
	GamePadRight:         {"Right", direction(func(d DPad) bool { return d.Right }, stickX, 1)},
	GamePadLeftShoulder:  {"LeftShoulder", button(func(b Buttons) bool { return b.LeftShoulder })},
	GamePadRightShoulder: {"RightShoulder", button(func(b Buttons) bool { return b.RightShoulder })},
	GamePadLeftTrigger:   {"LeftTrigger", trigger(func(s GamePadState) float64 { return s.LeftTrigger })},
	GamePadRightTrigger:  {"RightTrigger", trigger(func(s GamePadState) float64 { return s.RightTrigger })},
}

func (b GamePadButton) Valid() bool {
	return b >= 0 && b < GamePadButtonCount
}

func (b GamePadButton) String() string {
	if !b.Valid() {
		return fmt.Sprintf("GamePadButton(%d)", int(b))
	}
	return gamePadControls[b].name
}

// ParseGamePadButton resolves a control name such as "A" or "LeftTrigger".
// Matching ignores case.
func ParseGamePadButton(name string) (GamePadButton, error) {
	for i, c := range gamePadControls {
		if strings.EqualFold(c.name, name) {
			return GamePadButton(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown gamepad control %q: %w", name, ErrInvalidControl)
}

func (b GamePadButton) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("input: marshal gamepad control %d: %w", int(b), ErrInvalidControl)
	}
	return []byte(gamePadControls[b].name), nil
}

func (b *GamePadButton) UnmarshalText(text []byte) error {
	v, err := ParseGamePadButton(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// pressedIn reports whether b reads as pressed in s. Out-of-range controls
// never read as pressed.
func (b GamePadButton) pressedIn(s GamePadState) bool {
	if !b.Valid() {
		return false
	}
	for _, src := range gamePadControls[b].sources {
		if src(s) {
			return true
		}
	}
	return false
}

func (b GamePadButton) triggeredIn(cur, prev GamePadState) bool {
	if !b.Valid() {
		return false
	}
	for _, src := range gamePadControls[b].sources {
		if src(cur) && !src(prev) {
			return true
		}
	}
	return false
}
