package input

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/common"
)

const sampleConfig = `
bindings:
  ok:
    keys: [Enter, E]
    gamepad: [A]
  back:
    keys: [Escape]
  move_character_left:
    gamepad: [left]
gestures:
  ok:
    pressed: interaction
    triggered: interaction
  move_character_left:
    pressed: "dx < -40"
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	ok, _ := cfg.Bindings.Binding(Ok)
	if !slices.Equal(ok.Keys, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyE}) {
		t.Fatalf("ok keys = %v", ok.Keys)
	}
	if !slices.Equal(ok.GamePad, []GamePadButton{GamePadA}) {
		t.Fatalf("ok gamepad = %v", ok.GamePad)
	}

	left, _ := cfg.Bindings.Binding(MoveCharacterLeft)
	if len(left.Keys) != 0 || !slices.Equal(left.GamePad, []GamePadButton{GamePadLeft}) {
		t.Fatalf("move_character_left = %+v", left)
	}

	menu, _ := cfg.Bindings.Binding(MainMenu)
	if len(menu.Keys) != 0 || len(menu.GamePad) != 0 {
		t.Fatalf("actions left out of the file must be unbound, got %+v", menu)
	}

	if cfg.Gestures == nil {
		t.Fatalf("expected a gesture table")
	}
	rule, _ := cfg.Gestures.Rule(MoveCharacterLeft)
	if rule.Pressed == nil || rule.Triggered != nil {
		t.Fatalf("unexpected rule for move_character_left: %+v", rule)
	}
	if rule.Pressed(PointerState{Movement: common.Vec2{X: -20}}) {
		t.Fatalf("scripted swipe fired below its threshold")
	}
	if !rule.Pressed(PointerState{Movement: common.Vec2{X: -50}}) {
		t.Fatalf("scripted swipe did not fire past its threshold")
	}
	if r, _ := cfg.Gestures.Rule(MainMenu); r.Pressed != nil {
		t.Fatalf("main_menu should have no gesture in this file")
	}
}

func TestParseConfigWithoutGestures(t *testing.T) {
	cfg, err := ParseConfig([]byte("bindings:\n  ok:\n    keys: [E]\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Gestures != nil {
		t.Fatalf("expected nil gestures when the section is absent")
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"unknown_action", "bindings:\n  jump:\n    keys: [Space]\n", ErrInvalidAction},
		{"unknown_control", "bindings:\n  ok:\n    gamepad: [Z]\n", ErrInvalidControl},
		{"unknown_gesture_action", "bindings: {}\ngestures:\n  fly:\n    pressed: interaction\n", ErrInvalidAction},
		{"unknown_key", "bindings:\n  ok:\n    keys: [NotAKey]\n", nil},
		{"missing_bindings", "gestures: {}\n", nil},
		{"bad_yaml", "bindings: [", nil},
		{"bad_script", "bindings: {}\ngestures:\n  ok:\n    pressed: \"dx <\"\n", nil},
		{"script_divides_by_zero", "bindings: {}\ngestures:\n  ok:\n    pressed: \"100 / x > 1\"\n", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(c.data))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestScriptFaultDuringQueryIsNotPressed(t *testing.T) {
	data := "bindings: {}\ngestures:\n  ok:\n    pressed: \"x > 0 && 100 / (x - 50) > 1\"\n"
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	m := NewManager(&fakeSampler{})
	m.InitializeWith(cfg.Bindings, cfg.Gestures)
	if err := m.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	m.SetPointerPosition(image.Pt(50, 0))
	if m.IsActionPressed(Ok) {
		t.Fatalf("ok pressed while its gesture faults")
	}
	m.SetPointerPosition(image.Pt(51, 0))
	if !m.IsActionPressed(Ok) {
		t.Fatalf("ok not pressed at x=51")
	}
}

func TestDefaultConfigSurvivesFile(t *testing.T) {
	data, err := MarshalConfig(DefaultBindings(), DefaultGestureSpecs())
	if err != nil {
		t.Fatalf("MarshalConfig: %v", err)
	}
	if !strings.HasPrefix(string(data), "bindings:\n    main_menu:") {
		t.Fatalf("expected actions in declaration order, got:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "bindings.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := DefaultBindings()
	for _, a := range Actions() {
		got, _ := cfg.Bindings.Binding(a)
		exp, _ := want.Binding(a)
		if !slices.Equal(got.Keys, exp.Keys) || !slices.Equal(got.GamePad, exp.GamePad) {
			t.Fatalf("%v: got %+v, want %+v", a, got, exp)
		}
		rule, _ := cfg.Gestures.Rule(a)
		_, hasSpec := DefaultGestureSpecs()[a]
		if (rule.Pressed != nil) != hasSpec {
			t.Fatalf("%v: gesture presence %v, want %v", a, rule.Pressed != nil, hasSpec)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestConfigApplyResetsManager(t *testing.T) {
	m, s := newTestManager(t)
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if err := cfg.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	step(t, m, s, GamePadState{}, ebiten.KeyEnter)
	if !m.IsActionPressed(Ok) {
		t.Fatalf("expected Enter to press Ok after reload")
	}

	m.SetPointerMovement(common.Vec2{X: -20})
	if m.IsActionPressed(MoveCharacterLeft) {
		t.Fatalf("reloaded gesture threshold not in effect")
	}
}
