package input

import "fmt"

// Action is a logical, device-independent game command.
type Action int

const (
	MainMenu Action = iota
	Ok
	Back
	CharacterManagement
	ExitGame
	TakeView
	DropUnEquip
	MoveCharacterUp
	MoveCharacterDown
	MoveCharacterLeft
	MoveCharacterRight
	CursorUp
	CursorDown
	DecreaseAmount
	IncreaseAmount
	PageLeft
	PageRight
	TargetUp
	TargetDown
	ActiveCharacterLeft
	ActiveCharacterRight

	// ActionCount is the number of actions. It is not an action.
	ActionCount
)

var actionNames = [ActionCount]string{
	"Main Menu",
	"Ok",
	"Back",
	"Character Management",
	"Exit Game",
	"Take / View",
	"Drop / Unequip",
	"Move Character - Up",
	"Move Character - Down",
	"Move Character - Left",
	"Move Character - Right",
	"Move Cursor - Up",
	"Move Cursor - Down",
	"Decrease Amount",
	"Increase Amount",
	"Page Screen Left",
	"Page Screen Right",
	"Select Target - Up",
	"Select Target - Down",
	"Select Active Character - Left",
	"Select Active Character - Right",
}

// actionIDs are the identifiers used for actions in binding files.
var actionIDs = [ActionCount]string{
	"main_menu",
	"ok",
	"back",
	"character_management",
	"exit_game",
	"take_view",
	"drop_unequip",
	"move_character_up",
	"move_character_down",
	"move_character_left",
	"move_character_right",
	"cursor_up",
	"cursor_down",
	"decrease_amount",
	"increase_amount",
	"page_left",
	"page_right",
	"target_up",
	"target_down",
	"active_character_left",
	"active_character_right",
}

// Valid reports whether a names one of the defined actions.
func (a Action) Valid() bool {
	return a >= 0 && a < ActionCount
}

// ActionName returns the readable name of the given action.
func ActionName(a Action) (string, error) {
	if !a.Valid() {
		return "", fmt.Errorf("input: action name %d: %w", int(a), ErrInvalidAction)
	}
	return actionNames[a], nil
}

// ID returns the binding file identifier of a, or "" when a is out of range.
func (a Action) ID() string {
	if !a.Valid() {
		return ""
	}
	return actionIDs[a]
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a binding file identifier such as "move_character_up".
func ParseAction(id string) (Action, error) {
	for i, s := range actionIDs {
		if s == id {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown action %q: %w", id, ErrInvalidAction)
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, ActionCount)
	for a := Action(0); a < ActionCount; a++ {
		out = append(out, a)
	}
	return out
}
