package input

import "errors"

var (
	// ErrNotInitialized is returned when the manager is used before Initialize.
	ErrNotInitialized = errors.New("input manager not initialized")
	// ErrInvalidAction is returned for action values outside [0, ActionCount).
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidControl is returned for gamepad controls outside [0, GamePadButtonCount).
	ErrInvalidControl = errors.New("invalid gamepad control")
)
