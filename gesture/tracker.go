// Package gesture turns raw pointer and touch events into the pointer state
// the input manager resolves: press requests and quantized swipes.
package gesture

import (
	"image"
	"log"

	"github.com/milk9111/actionmap/common"
	"github.com/milk9111/actionmap/input"
)

// SwipeMagnitude is the length of the vector reported for any swipe.
// Direction, not distance, drives movement.
const SwipeMagnitude = 20

// Sink receives pointer state. *input.Manager implements it.
type Sink interface {
	SetPointerPosition(image.Point)
	SetPointerPressed(bool)
	SetInteractionRequested(bool)
	SetInventoryRequested(bool)
	SetPointerMovement(common.Vec2)
}

var _ Sink = (*input.Manager)(nil)

type PressKind int

const (
	// Primary is a left click or a tap. It requests interaction.
	Primary PressKind = iota
	// Secondary is a right click. It requests the inventory.
	Secondary
)

func (k PressKind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Tracker follows one pointer from press to release.
type Tracker struct {
	sink  Sink
	debug bool

	pressed   bool
	last      image.Point
	moved     bool
	longFired bool
}

func NewTracker(sink Sink, debug bool) *Tracker {
	return &Tracker{sink: sink, debug: debug}
}

func (t *Tracker) Pressed() bool {
	return t.pressed
}

// Moved reports whether the current press has produced a swipe.
func (t *Tracker) Moved() bool {
	return t.moved
}

func (t *Tracker) Press(pos image.Point, kind PressKind) {
	t.pressed = true
	t.last = pos
	t.moved = false
	t.longFired = false

	t.sink.SetPointerPosition(pos)
	t.sink.SetPointerPressed(true)
	if kind == Secondary {
		t.sink.SetInventoryRequested(true)
	} else {
		t.sink.SetInteractionRequested(true)
	}
	if t.debug {
		log.Printf("gesture: %s press at %v", kind, pos)
	}
}

// LongPress asserts an inventory request once per press.
func (t *Tracker) LongPress() {
	if !t.pressed || t.longFired {
		return
	}
	t.longFired = true
	t.sink.SetInventoryRequested(true)
	if t.debug {
		log.Printf("gesture: long press at %v", t.last)
	}
}

// Move reports a pointer move. Moves while released are ignored.
func (t *Tracker) Move(pos image.Point) {
	if !t.pressed {
		return
	}
	t.sink.SetPointerPosition(pos)

	delta := pos.Sub(t.last)
	swipe := Quantize(delta)
	t.sink.SetPointerMovement(swipe)
	if !swipe.IsZero() {
		t.moved = true
		if t.debug {
			log.Printf("gesture: swipe delta=%v movement=(%.0f,%.0f)", delta, swipe.X, swipe.Y)
		}
	}
	t.last = pos
}

// Release ends the press and withdraws both requests.
func (t *Tracker) Release() {
	if !t.pressed {
		return
	}
	t.pressed = false
	t.sink.SetPointerPressed(false)
	t.sink.SetInteractionRequested(false)
	t.sink.SetInventoryRequested(false)
}

// Quantize maps a move delta to a swipe. Deltas within
// input.SwipeThreshold on both axes are no movement; otherwise the larger
// axis wins (vertical on a tie) and the result is SwipeMagnitude along it.
func Quantize(d image.Point) common.Vec2 {
	ax, ay := common.Abs(d.X), common.Abs(d.Y)
	if ax <= input.SwipeThreshold && ay <= input.SwipeThreshold {
		return common.Vec2{}
	}
	if ax > ay {
		if d.X > 0 {
			return common.Vec2{X: SwipeMagnitude}
		}
		return common.Vec2{X: -SwipeMagnitude}
	}
	if d.Y > 0 {
		return common.Vec2{Y: SwipeMagnitude}
	}
	return common.Vec2{Y: -SwipeMagnitude}
}
