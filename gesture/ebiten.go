package gesture

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultLongPressTicks is how long a touch must be held still, in ticks,
// to count as a long press (half a second at 60 TPS).
const DefaultLongPressTicks = 30

// EbitenSource forwards ebiten mouse and touch input to a Tracker. Poll it
// once per tick from the game's Update, after the input manager's Update.
type EbitenSource struct {
	tracker        *Tracker
	longPressTicks int

	touchIDs    []ebiten.TouchID
	touch       ebiten.TouchID
	touchActive bool
	mouseActive bool
	cursor      image.Point
}

func NewEbitenSource(tracker *Tracker, longPressTicks int) *EbitenSource {
	if longPressTicks <= 0 {
		longPressTicks = DefaultLongPressTicks
	}
	return &EbitenSource{tracker: tracker, longPressTicks: longPressTicks}
}

func (s *EbitenSource) Poll() {
	if s.pollTouch() {
		return
	}
	s.pollMouse()
}

// pollTouch follows the first touch until it is released. It reports
// whether a touch owns the pointer this tick.
func (s *EbitenSource) pollTouch() bool {
	if s.mouseActive {
		return false
	}

	if !s.touchActive {
		s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
		if len(s.touchIDs) == 0 {
			return false
		}
		s.touch = s.touchIDs[0]
		s.touchActive = true
		s.tracker.Press(image.Pt(ebiten.TouchPosition(s.touch)), Primary)
		return true
	}

	if inpututil.IsTouchJustReleased(s.touch) {
		s.touchActive = false
		s.tracker.Release()
		return true
	}

	pos := image.Pt(ebiten.TouchPosition(s.touch))
	if pos != s.tracker.last {
		s.tracker.Move(pos)
	}
	if !s.tracker.Moved() && inpututil.TouchPressDuration(s.touch) >= s.longPressTicks {
		s.tracker.LongPress()
	}
	return true
}

func (s *EbitenSource) pollMouse() {
	pos := image.Pt(ebiten.CursorPosition())
	moved := pos != s.cursor
	s.cursor = pos

	if !s.mouseActive {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			s.mouseActive = true
			s.tracker.Press(pos, Primary)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			s.mouseActive = true
			s.tracker.Press(pos, Secondary)
		}
		return
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.mouseActive = false
		s.tracker.Release()
		return
	}
	if moved {
		s.tracker.Move(pos)
	}
}
