package touchgui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// nextTapState is the whole tap state machine. held is how long the move
// pointer has been down, moved whether it left the drag threshold, alive
// whether it is still down. It is evaluated every frame while the pointer
// is down and once more when it is lifted.
//
// A pending ShortTap survives a new press so fast successive taps are not
// dropped; it only leaves ShortTap when consumed.
func nextTapState(cur TapState, held, longTap time.Duration, moved, alive bool) TapState {
	if !alive {
		if !moved && cur != TapLong {
			return TapShort
		}
		return TapNone
	}
	if !moved && cur == TapNone && held > longTap {
		return TapLong
	}
	return cur
}

// TapClassifier tracks the move pointer (the touch not claimed by any
// control) and classifies it as a short tap or a long tap.
type TapClassifier struct {
	state     TapState
	threshold float64
	longTap   time.Duration

	active  bool
	pointer ebiten.TouchID
	downAt time.Time
	pos    Vec2 // stays valid after release
	moved  bool
}

// NewTapClassifier returns a classifier with the given drag threshold in
// pixels and long-tap duration.
func NewTapClassifier(threshold float64, longTap time.Duration) *TapClassifier {
	return &TapClassifier{threshold: threshold, longTap: longTap}
}

// State returns the current classification.
func (c *TapClassifier) State() TapState { return c.state }

// Consume resets a classification once it has been acted upon.
func (c *TapClassifier) Consume() { c.state = TapNone }

// Pointer returns the current move pointer.
func (c *TapClassifier) Pointer() (ebiten.TouchID, bool) {
	return c.pointer, c.active
}

// Position returns the last position of the move pointer. It stays valid
// after the pointer is lifted so late mouse events still carry an aim.
func (c *TapClassifier) Position() Vec2 { return c.pos }

// Moved reports whether the current move pointer left the drag threshold.
func (c *TapClassifier) Moved() bool { return c.moved }

// Begin makes pointer the move pointer unless one is already active.
func (c *TapClassifier) Begin(pointer ebiten.TouchID, pos Vec2, now time.Time) bool {
	if c.active {
		return false
	}
	c.active = true
	c.pointer = pointer
	c.downAt = now
	c.pos = pos
	c.moved = false
	return true
}

// Move updates the move pointer and returns its offset from the previous
// position. travelledSq is the squared distance from where the pointer
// went down, as kept by the PointerTracker. ok is false for any other
// pointer.
func (c *TapClassifier) Move(pointer ebiten.TouchID, pos Vec2, travelledSq float64) (delta Vec2, ok bool) {
	if !c.active || pointer != c.pointer {
		return Vec2{}, false
	}
	delta = pos.Sub(c.pos)
	c.pos = pos
	if travelledSq > c.threshold*c.threshold {
		c.moved = true
	}
	return delta, true
}

// End lifts the move pointer and classifies the gesture.
func (c *TapClassifier) End(pointer ebiten.TouchID, now time.Time) bool {
	if !c.active || pointer != c.pointer {
		return false
	}
	c.active = false
	c.state = nextTapState(c.state, now.Sub(c.downAt), c.longTap, c.moved, false)
	return true
}

// Step promotes a still, held pointer to a long tap.
func (c *TapClassifier) Step(now time.Time) {
	if !c.active {
		return
	}
	c.state = nextTapState(c.state, now.Sub(c.downAt), c.longTap, c.moved, true)
}
