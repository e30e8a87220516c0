package touchgui

import (
	"fmt"
	"time"
)

// ContextControls turns tap classifications into simulated dig (left) and
// place (right) mouse clicks. Short taps press the mapped button for a
// fixed click duration; long taps hold it for as long as they last.
type ContextControls struct {
	clickDuration time.Duration

	lastMode    InteractionMode
	hasLastMode bool

	digPressed   bool
	digUntil     time.Time
	placePressed bool
	placeUntil   time.Time
}

// NewContextControls returns a mapper producing clicks of clickDuration.
func NewContextControls(clickDuration time.Duration) *ContextControls {
	return &ContextControls{clickDuration: clickDuration}
}

// DigPressed reports whether the dig button is simulated down.
func (c *ContextControls) DigPressed() bool { return c.digPressed }

// PlacePressed reports whether the place button is simulated down.
func (c *ContextControls) PlacePressed() bool { return c.placePressed }

// Apply runs one frame of the mapper. A ShortTap is consumed from tap once
// its click has been scheduled. emit is called for every press/release
// transition; a press and release of the same button never happen within
// one call.
func (c *ContextControls) Apply(tap *TapClassifier, mode InteractionMode, now time.Time, emit func(b MouseButton, down bool)) {
	if mode != ShortDigLongPlace && mode != LongDigShortPlace {
		panic(fmt.Sprintf("touchgui: unknown interaction mode %d", mode))
	}

	// Swapped meanings abort scheduled short-tap clicks, which would now do
	// something the player did not ask for. Long taps follow the new mapping.
	if c.hasLastMode && mode != c.lastMode {
		c.digUntil = time.Time{}
		c.placeUntil = time.Time{}
	}
	c.lastMode = mode
	c.hasLastMode = true

	var digTarget, placeTarget bool

	switch tap.State() {
	case TapShort:
		if mode == ShortDigLongPlace {
			c.digUntil = c.scheduleShort(tap, c.digPressed, now)
		} else {
			c.placeUntil = c.scheduleShort(tap, c.placePressed, now)
		}
	case TapLong:
		if mode == ShortDigLongPlace {
			placeTarget = true
		} else {
			digTarget = true
		}
	case TapNone:
	}

	digTarget = digTarget || now.Before(c.digUntil)
	placeTarget = placeTarget || now.Before(c.placeUntil)

	c.digPressed = c.transition(MouseButtonLeft, c.digPressed, digTarget, emit)
	c.placePressed = c.transition(MouseButtonRight, c.placePressed, placeTarget, emit)
}

// scheduleShort returns the new pressed-until time for a short tap. A
// released button is pressed for the click duration and the tap consumed.
// A button still down from an earlier tap is released this frame instead;
// the tap stays pending and presses again on a later frame.
func (c *ContextControls) scheduleShort(tap *TapClassifier, pressed bool, now time.Time) time.Time {
	if pressed {
		return time.Time{}
	}
	tap.Consume()
	return now.Add(c.clickDuration)
}

func (c *ContextControls) transition(b MouseButton, pressed, target bool, emit func(MouseButton, bool)) bool {
	if target == pressed {
		return pressed
	}
	if emit != nil {
		emit(b, target)
	}
	return target
}
