package touchgui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// JoystickSpec configures a Joystick.
type JoystickSpec struct {
	Fixed      bool
	ButtonSize float64
	Threshold  float64 // dead zone radius in pixels
	Screen     Vec2    // screen width and height
}

// Joystick is the virtual movement stick. It is driven by a single owning
// pointer and reports a direction (radians, 0 = forward, clockwise) and a
// speed in [0, 1].
//
// In fixed mode the stick is anchored at a constant screen position and
// only claims touches within its circle. In free mode any touch on the left
// third of the screen claims it and the stick is centered where it landed.
type Joystick struct {
	fixed      bool
	buttonSize float64
	threshold  float64
	screen     Vec2

	owner       ebiten.TouchID
	hasOwner    bool
	reallyMoved bool
	origin      Vec2 // free-mode center

	direction float64
	speed     float64
	aux       bool

	off, bg, knob *widgetHandle
}

// NewJoystick creates an idle joystick with its three visuals: the idle
// "off" icon, the background ring and the knob.
func NewJoystick(spec JoystickSpec, widgets WidgetFactory) *Joystick {
	j := &Joystick{
		fixed:      spec.Fixed,
		buttonSize: spec.ButtonSize,
		threshold:  spec.Threshold,
		screen:     spec.Screen,
	}
	bs, h := spec.ButtonSize, spec.Screen.Y
	offRect := rectFromCorners(bs, h-bs*3, bs*3, h-bs)
	if spec.Fixed {
		offRect = rectFromCorners(bs, h-bs*4, bs*4, h-bs)
	}
	j.off = acquireWidget(widgets, ButtonJoystickOff, offRect, ButtonJoystickOff.Texture(), true)
	j.bg = acquireWidget(widgets, ButtonJoystickBg, rectFromCorners(bs, h-bs*4, bs*4, h-bs), ButtonJoystickBg.Texture(), false)
	j.knob = acquireWidget(widgets, ButtonJoystickCenter, Rect{Width: bs, Height: bs}, ButtonJoystickCenter.Texture(), false)
	return j
}

func (j *Joystick) halfSize() float64 {
	return j.buttonSize / 2
}

// fixedCenter is the anchor of the fixed joystick.
func (j *Joystick) fixedCenter() Vec2 {
	h := j.halfSize()
	return Vec2{h * 5, j.screen.Y - h*5}
}

// fixedRangeSq is the squared radius of the fixed joystick's circle.
func (j *Joystick) fixedRangeSq() float64 {
	r := j.halfSize() * 3
	return r * r
}

// InTriggerZone reports whether a new touch at pos would claim the stick.
func (j *Joystick) InTriggerZone(pos Vec2) bool {
	if j.fixed {
		return pos.Sub(j.fixedCenter()).LengthSq() <= j.fixedRangeSq()
	}
	return pos.X < j.screen.X/3
}

// Owner returns the pointer driving the stick.
func (j *Joystick) Owner() (ebiten.TouchID, bool) {
	return j.owner, j.hasOwner
}

// Direction returns the movement direction in radians.
func (j *Joystick) Direction() float64 { return j.direction }

// Speed returns the movement speed in [0, 1].
func (j *Joystick) Speed() float64 { return j.speed }

// Aux reports whether the stick is pushed into the outer aux zone.
func (j *Joystick) Aux() bool { return j.aux }

// Fixed reports whether the stick is anchored.
func (j *Joystick) Fixed() bool { return j.fixed }

// Claim makes pointer the owner if the stick is free. It returns false
// when another pointer already drives it.
func (j *Joystick) Claim(pointer ebiten.TouchID, pos Vec2) bool {
	if j.hasOwner {
		return false
	}
	j.owner = pointer
	j.hasOwner = true
	j.reallyMoved = false
	j.origin = pos

	h := j.halfSize()
	j.off.setVisible(false)
	j.bg.setVisible(true)
	j.knob.setVisible(true)
	if !j.fixed {
		j.bg.setRect(j.bg.rect.Moved(Vec2{pos.X - h*3, pos.Y - h*3}))
	}
	j.knob.setRect(j.knob.rect.Moved(Vec2{pos.X - h, pos.Y - h}))
	return true
}

// Move updates the stick from the owning pointer's new position. Moves of
// other pointers are ignored.
func (j *Joystick) Move(pointer ebiten.TouchID, pos Vec2) {
	if !j.hasOwner || pointer != j.owner {
		return
	}
	center := j.origin
	if j.fixed {
		center = j.fixedCenter()
	}
	dir := pos.Sub(center)
	distSq := dir.LengthSq()

	inside := j.fixed && pos.Sub(j.fixedCenter()).LengthSq() <= j.fixedRangeSq()
	if !j.reallyMoved && !inside && (j.fixed || distSq <= j.threshold*j.threshold) {
		return
	}
	j.reallyMoved = true

	j.direction = math.Atan2(dir.X, -dir.Y)

	dist := math.Sqrt(distSq)
	if dist <= j.threshold {
		j.speed = 0
	} else {
		j.speed = math.Min(dist/j.buttonSize, 1)
	}
	j.aux = dist > j.halfSize()*3

	h := j.halfSize()
	if dist > j.buttonSize {
		k := j.buttonSize / dist
		j.knob.setRect(j.knob.rect.Moved(Vec2{center.X + dir.X*k - h, center.Y + dir.Y*k - h}))
	} else {
		j.knob.setRect(j.knob.rect.Moved(Vec2{pos.X - h, pos.Y - h}))
	}
}

// Release frees the stick if pointer owns it, resetting direction, speed
// and aux and restoring the idle icon.
func (j *Joystick) Release(pointer ebiten.TouchID) bool {
	if !j.hasOwner || pointer != j.owner {
		return false
	}
	j.hasOwner = false
	j.direction = 0
	j.speed = 0
	j.aux = false

	j.off.setVisible(true)
	j.bg.setVisible(false)
	j.knob.setVisible(false)
	return true
}

// KnobRect returns the current knob rect.
func (j *Joystick) KnobRect() Rect { return j.knob.rect }

// setVisible toggles the idle icon. The ring and knob are only shown
// while the stick is held, and a hidden GUI never holds it.
func (j *Joystick) setVisible(visible bool) {
	j.off.setVisible(visible && !j.hasOwner)
}

func (j *Joystick) close() {
	j.off.release()
	j.bg.release()
	j.knob.release()
}
