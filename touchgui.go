package touchgui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for screen positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Line3 is a world-space segment. Used for the aiming ray, which starts at the
// camera and ends on the camera's far plane.
type Line3 struct {
	Start, End Vec3
}

// Rect is an axis-aligned rectangle in screen pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// rectFromCorners builds a Rect from its upper-left and lower-right corners.
func rectFromCorners(x0, y0, x1, y1 float64) Rect {
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Min returns the upper-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{r.X, r.Y}
}

// Max returns the lower-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{r.X + r.Width, r.Y + r.Height}
}

// Moved returns r translated so its upper-left corner is at p.
func (r Rect) Moved(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// --- Touch input ---

// Phase is the lifecycle stage of a raw touch event.
type Phase uint8

const (
	PhaseDown Phase = iota // a pointer touched the screen
	PhaseMove              // a live pointer moved
	PhaseUp                // a pointer left the screen
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// TouchEvent is one raw pointer event as delivered by the platform.
// Identifiers are reused by the platform once a pointer is lifted.
type TouchEvent struct {
	ID    ebiten.TouchID
	X, Y  float64
	Phase Phase
}

func (e TouchEvent) pos() Vec2 {
	return Vec2{e.X, e.Y}
}

// --- Output events ---

// EventType identifies a kind of synthetic input event.
type EventType uint8

const (
	EventKeyDown   EventType = iota // a bound key was pressed
	EventKeyUp                      // a bound key was released
	EventMouseDown                  // a simulated mouse button was pressed
	EventMouseUp                    // a simulated mouse button was released
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// MouseButton identifies a simulated mouse button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary button, used for digging
	MouseButtonRight                    // secondary button, used for placing
)

// Event is a synthetic keyboard or mouse event. Key is valid for key events,
// Button, X and Y for mouse events (X, Y hold the current aim position).
type Event struct {
	Type   EventType
	Key    ebiten.Key
	Button MouseButton
	X, Y   float64
}

// Receiver consumes synthetic input events. The host client implements it
// and feeds the events into its normal keyboard/mouse handling.
type Receiver interface {
	OnEvent(ev Event)
}

// ReceiverFunc adapts a plain function to the Receiver interface.
type ReceiverFunc func(ev Event)

// OnEvent calls f(ev).
func (f ReceiverFunc) OnEvent(ev Event) { f(ev) }

// KeyResolver translates a logical action name ("jump", "sneak", ...) into
// the key it is bound to. ok is false when the action is unbound.
type KeyResolver interface {
	ResolveKey(action string) (key ebiten.Key, ok bool)
}

// RayCaster resolves a screen point into a world-space aiming ray.
type RayCaster interface {
	RayFromScreen(p Vec2) Line3
}

// --- Tap and interaction modes ---

// TapState is the classification of the current move pointer gesture.
type TapState uint8

const (
	TapNone  TapState = iota // no gesture pending
	TapShort                 // pointer placed and released without moving
	TapLong                  // pointer held still past the long-tap duration
)

func (s TapState) String() string {
	switch s {
	case TapNone:
		return "none"
	case TapShort:
		return "short"
	case TapLong:
		return "long"
	default:
		return fmt.Sprintf("TapState(%d)", uint8(s))
	}
}

// InteractionMode selects which action a short tap and a long tap perform.
type InteractionMode uint8

const (
	ShortDigLongPlace InteractionMode = iota // short tap digs, long tap places
	LongDigShortPlace                        // long tap digs, short tap places
)

func (m InteractionMode) String() string {
	switch m {
	case ShortDigLongPlace:
		return "short-dig-long-place"
	case LongDigShortPlace:
		return "long-dig-short-place"
	default:
		return fmt.Sprintf("InteractionMode(%d)", uint8(m))
	}
}

// --- Geometry helpers ---

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
