package touchgui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseTouchID is the pointer id used for the emulated mouse touch.
const MouseTouchID ebiten.TouchID = -1

type touchSample struct {
	id  ebiten.TouchID
	pos Vec2
}

// TouchSource polls ebiten's touch state each frame and turns it into
// TouchEvents. ebiten reports the set of live touches rather than
// transitions, so the source diffs consecutive frames.
type TouchSource struct {
	// EmulateMouse feeds the left mouse button as an extra touch with id
	// MouseTouchID, for running on desktops.
	EmulateMouse bool

	prev    map[ebiten.TouchID]Vec2
	idBuf   []ebiten.TouchID
	samples []touchSample
	events  []TouchEvent
}

// NewTouchSource returns a source with no live touches.
func NewTouchSource() *TouchSource {
	return &TouchSource{prev: make(map[ebiten.TouchID]Vec2)}
}

// Poll reads the current touches and returns the events since the last
// call. The returned slice is reused by the next call.
func (s *TouchSource) Poll() []TouchEvent {
	s.idBuf = ebiten.AppendTouchIDs(s.idBuf[:0])
	s.samples = s.samples[:0]
	for _, id := range s.idBuf {
		x, y := ebiten.TouchPosition(id)
		s.samples = append(s.samples, touchSample{id: id, pos: Vec2{float64(x), float64(y)}})
	}
	if s.EmulateMouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.samples = append(s.samples, touchSample{id: MouseTouchID, pos: Vec2{float64(x), float64(y)}})
	}
	s.events = diffTouches(s.events[:0], s.prev, s.samples)
	return s.events
}

// Feed polls and dispatches every new event to g.
func (s *TouchSource) Feed(g *TouchGUI) {
	for _, ev := range s.Poll() {
		g.HandleEvent(ev)
	}
}

// diffTouches appends to dst the events that turn prev into cur and
// updates prev to match cur. Releases come first so a platform that reuses
// an id within one frame still produces up before down. Released touches
// are reported at their last known position.
func diffTouches(dst []TouchEvent, prev map[ebiten.TouchID]Vec2, cur []touchSample) []TouchEvent {
	var gone []ebiten.TouchID
	for id := range prev {
		if !slices.ContainsFunc(cur, func(s touchSample) bool { return s.id == id }) {
			gone = append(gone, id)
		}
	}
	slices.Sort(gone)
	for _, id := range gone {
		p := prev[id]
		dst = append(dst, TouchEvent{ID: id, X: p.X, Y: p.Y, Phase: PhaseUp})
		delete(prev, id)
	}

	for _, s := range cur {
		p, ok := prev[s.id]
		switch {
		case !ok:
			dst = append(dst, TouchEvent{ID: s.id, X: s.pos.X, Y: s.pos.Y, Phase: PhaseDown})
		case p != s.pos:
			dst = append(dst, TouchEvent{ID: s.id, X: s.pos.X, Y: s.pos.Y, Phase: PhaseMove})
		default:
			continue
		}
		prev[s.id] = s.pos
	}
	return dst
}
