package touchgui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

type pointerState struct {
	down Vec2 // where the pointer touched the screen
	pos  Vec2 // last reported position
}

// PointerTracker maps each live pointer id to its down and current position.
// Ids are reused by the platform, so an id seen again on PhaseDown simply
// overwrites the previous record.
type PointerTracker struct {
	pointers map[ebiten.TouchID]*pointerState
}

// NewPointerTracker returns an empty tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{pointers: make(map[ebiten.TouchID]*pointerState)}
}

// Down records a new pointer, replacing any stale record for the same id.
func (t *PointerTracker) Down(id ebiten.TouchID, p Vec2) {
	t.pointers[id] = &pointerState{down: p, pos: p}
}

// Move updates the current position of a known pointer. Unknown ids are
// stale duplicates and are ignored; the return value reports whether the
// id was known.
func (t *PointerTracker) Move(id ebiten.TouchID, p Vec2) bool {
	ps, ok := t.pointers[id]
	if !ok {
		return false
	}
	ps.pos = p
	return true
}

// Up forgets a pointer. Unknown ids are ignored.
func (t *PointerTracker) Up(id ebiten.TouchID) bool {
	if _, ok := t.pointers[id]; !ok {
		return false
	}
	delete(t.pointers, id)
	return true
}

// Active reports whether id is a live pointer.
func (t *PointerTracker) Active(id ebiten.TouchID) bool {
	_, ok := t.pointers[id]
	return ok
}

// Position returns the last reported position of id.
func (t *PointerTracker) Position(id ebiten.TouchID) (Vec2, bool) {
	ps, ok := t.pointers[id]
	if !ok {
		return Vec2{}, false
	}
	return ps.pos, true
}

// DistanceSq returns the squared distance id has travelled from its origin.
func (t *PointerTracker) DistanceSq(id ebiten.TouchID) float64 {
	ps, ok := t.pointers[id]
	if !ok {
		return 0
	}
	return ps.pos.Sub(ps.down).LengthSq()
}

// Len returns the number of live pointers.
func (t *PointerTracker) Len() int {
	return len(t.pointers)
}

// IDs returns the live pointer ids in ascending order.
func (t *PointerTracker) IDs() []ebiten.TouchID {
	ids := make([]ebiten.TouchID, 0, len(t.pointers))
	for id := range t.pointers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
