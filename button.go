package touchgui

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

type toggleState uint8

const (
	notToggleable toggleState = iota
	firstTexture
	secondTexture
)

// button is one key-sending control. A key-down is emitted when the holder
// set goes from empty to non-empty, a key-up on the reverse transition.
type button struct {
	id               ButtonID
	key              ebiten.Key
	bound            bool
	widget           *widgetHandle
	home             Rect // resting rect; bar members slide out to it
	holders          []ebiten.TouchID
	repeatCounter    float64 // -1 while released
	repeatDelay      float64
	immediateRelease bool
	toggle           toggleState
	textures         [2]string
}

func (b *button) held() bool {
	return len(b.holders) > 0
}

// swapTexture flips a toggle button between its two icons.
func (b *button) swapTexture() {
	switch b.toggle {
	case firstTexture:
		b.toggle = secondTexture
		b.widget.setTexture(b.textures[1])
	case secondTexture:
		b.toggle = firstTexture
		b.widget.setTexture(b.textures[0])
	}
}

func emitKey(recv Receiver, key ebiten.Key, down bool) {
	if recv == nil {
		return
	}
	t := EventKeyUp
	if down {
		t = EventKeyDown
	}
	recv.OnEvent(Event{Type: t, Key: key})
}

// ButtonSpec describes a button added to a ButtonPanel.
type ButtonSpec struct {
	ID   ButtonID
	Rect Rect
	Key  ebiten.Key
	// Bound is false when the action has no key; such a button stays
	// hidden and never reacts.
	Bound bool
	// ImmediateRelease turns every press into a full press+release pair.
	ImmediateRelease bool
	// RepeatDelay is the key-repeat interval in seconds while held.
	RepeatDelay float64
}

// ButtonPanel owns the fixed on-screen buttons: hit testing, holder sets,
// key dispatch and simulated key repeat.
type ButtonPanel struct {
	buttons []*button
	recv    Receiver
	widgets WidgetFactory
	visible bool
	log     logger

	// tapped remembers the immediate-release button each pointer already
	// fired, so moving over it does not fire again.
	tapped map[ebiten.TouchID]ButtonID
}

// NewButtonPanel creates an empty, visible panel emitting into recv.
func NewButtonPanel(recv Receiver, widgets WidgetFactory) *ButtonPanel {
	return &ButtonPanel{
		recv:    recv,
		widgets: widgets,
		visible: true,
		log:     newLogger(nil, "touchgui"),
		tapped:  make(map[ebiten.TouchID]ButtonID),
	}
}

// Add registers a button. Later buttons are on top of earlier ones.
func (p *ButtonPanel) Add(spec ButtonSpec) {
	if spec.RepeatDelay <= 0 {
		spec.RepeatDelay = defaultRepeatDelay
	}
	b := &button{
		id:               spec.ID,
		key:              spec.Key,
		bound:            spec.Bound,
		repeatCounter:    -1,
		repeatDelay:      spec.RepeatDelay,
		immediateRelease: spec.ImmediateRelease,
	}
	b.widget = acquireWidget(p.widgets, spec.ID, spec.Rect, spec.ID.Texture(), p.visible && spec.Bound)
	p.buttons = append(p.buttons, b)
}

func (p *ButtonPanel) lookup(id ButtonID) *button {
	for _, b := range p.buttons {
		if b.id == id {
			return b
		}
	}
	return nil
}

// Has reports whether a button with the given id was added.
func (p *ButtonPanel) Has(id ButtonID) bool {
	return p.lookup(id) != nil
}

// HitTest returns the topmost interactive button containing pos.
func (p *ButtonPanel) HitTest(pos Vec2) (ButtonID, bool) {
	if !p.visible {
		return 0, false
	}
	for i := len(p.buttons) - 1; i >= 0; i-- {
		b := p.buttons[i]
		if !b.bound || !b.widget.visible {
			continue
		}
		if b.widget.rect.Contains(pos.X, pos.Y) {
			return b.id, true
		}
	}
	return 0, false
}

// HolderOf returns the button pointer is currently holding down.
func (p *ButtonPanel) HolderOf(pointer ebiten.TouchID) (ButtonID, bool) {
	for _, b := range p.buttons {
		if slices.Contains(b.holders, pointer) {
			return b.id, true
		}
	}
	return 0, false
}

// Pressed reports whether the button's key is currently down.
func (p *ButtonPanel) Pressed(id ButtonID) bool {
	b := p.lookup(id)
	return b != nil && b.held()
}

// Holders returns how many pointers hold the button.
func (p *ButtonPanel) Holders(id ButtonID) int {
	b := p.lookup(id)
	if b == nil {
		return 0
	}
	return len(b.holders)
}

// Activate adds pointer to the button's holders. The first holder presses
// the key. Unbound buttons ignore the call.
func (p *ButtonPanel) Activate(id ButtonID, pointer ebiten.TouchID) {
	b := p.lookup(id)
	if b == nil || !b.bound {
		p.log.Debug("ignoring press of unbound button", "button", id.String())
		return
	}
	if slices.Contains(b.holders, pointer) {
		return
	}
	b.holders = append(b.holders, pointer)
	if len(b.holders) == 1 {
		b.repeatCounter = 0
		emitKey(p.recv, b.key, true)
	}
	if b.immediateRelease {
		p.Release(id, pointer)
		p.tapped[pointer] = id
	}
}

// Release removes pointer from the button's holders; the last holder
// releases the key. Releasing a pointer that does not hold the button means
// the caller routed events inconsistently and panics.
func (p *ButtonPanel) Release(id ButtonID, pointer ebiten.TouchID) {
	b := p.lookup(id)
	if b == nil {
		panic(fmt.Sprintf("touchgui: release of unknown button %v", id))
	}
	i := slices.Index(b.holders, pointer)
	if i < 0 {
		panic(fmt.Sprintf("touchgui: pointer %d released %v without holding it", pointer, id))
	}
	b.holders = slices.Delete(b.holders, i, i+1)
	if len(b.holders) > 0 {
		return
	}
	b.repeatCounter = -1
	emitKey(p.recv, b.key, false)
}

// HandleMove re-evaluates which button pointer is over. A held button the
// pointer slid off is released and the button now under it, if any, is
// pressed, so dragging a finger off a button never leaves a key stuck.
func (p *ButtonPanel) HandleMove(pointer ebiten.TouchID, pos Vec2) {
	current, hit := p.HitTest(pos)
	if held, ok := p.HolderOf(pointer); ok {
		if hit && current == held {
			return
		}
		p.Release(held, pointer)
		if hit {
			p.Activate(current, pointer)
		}
		return
	}
	if tapped, ok := p.tapped[pointer]; ok {
		if hit && current == tapped {
			return
		}
		delete(p.tapped, pointer)
	}
	if hit {
		p.Activate(current, pointer)
	}
}

// Forget drops what the panel remembers about a lifted pointer.
func (p *ButtonPanel) Forget(pointer ebiten.TouchID) {
	delete(p.tapped, pointer)
}

// Step advances key repeat: every held button re-sends key-up, key-down
// once per repeat delay, like an OS key repeat.
func (p *ButtonPanel) Step(dt float64) {
	for _, b := range p.buttons {
		if !b.held() {
			continue
		}
		b.repeatCounter += dt
		if b.repeatCounter < b.repeatDelay {
			continue
		}
		b.repeatCounter = 0
		emitKey(p.recv, b.key, false)
		emitKey(p.recv, b.key, true)
	}
}

// SetVisible shows or hides every bound button.
func (p *ButtonPanel) SetVisible(visible bool) {
	p.visible = visible
	for _, b := range p.buttons {
		b.widget.setVisible(visible && b.bound)
	}
}

// Rect returns the button's screen rectangle.
func (p *ButtonPanel) Rect(id ButtonID) (Rect, bool) {
	b := p.lookup(id)
	if b == nil {
		return Rect{}, false
	}
	return b.widget.rect, true
}

func (p *ButtonPanel) close() {
	for _, b := range p.buttons {
		b.widget.release()
	}
}
