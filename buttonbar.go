package touchgui

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// BarDirection is the direction in which bar members are laid out from the
// starter icon.
type BarDirection uint8

const (
	BarTopToBottom BarDirection = iota
	BarBottomToTop
	BarLeftToRight
	BarRightToLeft
)

// barButtonRect returns the rect of the index-th member of a bar whose
// starter occupies starter. Members are one button size apart plus a
// quarter-size gap, and the first is a quarter size away from the starter.
func barButtonRect(dir BarDirection, starter Rect, index int) Rect {
	switch dir {
	case BarLeftToRight, BarRightToLeft:
		size := starter.Height
		offset := size*1.25*float64(index) + size*0.25
		if dir == BarLeftToRight {
			x := starter.X + starter.Width + offset
			return Rect{X: x, Y: starter.Y, Width: size, Height: starter.Height}
		}
		end := starter.X - offset
		return Rect{X: end - size, Y: starter.Y, Width: size, Height: starter.Height}
	case BarTopToBottom, BarBottomToTop:
		size := starter.Width
		offset := size*1.25*float64(index) + size*0.25
		if dir == BarTopToBottom {
			y := starter.Y + starter.Height + offset
			return Rect{X: starter.X, Y: y, Width: starter.Width, Height: size}
		}
		end := starter.Y - offset
		return Rect{X: starter.X, Y: end - size, Width: starter.Width, Height: size}
	}
	panic(fmt.Sprintf("touchgui: unknown bar direction %d", dir))
}

// BarSpec configures a ButtonBar.
type BarSpec struct {
	Starter   ButtonID
	Rect      Rect // starter icon rect
	Direction BarDirection
	// Timeout is the idle time in seconds after which the bar collapses.
	Timeout float64
	// ExpandDuration is the slide-out animation length in seconds; zero
	// places members immediately.
	ExpandDuration float64
}

// ButtonBar is a collapsible group of buttons behind a starter icon.
// Collapsed, only the starter is shown and hit-testable; touching it
// expands the bar. Expanded, each member sends a key press+release when
// touched. The bar collapses after Timeout seconds without interaction.
// Hidden bars draw nothing regardless of their expanded state.
type ButtonBar struct {
	starter *button
	members []*button
	dir     BarDirection

	active  bool
	visible bool
	idle    float64
	timeout float64
	expand  float64

	// pointers that touched the starter or a member and are still down
	claimed []ebiten.TouchID
	tweens  []*rectTween

	recv    Receiver
	widgets WidgetFactory
}

// NewButtonBar creates a collapsed, visible bar.
func NewButtonBar(spec BarSpec, recv Receiver, widgets WidgetFactory) *ButtonBar {
	starter := &button{
		id:               spec.Starter,
		repeatCounter:    -1,
		immediateRelease: true,
		home:             spec.Rect,
	}
	starter.widget = acquireWidget(widgets, spec.Starter, spec.Rect, spec.Starter.Texture(), true)
	return &ButtonBar{
		starter: starter,
		dir:     spec.Direction,
		visible: true,
		timeout: spec.Timeout,
		expand:  spec.ExpandDuration,
		recv:    recv,
		widgets: widgets,
	}
}

// AddButton appends a member sending key.
func (b *ButtonBar) AddButton(id ButtonID, key ebiten.Key) {
	b.addButton(id, key, id.Texture())
}

// AddToggleButton appends a member that alternates between two icons on
// each press. The key sent is the same either way.
func (b *ButtonBar) AddToggleButton(id ButtonID, key ebiten.Key, texture1, texture2 string) {
	m := b.addButton(id, key, texture1)
	m.toggle = firstTexture
	m.textures = [2]string{texture1, texture2}
}

func (b *ButtonBar) addButton(id ButtonID, key ebiten.Key, texture string) *button {
	home := barButtonRect(b.dir, b.starter.home, len(b.members))
	m := &button{
		id:               id,
		key:              key,
		bound:            true,
		repeatCounter:    -1,
		immediateRelease: true,
		home:             home,
	}
	m.widget = acquireWidget(b.widgets, id, home, texture, b.active && b.visible)
	b.members = append(b.members, m)
	return m
}

// Active reports whether the bar is expanded.
func (b *ButtonBar) Active() bool { return b.active }

// Visible reports whether the bar is shown at all.
func (b *ButtonBar) Visible() bool { return b.visible }

// Members returns the member ids in layout order.
func (b *ButtonBar) Members() []ButtonID {
	ids := make([]ButtonID, len(b.members))
	for i, m := range b.members {
		ids[i] = m.id
	}
	return ids
}

// MemberRect returns the resting rect of a member.
func (b *ButtonBar) MemberRect(id ButtonID) (Rect, bool) {
	for _, m := range b.members {
		if m.id == id {
			return m.home, true
		}
	}
	return Rect{}, false
}

// StarterRect returns the starter icon rect.
func (b *ButtonBar) StarterRect() Rect { return b.starter.home }

// HandleDown hit-tests a new pointer against the bar. It returns true when
// the bar claims the pointer: the starter expands a collapsed bar, a member
// of an expanded bar sends its key.
func (b *ButtonBar) HandleDown(pointer ebiten.TouchID, pos Vec2) bool {
	if !b.visible {
		return false
	}
	if b.active {
		for _, m := range b.members {
			if !m.home.Contains(pos.X, pos.Y) {
				continue
			}
			emitKey(b.recv, m.key, true)
			emitKey(b.recv, m.key, false)
			m.swapTexture()
			b.idle = 0
			b.claim(pointer)
			return true
		}
		return false
	}
	if !b.starter.home.Contains(pos.X, pos.Y) {
		return false
	}
	b.claim(pointer)
	b.activate()
	return true
}

func (b *ButtonBar) claim(pointer ebiten.TouchID) {
	if !slices.Contains(b.claimed, pointer) {
		b.claimed = append(b.claimed, pointer)
	}
}

// ReleasePointer forgets a pointer the bar claimed. It reports whether the
// pointer belonged to the bar.
func (b *ButtonBar) ReleasePointer(pointer ebiten.TouchID) bool {
	i := slices.Index(b.claimed, pointer)
	if i < 0 {
		return false
	}
	b.claimed = slices.Delete(b.claimed, i, i+1)
	return true
}

func (b *ButtonBar) activate() {
	b.starter.widget.setVisible(false)
	b.active = true
	b.idle = 0
	b.tweens = b.tweens[:0]
	for _, m := range b.members {
		m.widget.setVisible(true)
		if b.expand > 0 {
			b.tweens = append(b.tweens, newRectTween(m.widget, b.starter.home, m.home, float32(b.expand), ease.OutQuad))
		} else {
			m.widget.setRect(m.home)
		}
	}
}

// Step advances the idle timer and the slide-out animation. The timer does
// not run while a pointer is still held on the bar.
func (b *ButtonBar) Step(dt float64) {
	for _, t := range b.tweens {
		t.update(float32(dt))
	}
	b.tweens = slices.DeleteFunc(b.tweens, func(t *rectTween) bool { return t.done })

	if !b.active {
		return
	}
	if len(b.claimed) > 0 {
		b.idle = 0
		return
	}
	b.idle += dt
	if b.idle > b.timeout {
		b.Deactivate()
	}
}

// Deactivate collapses the bar immediately.
func (b *ButtonBar) Deactivate() {
	if b.visible {
		b.starter.widget.setVisible(true)
	}
	b.active = false
	b.tweens = b.tweens[:0]
	for _, m := range b.members {
		m.widget.setVisible(false)
		m.widget.setRect(m.home)
	}
}

// Hide hides the whole bar.
func (b *ButtonBar) Hide() {
	b.visible = false
	b.starter.widget.setVisible(false)
	for _, m := range b.members {
		m.widget.setVisible(false)
	}
}

// Show makes the bar visible again in whatever state it was in.
func (b *ButtonBar) Show() {
	b.visible = true
	if b.active {
		for _, m := range b.members {
			m.widget.setVisible(true)
		}
		return
	}
	b.starter.widget.setVisible(true)
}

func (b *ButtonBar) close() {
	b.starter.widget.release()
	for _, m := range b.members {
		m.widget.release()
	}
	b.tweens = nil
}
