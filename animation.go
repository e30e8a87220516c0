package touchgui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// rectTween slides a widget's rect from one position to another. Size is
// kept. Call update(dt) each frame until done.
type rectTween struct {
	tweens [2]*gween.Tween
	target *widgetHandle
	size   Vec2
	done   bool
}

func newRectTween(target *widgetHandle, from, to Rect, duration float32, fn ease.TweenFunc) *rectTween {
	t := &rectTween{target: target, size: Vec2{to.Width, to.Height}}
	t.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	target.setRect(Rect{X: from.X, Y: from.Y, Width: to.Width, Height: to.Height})
	return t
}

// update advances the tween by dt seconds and writes the rect. If the
// widget has been released, the tween stops immediately.
func (t *rectTween) update(dt float32) {
	if t.done {
		return
	}
	if t.target.w == nil {
		t.done = true
		return
	}
	x, fx := t.tweens[0].Update(dt)
	y, fy := t.tweens[1].Update(dt)
	t.target.setRect(Rect{X: float64(x), Y: float64(y), Width: t.size.X, Height: t.size.Y})
	t.done = fx && fy
}
