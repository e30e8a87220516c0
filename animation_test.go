package touchgui

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestRectTweenReachesTarget(t *testing.T) {
	o := NewOverlay()
	h := acquireWidget(o, ButtonChat, Rect{}, "chat_btn.png", true)
	w, _ := o.Widget(ButtonChat)

	tw := newRectTween(h, Rect{X: 10, Y: 20, Width: 5, Height: 5}, Rect{X: 100, Y: 200, Width: 40, Height: 40}, 1.0, ease.Linear)
	if w.Rect != (Rect{X: 10, Y: 20, Width: 40, Height: 40}) {
		t.Fatalf("tween starts at from with the target size, got %+v", w.Rect)
	}

	// Exact halves avoid float32 accumulation drift.
	tw.update(0.5)
	if math.Abs(w.Rect.X-55) > 0.5 || math.Abs(w.Rect.Y-110) > 0.5 {
		t.Errorf("halfway rect = %+v", w.Rect)
	}
	tw.update(0.5)
	if !tw.done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(w.Rect.X-100) > 0.5 || math.Abs(w.Rect.Y-200) > 0.5 {
		t.Errorf("final rect = %+v", w.Rect)
	}
}

func TestRectTweenStopsOnRelease(t *testing.T) {
	o := NewOverlay()
	h := acquireWidget(o, ButtonChat, Rect{}, "chat_btn.png", true)
	tw := newRectTween(h, Rect{}, Rect{X: 100, Width: 10, Height: 10}, 1.0, ease.Linear)

	h.release()
	tw.update(0.5)
	if !tw.done {
		t.Error("tween of a released widget stops")
	}
	if h.rect.X != 0 {
		t.Errorf("released widget must not move, X = %v", h.rect.X)
	}
}
