package touchgui

type hotbarRect struct {
	index int
	rect  Rect
}

// HotbarSelector hit-tests touches against hotbar slot rects registered by
// the host and keeps the last hit as a one-shot selection.
type HotbarSelector struct {
	rects     []hotbarRect
	selection int
	pending   bool
}

// Reset removes every registered slot. The pending selection is kept.
func (h *HotbarSelector) Reset() {
	h.rects = h.rects[:0]
}

// Register sets the rect of slot index. Re-registering a slot replaces its
// rect in place, so registration order is stable across layout updates.
func (h *HotbarSelector) Register(index int, r Rect) {
	for i := range h.rects {
		if h.rects[i].index == index {
			h.rects[i].rect = r
			return
		}
	}
	h.rects = append(h.rects, hotbarRect{index: index, rect: r})
}

// HitTest records the first registered slot containing pos as the pending
// selection. It reports whether a slot was hit.
func (h *HotbarSelector) HitTest(pos Vec2) bool {
	for _, hr := range h.rects {
		if hr.rect.Contains(pos.X, pos.Y) {
			h.selection = hr.index
			h.pending = true
			return true
		}
	}
	return false
}

// TakeSelection returns and clears the pending selection.
func (h *HotbarSelector) TakeSelection() (int, bool) {
	if !h.pending {
		return 0, false
	}
	h.pending = false
	return h.selection, true
}
