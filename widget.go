package touchgui

// Widget is an opaque on-screen control owned by the touch GUI. The host
// renders it; the touch GUI only shows, hides, positions and re-skins it.
type Widget interface {
	SetVisible(visible bool)
	SetRect(r Rect)
	SetTexture(name string)
	// Release frees the host-side resources. Called exactly once.
	Release()
}

// WidgetFactory creates the widgets backing each control.
type WidgetFactory interface {
	NewWidget(id ButtonID, r Rect, texture string) Widget
}

type nopWidget struct{}

func (nopWidget) SetVisible(bool)   {}
func (nopWidget) SetRect(Rect)      {}
func (nopWidget) SetTexture(string) {}
func (nopWidget) Release()          {}

// widgetHandle is the single owning slot for one widget. The handle caches
// visibility and rect so the core never has to query the host.
type widgetHandle struct {
	w       Widget
	rect    Rect
	visible bool
}

func acquireWidget(f WidgetFactory, id ButtonID, r Rect, texture string, visible bool) *widgetHandle {
	var w Widget = nopWidget{}
	if f != nil {
		if created := f.NewWidget(id, r, texture); created != nil {
			w = created
		}
	}
	w.SetVisible(visible)
	return &widgetHandle{w: w, rect: r, visible: visible}
}

func (h *widgetHandle) setVisible(v bool) {
	if h.w == nil {
		return
	}
	h.visible = v
	h.w.SetVisible(v)
}

func (h *widgetHandle) setRect(r Rect) {
	if h.w == nil {
		return
	}
	h.rect = r
	h.w.SetRect(r)
}

func (h *widgetHandle) setTexture(name string) {
	if h.w == nil {
		return
	}
	h.w.SetTexture(name)
}

// release hands the widget back to the host. Further calls are no-ops.
func (h *widgetHandle) release() {
	if h.w == nil {
		return
	}
	h.w.SetVisible(false)
	h.w.Release()
	h.w = nil
	h.visible = false
}
