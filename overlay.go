package touchgui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OverlayWidget is a widget drawn by an Overlay.
type OverlayWidget struct {
	ID      ButtonID
	Rect    Rect
	Texture string
	Visible bool

	released bool
	overlay  *Overlay
}

func (w *OverlayWidget) SetVisible(visible bool) { w.Visible = visible }
func (w *OverlayWidget) SetRect(r Rect)          { w.Rect = r }
func (w *OverlayWidget) SetTexture(name string)  { w.Texture = name }

// Release removes the widget from its overlay.
func (w *OverlayWidget) Release() {
	if w.released {
		return
	}
	w.released = true
	w.overlay.remove(w)
}

// Overlay is a WidgetFactory that draws every control as a translucent box
// labelled with its texture name. Games without button art, and the touch
// demo, use it as the renderer.
type Overlay struct {
	widgets []*OverlayWidget

	Fill    color.Color
	Outline color.Color
	// Labels turns the texture names on.
	Labels bool
}

// NewOverlay returns an overlay with the default palette.
func NewOverlay() *Overlay {
	return &Overlay{
		Fill:    color.RGBA{R: 255, G: 255, B: 255, A: 48},
		Outline: color.RGBA{R: 255, G: 255, B: 255, A: 160},
		Labels:  true,
	}
}

// NewWidget implements WidgetFactory.
func (o *Overlay) NewWidget(id ButtonID, r Rect, texture string) Widget {
	w := &OverlayWidget{ID: id, Rect: r, Texture: texture, overlay: o}
	o.widgets = append(o.widgets, w)
	return w
}

func (o *Overlay) remove(w *OverlayWidget) {
	for i, x := range o.widgets {
		if x == w {
			o.widgets = append(o.widgets[:i], o.widgets[i+1:]...)
			return
		}
	}
}

// Widgets returns the live widgets in creation order.
func (o *Overlay) Widgets() []*OverlayWidget {
	return o.widgets
}

// Widget returns the live widget of a control.
func (o *Overlay) Widget(id ButtonID) (*OverlayWidget, bool) {
	for _, w := range o.widgets {
		if w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// Draw renders every visible widget onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, w := range o.widgets {
		if !w.Visible {
			continue
		}
		x, y := float32(w.Rect.X), float32(w.Rect.Y)
		ww, hh := float32(w.Rect.Width), float32(w.Rect.Height)
		vector.FillRect(screen, x, y, ww, hh, o.Fill, false)
		vector.FillRect(screen, x, y, ww, 1, o.Outline, false)
		vector.FillRect(screen, x, y+hh-1, ww, 1, o.Outline, false)
		vector.FillRect(screen, x, y, 1, hh, o.Outline, false)
		vector.FillRect(screen, x+ww-1, y, 1, hh, o.Outline, false)
		if o.Labels {
			ebitenutil.DebugPrintAt(screen, label(w.Texture), int(x)+4, int(y)+4)
		}
	}
}

// label strips the image extension and the _btn suffix.
func label(texture string) string {
	s := strings.TrimSuffix(texture, ".png")
	return strings.TrimSuffix(s, "_btn")
}
