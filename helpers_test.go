package touchgui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// recorder collects every emitted event.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) reset() { r.events = r.events[:0] }

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// logRecords is a slog.Handler keeping every record it receives.
type logRecords struct {
	records []slog.Record
}

func (h *logRecords) Enabled(context.Context, slog.Level) bool { return true }

func (h *logRecords) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *logRecords) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *logRecords) WithGroup(string) slog.Handler { return h }

// warnings counts Warn records whose attribute key has the given value.
func (h *logRecords) warnings(key, value string) int {
	n := 0
	for _, r := range h.records {
		if r.Level != slog.LevelWarn {
			continue
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == key && a.Value.String() == value {
				n++
				return false
			}
			return true
		})
	}
	return n
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type testKeys map[string]ebiten.Key

func (k testKeys) ResolveKey(action string) (ebiten.Key, bool) {
	key, ok := k[action]
	return key, ok
}

func allKeys() testKeys {
	return testKeys{
		"jump":         ebiten.KeySpace,
		"sneak":        ebiten.KeyShiftLeft,
		"zoom":         ebiten.KeyZ,
		"aux1":         ebiten.KeyE,
		"freemove":     ebiten.KeyK,
		"noclip":       ebiten.KeyH,
		"fastmove":     ebiten.KeyJ,
		"toggle_debug": ebiten.KeyF5,
		"camera_mode":  ebiten.KeyC,
		"rangeselect":  ebiten.KeyR,
		"minimap":      ebiten.KeyV,
		"toggle_chat":  ebiten.KeyF2,
		"chat":         ebiten.KeyT,
		"inventory":    ebiten.KeyI,
		"drop":         ebiten.KeyQ,
	}
}

type testGUI struct {
	*TouchGUI
	rec     *recorder
	clock   *fakeClock
	overlay *Overlay
}

// newTestGUI builds a 1280x720 GUI (button size 65) with every action bound.
func newTestGUI(t *testing.T, mutate func(*Config)) *testGUI {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &recorder{}
	clock := newFakeClock()
	overlay := NewOverlay()
	g := New(cfg, allKeys(), rec, overlay)
	g.SetNowFunc(clock.now)
	t.Cleanup(g.Close)
	return &testGUI{TouchGUI: g, rec: rec, clock: clock, overlay: overlay}
}

func (g *testGUI) down(id ebiten.TouchID, p Vec2) {
	g.HandleEvent(TouchEvent{ID: id, X: p.X, Y: p.Y, Phase: PhaseDown})
}

func (g *testGUI) move(id ebiten.TouchID, p Vec2) {
	g.HandleEvent(TouchEvent{ID: id, X: p.X, Y: p.Y, Phase: PhaseMove})
}

func (g *testGUI) up(id ebiten.TouchID, p Vec2) {
	g.HandleEvent(TouchEvent{ID: id, X: p.X, Y: p.Y, Phase: PhaseUp})
}

func (g *testGUI) panelCenter(t *testing.T, id ButtonID) Vec2 {
	t.Helper()
	r, ok := g.Panel().Rect(id)
	if !ok {
		t.Fatalf("panel has no %v", id)
	}
	return center(r)
}

func center(r Rect) Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

func keyEvent(down bool, key ebiten.Key) Event {
	if down {
		return Event{Type: EventKeyDown, Key: key}
	}
	return Event{Type: EventKeyUp, Key: key}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
