package touchgui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchGUI turns raw touch events into the keyboard and mouse input a
// first-person client expects. Feed it events with HandleEvent, call Step
// once per frame, then read the movement, look and hotbar accessors and
// call ApplyContextControls.
//
// A TouchGUI is not safe for concurrent use; drive it from the game loop.
type TouchGUI struct {
	cfg        Config
	buttonSize float64
	keys       KeyResolver
	recv       Receiver
	rays       RayCaster
	now        func() time.Time
	log        logger

	pointers    *PointerTracker
	panel       *ButtonPanel
	settingsBar *ButtonBar
	rareBar     *ButtonBar
	joystick    *Joystick
	hotbar      HotbarSelector
	tap         *TapClassifier
	controls    *ContextControls

	aux1Key   ebiten.Key
	aux1Bound bool

	visible bool
	closed  bool

	// degrees, drained by YawChange / PitchChange
	yaw   float64
	pitch float64

	shootline Line3

	injectQueue []TouchEvent
	testRunner  *TestRunner
}

// New builds the touch GUI and all of its controls. keys resolves the
// bindings of every button once; unbound buttons stay hidden. recv receives
// the synthetic input. widgets may be nil for a headless GUI.
func New(cfg Config, keys KeyResolver, recv Receiver, widgets WidgetFactory) *TouchGUI {
	cfg = cfg.withDefaults()
	g := &TouchGUI{
		cfg:        cfg,
		buttonSize: cfg.ButtonSize(),
		keys:       keys,
		recv:       recv,
		now:        time.Now,
		log:        newLogger(cfg.Logger, "touchgui"),
		pointers:   NewPointerTracker(),
		tap:        NewTapClassifier(cfg.Threshold, cfg.LongTapDuration),
		controls:   NewContextControls(cfg.ClickDuration),
		visible:    true,
	}

	bs := g.buttonSize
	w, h := cfg.ScreenWidth, cfg.ScreenHeight

	g.joystick = NewJoystick(JoystickSpec{
		Fixed:      cfg.FixedJoystick,
		ButtonSize: bs,
		Threshold:  cfg.Threshold,
		Screen:     Vec2{w, h},
	}, widgets)

	g.panel = NewButtonPanel(recv, widgets)
	g.panel.log = g.log
	g.addPanelButton(ButtonJump, rectFromCorners(w-1.75*bs, h-bs, w-0.25*bs, h))
	g.addPanelButton(ButtonSneak, rectFromCorners(w-3.25*bs, h-bs, w-1.75*bs, h))
	g.addPanelButton(ButtonZoom, rectFromCorners(w-1.25*bs, h-4*bs, w-0.25*bs, h-3*bs))
	if cfg.JoystickTriggersAux1 {
		g.aux1Key, g.aux1Bound = g.resolve(ButtonAux1)
	} else {
		g.addPanelButton(ButtonAux1, rectFromCorners(w-1.25*bs, h-2.5*bs, w-0.25*bs, h-1.5*bs))
	}

	g.settingsBar = NewButtonBar(BarSpec{
		Starter: ButtonSettingsStarter,
		Rect: rectFromCorners(
			w-1.25*bs, h-(settingsBarYOffset+1)*bs+0.5*bs,
			w-0.25*bs, h-settingsBarYOffset*bs+0.5*bs),
		Direction:      BarRightToLeft,
		Timeout:        cfg.SettingsBarTimeout,
		ExpandDuration: cfg.BarExpandDuration,
	}, recv, widgets)
	for _, id := range []ButtonID{ButtonFly, ButtonNoclip, ButtonFast, ButtonDebug, ButtonCamera, ButtonRange, ButtonMinimap} {
		if key, ok := g.resolve(id); ok {
			g.settingsBar.AddButton(id, key)
		}
	}
	// Chat is shown by default, so the "hide" icon comes first.
	if key, ok := g.resolve(ButtonToggleChat); ok {
		g.settingsBar.AddToggleButton(ButtonToggleChat, key, "chat_hide_btn.png", "chat_show_btn.png")
	}

	g.rareBar = NewButtonBar(BarSpec{
		Starter: ButtonRareControlsStarter,
		Rect: rectFromCorners(
			0.25*bs, h-(rareControlsBarYOffset+1)*bs+0.5*bs,
			0.75*bs, h-rareControlsBarYOffset*bs+0.5*bs),
		Direction:      BarLeftToRight,
		Timeout:        cfg.RareControlsTimeout,
		ExpandDuration: cfg.BarExpandDuration,
	}, recv, widgets)
	for _, id := range []ButtonID{ButtonChat, ButtonInventory, ButtonDrop, ButtonExit} {
		if key, ok := g.resolve(id); ok {
			g.rareBar.AddButton(id, key)
		}
	}

	return g
}

// resolve looks up the key of a button. The exit button is not part of
// the keymap and always sends Escape.
func (g *TouchGUI) resolve(id ButtonID) (ebiten.Key, bool) {
	if id == ButtonExit {
		return ebiten.KeyEscape, true
	}
	action := id.Action()
	if g.keys != nil && action != "" {
		if key, ok := g.keys.ResolveKey(action); ok {
			return key, true
		}
	}
	g.log.Warn("unknown key, hiding button", "action", action, "button", id.String())
	return 0, false
}

func (g *TouchGUI) addPanelButton(id ButtonID, r Rect) {
	key, ok := g.resolve(id)
	g.panel.Add(ButtonSpec{
		ID:          id,
		Rect:        r,
		Key:         key,
		Bound:       ok,
		RepeatDelay: g.cfg.ButtonRepeatDelay,
	})
}

// --- Configuration ---

// Config returns the effective configuration, defaults applied.
func (g *TouchGUI) Config() Config { return g.cfg }

// ButtonSize returns the edge length of a standard button in pixels.
func (g *TouchGUI) ButtonSize() float64 { return g.buttonSize }

// SetNowFunc overrides the clock used for tap and click timing.
func (g *TouchGUI) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		g.now = fn
	}
}

// SetRayCaster sets the scene service used to compute the aiming ray.
func (g *TouchGUI) SetRayCaster(rc RayCaster) {
	g.rays = rc
}

// SetUseCrosshair switches between crosshair aiming (screen center) and
// aiming at the touched point.
func (g *TouchGUI) SetUseCrosshair(use bool) {
	g.cfg.UseCrosshair = use
}

// --- Components ---

// Panel returns the fixed button panel.
func (g *TouchGUI) Panel() *ButtonPanel { return g.panel }

// SettingsBar returns the settings button bar.
func (g *TouchGUI) SettingsBar() *ButtonBar { return g.settingsBar }

// RareControlsBar returns the rare-controls button bar.
func (g *TouchGUI) RareControlsBar() *ButtonBar { return g.rareBar }

// Joystick returns the virtual joystick.
func (g *TouchGUI) Joystick() *Joystick { return g.joystick }

// Pointers returns the pointer table.
func (g *TouchGUI) Pointers() *PointerTracker { return g.pointers }

// TapState returns the pending tap classification.
func (g *TouchGUI) TapState() TapState { return g.tap.State() }

// --- Event dispatch ---

// HandleEvent dispatches one raw touch event. A new pointer goes to the
// first consumer that claims it, in order: panel buttons, hotbar, settings
// bar, rare-controls bar, joystick, and finally the look/tap pointer.
func (g *TouchGUI) HandleEvent(ev TouchEvent) {
	if ev.Phase > PhaseUp {
		panic(fmt.Sprintf("touchgui: unknown touch phase %v", ev.Phase))
	}
	if g.closed {
		return
	}
	if !g.visible {
		g.log.Debug("event while hidden", "pointer", ev.ID, "phase", ev.Phase.String())
		return
	}
	switch ev.Phase {
	case PhaseDown:
		g.handleDown(ev)
	case PhaseMove:
		g.handleMove(ev)
	case PhaseUp:
		g.handleRelease(ev.ID)
	}
}

func (g *TouchGUI) handleDown(ev TouchEvent) {
	pos := ev.pos()

	// The platform reused an id whose release we never saw.
	if g.pointers.Active(ev.ID) {
		g.log.Debug("pointer down without release", "pointer", ev.ID)
		g.handleRelease(ev.ID)
	}

	if id, ok := g.panel.HitTest(pos); ok {
		g.panel.Activate(id, ev.ID)
		g.settingsBar.Deactivate()
		g.rareBar.Deactivate()
	} else if g.hotbar.HitTest(pos) {
		g.settingsBar.Deactivate()
		g.rareBar.Deactivate()
	} else if g.settingsBar.HandleDown(ev.ID, pos) {
		g.rareBar.Deactivate()
	} else if g.rareBar.HandleDown(ev.ID, pos) {
		g.settingsBar.Deactivate()
	} else if g.settingsBar.Active() || g.rareBar.Active() {
		// A touch beside an open bar only closes it.
		g.settingsBar.Deactivate()
		g.rareBar.Deactivate()
	} else if !g.joystick.InTriggerZone(pos) || !g.joystick.Claim(ev.ID, pos) {
		g.tap.Begin(ev.ID, pos, g.now())
	}

	g.pointers.Down(ev.ID, pos)
}

func (g *TouchGUI) handleMove(ev TouchEvent) {
	prev, ok := g.pointers.Position(ev.ID)
	if !ok {
		g.log.Debug("move of unknown pointer", "pointer", ev.ID)
		return
	}
	pos := ev.pos()
	owner, hasOwner := g.joystick.Owner()
	isJoystick := hasOwner && owner == ev.ID
	if pos == prev && !(isJoystick && g.joystick.Fixed()) {
		return
	}

	g.pointers.Move(ev.ID, pos)

	claimed := isJoystick
	if delta, ok := g.tap.Move(ev.ID, pos, g.pointers.DistanceSq(ev.ID)); ok {
		d := g.cfg.lookScale()
		g.yaw -= delta.X * d
		g.pitch += delta.Y * d
		claimed = true
	}
	if isJoystick {
		g.joystick.Move(ev.ID, pos)
	}
	if !claimed {
		g.panel.HandleMove(ev.ID, pos)
	}
}

func (g *TouchGUI) handleRelease(id ebiten.TouchID) {
	inBar := g.settingsBar.ReleasePointer(id)
	inBar = g.rareBar.ReleasePointer(id) || inBar
	g.panel.Forget(id)

	switch button, held := g.panel.HolderOf(id); {
	case held:
		g.panel.Release(button, id)
	case g.tap.End(id, g.now()):
		// classified; consumed by ApplyContextControls
	case g.joystick.Release(id):
		g.applyJoystickStatus()
	case !inBar:
		g.log.Debug("released pointer without owner", "pointer", id)
	}

	// Ids are reused by the platform; the record goes away either way.
	g.pointers.Up(id)
}

// --- Per-frame step ---

// Step advances every timer by dt seconds: key repeat, aux1 reassertion,
// long-tap detection, the aiming ray and bar timeouts. One queued injected
// event is dispatched first.
func (g *TouchGUI) Step(dt float64) {
	if g.closed {
		return
	}
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	g.processInjectedInput()

	g.panel.Step(dt)
	g.applyJoystickStatus()
	g.tap.Step(g.now())
	g.updateShootline()
	g.settingsBar.Step(dt)
	g.rareBar.Step(dt)
}

// applyJoystickStatus re-sends the aux1 key from the joystick's outer zone.
func (g *TouchGUI) applyJoystickStatus() {
	if !g.cfg.JoystickTriggersAux1 || !g.aux1Bound {
		return
	}
	emitKey(g.recv, g.aux1Key, false)
	if g.joystick.Aux() {
		emitKey(g.recv, g.aux1Key, true)
	}
}

func (g *TouchGUI) screenCenter() Vec2 {
	return Vec2{g.cfg.ScreenWidth / 2, g.cfg.ScreenHeight / 2}
}

// pointerPos is the aim position carried by simulated mouse events.
func (g *TouchGUI) pointerPos() Vec2 {
	if g.cfg.UseCrosshair {
		return g.screenCenter()
	}
	return g.tap.Position()
}

// updateShootline recomputes the aiming ray. Without a crosshair it only
// follows a held move pointer and otherwise keeps its last world position.
func (g *TouchGUI) updateShootline() {
	if g.rays == nil {
		return
	}
	if g.cfg.UseCrosshair {
		g.shootline = g.rays.RayFromScreen(g.screenCenter())
		return
	}
	if _, ok := g.tap.Pointer(); ok {
		g.shootline = g.rays.RayFromScreen(g.tap.Position())
	}
}

// ApplyContextControls emits the simulated dig/place mouse events for the
// current tap state under mode. Call once per frame after Step.
func (g *TouchGUI) ApplyContextControls(mode InteractionMode) {
	g.controls.Apply(g.tap, mode, g.now(), g.emitMouse)
}

func (g *TouchGUI) emitMouse(b MouseButton, down bool) {
	if g.recv == nil {
		return
	}
	t := EventMouseUp
	if down {
		t = EventMouseDown
	}
	p := g.pointerPos()
	g.recv.OnEvent(Event{Type: t, Button: b, X: p.X, Y: p.Y})
}

// --- Accessors ---

// YawChange returns and resets the accumulated yaw change in degrees.
func (g *TouchGUI) YawChange() float64 {
	v := g.yaw
	g.yaw = 0
	return v
}

// PitchChange returns and resets the accumulated pitch change in degrees.
func (g *TouchGUI) PitchChange() float64 {
	v := g.pitch
	g.pitch = 0
	return v
}

// Shootline returns the aiming ray from the camera to its far plane.
func (g *TouchGUI) Shootline() Line3 { return g.shootline }

// MovementDirection returns the joystick direction in radians.
func (g *TouchGUI) MovementDirection() float64 { return g.joystick.Direction() }

// MovementSpeed returns the joystick speed in [0, 1].
func (g *TouchGUI) MovementSpeed() float64 { return g.joystick.Speed() }

// ResetHotbarRects forgets every hotbar slot.
func (g *TouchGUI) ResetHotbarRects() { g.hotbar.Reset() }

// RegisterHotbarRect sets the screen rect of hotbar slot index.
func (g *TouchGUI) RegisterHotbarRect(index int, r Rect) { g.hotbar.Register(index, r) }

// HotbarSelection returns and clears the slot touched since the last call.
func (g *TouchGUI) HotbarSelection() (int, bool) { return g.hotbar.TakeSelection() }

// --- Visibility ---

// Visible reports whether the GUI is shown.
func (g *TouchGUI) Visible() bool { return g.visible }

// SetVisible shows or hides every control. Hiding lifts every live pointer
// first so no key or mouse button stays pressed.
func (g *TouchGUI) SetVisible(visible bool) {
	if g.closed {
		return
	}
	if !visible {
		for _, id := range g.pointers.IDs() {
			g.handleRelease(id)
		}
	}
	g.visible = visible
	g.panel.SetVisible(visible)
	g.joystick.setVisible(visible)
	if visible {
		g.settingsBar.Show()
		g.rareBar.Show()
	} else {
		g.settingsBar.Hide()
		g.rareBar.Hide()
	}
}

// Hide hides the GUI if it is shown.
func (g *TouchGUI) Hide() {
	if g.visible {
		g.SetVisible(false)
	}
}

// Show shows the GUI if it is hidden.
func (g *TouchGUI) Show() {
	if !g.visible {
		g.SetVisible(true)
	}
}

// Close releases every widget. The GUI ignores all calls afterwards.
func (g *TouchGUI) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.panel.close()
	g.settingsBar.close()
	g.rareBar.close()
	g.joystick.close()
}
