// Package touchgui is the touch-screen input layer of a first-person 3D
// game client built on [Ebitengine].
//
// It converts raw multi-touch events into the keyboard and mouse input the
// rest of the client already understands: on-screen buttons that press and
// release keys, a virtual joystick for movement, look control by dragging,
// hotbar selection, and tap gestures that become dig/place mouse clicks.
//
// # Quick start
//
// Create a [TouchGUI] with a [Config], a [KeyResolver] for the key bindings,
// a [Receiver] for the synthetic events and an optional [WidgetFactory] for
// the on-screen visuals:
//
//	gui := touchgui.New(touchgui.DefaultConfig(), keymap, receiver, widgets)
//	src := touchgui.NewTouchSource()
//
// Then, once per frame from the game's Update:
//
//	src.Feed(gui)
//	gui.Step(1.0 / float64(ebiten.TPS()))
//	gui.ApplyContextControls(touchgui.ShortDigLongPlace)
//
//	player.Yaw += gui.YawChange()
//	player.Pitch += gui.PitchChange()
//	player.Walk(gui.MovementDirection(), gui.MovementSpeed())
//	if slot, ok := gui.HotbarSelection(); ok {
//		player.SelectItem(slot)
//	}
//
// # Pointer routing
//
// Every new touch is claimed by exactly one consumer, tried in order: panel
// buttons, hotbar slots, the settings bar, the rare-controls bar, the
// joystick, and finally the look pointer. The look pointer turns the camera
// while dragged and, when lifted without moving, becomes a short tap; held
// still for longer than [Config].LongTapDuration it becomes a long tap.
// [TouchGUI.ApplyContextControls] maps taps to dig and place clicks
// according to the [InteractionMode] of the wielded item.
//
// # Testing without a touch screen
//
// [TouchGUI.InjectDown], [TouchGUI.InjectMove], [TouchGUI.InjectUp] and
// friends queue synthetic touches that are dispatched one per Step.
// [LoadTestScript] loads a JSON script of such steps.
//
// Configuration files and saved key bindings live in the settings
// subpackage; a [Donburi] event adapter lives in touchgui/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package touchgui
