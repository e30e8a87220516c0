package touchgui

import "fmt"

// ButtonID names every on-screen control owned by the touch GUI.
type ButtonID uint8

const (
	ButtonJump ButtonID = iota
	ButtonSneak
	ButtonZoom
	ButtonAux1
	ButtonSettingsStarter
	ButtonRareControlsStarter
	ButtonFly
	ButtonNoclip
	ButtonFast
	ButtonDebug
	ButtonCamera
	ButtonRange
	ButtonMinimap
	ButtonToggleChat
	ButtonChat
	ButtonInventory
	ButtonDrop
	ButtonExit
	ButtonJoystickOff
	ButtonJoystickBg
	ButtonJoystickCenter
	buttonIDCount
)

var buttonNames = [buttonIDCount]string{
	ButtonJump:                "jump",
	ButtonSneak:               "sneak",
	ButtonZoom:                "zoom",
	ButtonAux1:                "aux1",
	ButtonSettingsStarter:     "settings_starter",
	ButtonRareControlsStarter: "rare_controls_starter",
	ButtonFly:                 "fly",
	ButtonNoclip:              "noclip",
	ButtonFast:                "fast",
	ButtonDebug:               "debug",
	ButtonCamera:              "camera",
	ButtonRange:               "rangeview",
	ButtonMinimap:             "minimap",
	ButtonToggleChat:          "togglechat",
	ButtonChat:                "chat",
	ButtonInventory:           "inventory",
	ButtonDrop:                "drop",
	ButtonExit:                "exit",
	ButtonJoystickOff:         "joystick_off",
	ButtonJoystickBg:          "joystick_bg",
	ButtonJoystickCenter:      "joystick_center",
}

func (id ButtonID) String() string {
	if id < buttonIDCount {
		return buttonNames[id]
	}
	return fmt.Sprintf("ButtonID(%d)", uint8(id))
}

// Action returns the keymap action name the button sends, or "" for
// controls that carry no key (starters, joystick visuals, exit).
func (id ButtonID) Action() string {
	switch id {
	case ButtonJump:
		return "jump"
	case ButtonSneak:
		return "sneak"
	case ButtonZoom:
		return "zoom"
	case ButtonAux1:
		return "aux1"
	case ButtonFly:
		return "freemove"
	case ButtonNoclip:
		return "noclip"
	case ButtonFast:
		return "fastmove"
	case ButtonDebug:
		return "toggle_debug"
	case ButtonCamera:
		return "camera_mode"
	case ButtonRange:
		return "rangeselect"
	case ButtonMinimap:
		return "minimap"
	case ButtonToggleChat:
		return "toggle_chat"
	case ButtonChat:
		return "chat"
	case ButtonInventory:
		return "inventory"
	case ButtonDrop:
		return "drop"
	}
	return ""
}

// Texture returns the default icon name for the button.
func (id ButtonID) Texture() string {
	switch id {
	case ButtonJump:
		return "jump_btn.png"
	case ButtonSneak:
		return "down.png"
	case ButtonZoom:
		return "zoom.png"
	case ButtonAux1:
		return "aux1_btn.png"
	case ButtonSettingsStarter:
		return "gear_icon.png"
	case ButtonRareControlsStarter:
		return "rare_controls.png"
	case ButtonToggleChat:
		return "chat_hide_btn.png"
	case ButtonJoystickOff:
		return "joystick_off.png"
	case ButtonJoystickBg:
		return "joystick_bg.png"
	case ButtonJoystickCenter:
		return "joystick_center.png"
	}
	return id.String() + "_btn.png"
}
