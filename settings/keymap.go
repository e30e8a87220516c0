package settings

import (
	"fmt"
	"maps"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keymap binds action names to keys. It implements touchgui.KeyResolver.
type Keymap map[string]ebiten.Key

// DefaultKeymap returns the stock desktop bindings.
func DefaultKeymap() Keymap {
	return Keymap{
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

// ResolveKey returns the key bound to action.
func (k Keymap) ResolveKey(action string) (ebiten.Key, bool) {
	key, ok := k[action]
	return key, ok
}

// Apply overrides bindings from action/key-name pairs. An empty key name
// unbinds the action.
func (k Keymap) Apply(names map[string]string) error {
	for action, name := range names {
		if name == "" {
			delete(k, action)
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("settings: keys.%s: %w", action, err)
		}
		k[action] = key
	}
	return nil
}

// Names returns the bindings as action/key-name pairs.
func (k Keymap) Names() map[string]string {
	names := make(map[string]string, len(k))
	for action, key := range k {
		names[action] = key.String()
	}
	return names
}

// Clone returns an independent copy.
func (k Keymap) Clone() Keymap {
	return maps.Clone(k)
}

// ParseKey looks up a key by its ebiten name, case-insensitively.
func ParseKey(name string) (ebiten.Key, error) {
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		if strings.EqualFold(key.String(), name) {
			return key, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
