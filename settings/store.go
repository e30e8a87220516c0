package settings

import (
	"bytes"
	"fmt"
	"log/slog"
	"maps"

	"github.com/BurntSushi/toml"
	"github.com/quasilyte/gdata"

	"github.com/phanxgames/touchgui"
)

const itemKey = "touch_settings"

// itemStore is the part of gdata.Manager the store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Saved is what the player changed in the in-game settings.
type Saved struct {
	Touch touchgui.Config   `toml:"touch"`
	Keys  map[string]string `toml:"keys"`
}

// Store persists Saved in the platform's app data directory.
type Store struct {
	items itemStore
	log   *slog.Logger
}

// OpenStore opens the gdata storage of appName.
func OpenStore(appName string, log *slog.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: open storage: %w", err)
	}
	return newStore(m, log), nil
}

func newStore(items itemStore, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{items: items, log: log}
}

// Load returns the saved settings, or ok=false if nothing was saved yet.
func (s *Store) Load() (saved Saved, ok bool, err error) {
	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		return Saved{}, false, fmt.Errorf("settings: load: %w", err)
	}
	if data == nil {
		s.log.Debug("settings: nothing saved yet")
		return Saved{}, false, nil
	}
	if _, err := toml.Decode(string(data), &saved); err != nil {
		return Saved{}, false, fmt.Errorf("settings: decode saved settings: %w", err)
	}
	return saved, true, nil
}

// Save writes saved, replacing the previous contents.
func (s *Store) Save(saved Saved) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(saved); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.items.SaveItem(itemKey, buf.Bytes()); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	s.log.Info("settings: saved", "bytes", buf.Len())
	return nil
}

// Merge applies the saved settings on top of f. Zero fields in the saved
// config keep f's values. f is left untouched; on error the caller keeps it.
func (s *Store) Merge(f File) (File, error) {
	saved, ok, err := s.Load()
	if err != nil || !ok {
		return f, err
	}
	f.Touch = mergeConfig(f.Touch, saved.Touch)
	f.Keys = maps.Clone(f.Keys)
	if f.Keys == nil {
		f.Keys = make(map[string]string, len(saved.Keys))
	}
	for action, name := range saved.Keys {
		f.Keys[action] = name
	}
	if _, err := f.Keymap(); err != nil {
		return File{}, err
	}
	return f, nil
}

func mergeConfig(base, over touchgui.Config) touchgui.Config {
	if over.ScreenWidth > 0 {
		base.ScreenWidth = over.ScreenWidth
	}
	if over.ScreenHeight > 0 {
		base.ScreenHeight = over.ScreenHeight
	}
	if over.Density > 0 {
		base.Density = over.Density
	}
	if over.HUDScaling > 0 {
		base.HUDScaling = over.HUDScaling
	}
	if over.Threshold > 0 {
		base.Threshold = over.Threshold
	}
	if over.Sensitivity > 0 {
		base.Sensitivity = over.Sensitivity
	}
	if over.ButtonRepeatDelay > 0 {
		base.ButtonRepeatDelay = over.ButtonRepeatDelay
	}
	if over.SettingsBarTimeout > 0 {
		base.SettingsBarTimeout = over.SettingsBarTimeout
	}
	if over.RareControlsTimeout > 0 {
		base.RareControlsTimeout = over.RareControlsTimeout
	}
	if over.LongTapDuration > 0 {
		base.LongTapDuration = over.LongTapDuration
	}
	if over.ClickDuration > 0 {
		base.ClickDuration = over.ClickDuration
	}
	// Switches are always taken from the player's settings.
	base.FixedJoystick = over.FixedJoystick
	base.JoystickTriggersAux1 = over.JoystickTriggersAux1
	base.UseCrosshair = over.UseCrosshair
	return base
}
