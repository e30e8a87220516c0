package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/touchgui"
)

func TestParseEmptyTOML(t *testing.T) {
	f, err := Parse([]byte(""), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, DefaultFile(), f)
}

func TestParseTOMLTouchSection(t *testing.T) {
	f, err := Parse([]byte(`log_level = "debug"

[touch]
screen_width = 1920
screen_height = 1080
touchscreen_sensitivity = 0.5
fixed_virtual_joystick = true
long_tap_duration = "750ms"
`), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 1920.0, f.Touch.ScreenWidth)
	assert.Equal(t, 1080.0, f.Touch.ScreenHeight)
	assert.Equal(t, 0.5, f.Touch.Sensitivity)
	assert.True(t, f.Touch.FixedJoystick)
	assert.Equal(t, 750*time.Millisecond, f.Touch.LongTapDuration)
	// untouched fields keep defaults
	assert.Equal(t, 20.0, f.Touch.Threshold)

	level, err := f.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte(`
log_level: warn
touch:
  touchscreen_threshold: 32
  touch_use_crosshair: true
  click_duration: 80ms
keys:
  jump: KeyX
`), FormatYAML)
	require.Error(t, err, "KeyX is not an ebiten key name")
	assert.Equal(t, File{}, f)

	f, err = Parse([]byte(`
log_level: warn
touch:
  touchscreen_threshold: 32
  touch_use_crosshair: true
  click_duration: 80ms
keys:
  jump: x
`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 32.0, f.Touch.Threshold)
	assert.True(t, f.Touch.UseCrosshair)
	assert.Equal(t, 80*time.Millisecond, f.Touch.ClickDuration)

	km, err := f.Keymap()
	require.NoError(t, err)
	key, ok := km.ResolveKey("jump")
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyX, key)
}

func TestParseBadLogLevel(t *testing.T) {
	_, err := Parse([]byte(`log_level = "loud"`), FormatTOML)
	assert.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`[touch`), FormatTOML)
	assert.Error(t, err)
	_, err = Parse([]byte("touch: [1, 2"), FormatYAML)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"touch.toml", FormatTOML, true},
		{"dir/touch.YAML", FormatYAML, true},
		{"touch.yml", FormatYAML, true},
		{"touch.json", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "touch.toml")
	require.NoError(t, os.WriteFile(path, []byte("[touch]\nhud_scaling = 1.5\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f.Touch.HUDScaling)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoadedConfigBuildsGUI(t *testing.T) {
	f, err := Parse([]byte("[touch]\nvirtual_joystick_triggers_aux1 = true\n"), FormatTOML)
	require.NoError(t, err)
	km, err := f.Keymap()
	require.NoError(t, err)

	gui := touchgui.New(f.Touch, km, nil, nil)
	defer gui.Close()
	assert.False(t, gui.Panel().Has(touchgui.ButtonAux1))
	assert.True(t, gui.Panel().Has(touchgui.ButtonJump))
}
