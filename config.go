package touchgui

import (
	"log/slog"
	"math"
	"time"
)

const (
	defaultThreshold         = 20.0
	defaultSensitivity       = 0.2
	minSensitivity           = 0.001
	maxSensitivity           = 10.0
	defaultRepeatDelay       = 0.2 // seconds
	defaultSettingsTimeout   = 3.0 // seconds
	defaultRareTimeout       = 2.0 // seconds
	defaultBarExpandDuration = 0.15
	defaultLongTapDuration   = 500 * time.Millisecond
	defaultClickDuration     = 50 * time.Millisecond

	// Bars sit this many button sizes above the bottom edge.
	settingsBarYOffset     = 5
	rareControlsBarYOffset = 5
)

// Config holds the touch GUI tuning values. Zero fields are replaced by
// their defaults in New; use DefaultConfig to start from explicit defaults.
type Config struct {
	ScreenWidth  float64 `toml:"screen_width" yaml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height" yaml:"screen_height"`
	// Density is the display density (1 = 160 dpi baseline).
	Density    float64 `toml:"display_density" yaml:"display_density"`
	HUDScaling float64 `toml:"hud_scaling" yaml:"hud_scaling"`

	// Threshold is the distance in pixels a pointer must travel before it
	// counts as moved (drag rather than tap, joystick out of the dead zone).
	Threshold   float64 `toml:"touchscreen_threshold" yaml:"touchscreen_threshold"`
	Sensitivity float64 `toml:"touchscreen_sensitivity" yaml:"touchscreen_sensitivity"`

	FixedJoystick        bool `toml:"fixed_virtual_joystick" yaml:"fixed_virtual_joystick"`
	JoystickTriggersAux1 bool `toml:"virtual_joystick_triggers_aux1" yaml:"virtual_joystick_triggers_aux1"`
	UseCrosshair         bool `toml:"touch_use_crosshair" yaml:"touch_use_crosshair"`

	// Durations in seconds, advanced by Step(dt).
	ButtonRepeatDelay   float64 `toml:"button_repeat_delay" yaml:"button_repeat_delay"`
	SettingsBarTimeout  float64 `toml:"settings_bar_timeout" yaml:"settings_bar_timeout"`
	RareControlsTimeout float64 `toml:"rare_controls_bar_timeout" yaml:"rare_controls_bar_timeout"`
	BarExpandDuration   float64 `toml:"bar_expand_duration" yaml:"bar_expand_duration"`

	// Wall-clock durations, measured with the GUI clock.
	LongTapDuration time.Duration `toml:"long_tap_duration" yaml:"long_tap_duration"`
	ClickDuration   time.Duration `toml:"click_duration" yaml:"click_duration"`

	Logger *slog.Logger `toml:"-" yaml:"-"`
}

// DefaultConfig returns the stock configuration for a 1280x720 screen.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         1280,
		ScreenHeight:        720,
		Density:             1,
		HUDScaling:          1,
		Threshold:           defaultThreshold,
		Sensitivity:         defaultSensitivity,
		ButtonRepeatDelay:   defaultRepeatDelay,
		SettingsBarTimeout:  defaultSettingsTimeout,
		RareControlsTimeout: defaultRareTimeout,
		BarExpandDuration:   defaultBarExpandDuration,
		LongTapDuration:     defaultLongTapDuration,
		ClickDuration:       defaultClickDuration,
	}
}

// withDefaults fills zero fields. BarExpandDuration is left alone: zero
// means members appear in place without animation.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = d.ScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = d.ScreenHeight
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if c.HUDScaling <= 0 {
		c.HUDScaling = d.HUDScaling
	}
	if c.Threshold <= 0 {
		c.Threshold = d.Threshold
	}
	if c.Sensitivity == 0 {
		c.Sensitivity = d.Sensitivity
	}
	c.Sensitivity = clamp(c.Sensitivity, minSensitivity, maxSensitivity)
	if c.ButtonRepeatDelay <= 0 {
		c.ButtonRepeatDelay = d.ButtonRepeatDelay
	}
	if c.SettingsBarTimeout <= 0 {
		c.SettingsBarTimeout = d.SettingsBarTimeout
	}
	if c.RareControlsTimeout <= 0 {
		c.RareControlsTimeout = d.RareControlsTimeout
	}
	if c.LongTapDuration <= 0 {
		c.LongTapDuration = d.LongTapDuration
	}
	if c.ClickDuration <= 0 {
		c.ClickDuration = d.ClickDuration
	}
	return c
}

// ButtonSize returns the edge length of a standard button in pixels.
func (c Config) ButtonSize() float64 {
	return math.Min(c.ScreenHeight/4.5, c.Density*65*c.HUDScaling)
}

// lookScale converts pointer pixels into degrees of yaw/pitch.
func (c Config) lookScale() float64 {
	return c.Sensitivity * 6 / c.Density
}
