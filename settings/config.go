// Package settings loads touch GUI configuration and key bindings from
// TOML or YAML files and persists player overrides with gdata.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/touchgui"
)

// Format is a configuration file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("settings: unsupported config extension %q", filepath.Ext(path))
}

// File is the on-disk configuration.
type File struct {
	LogLevel string          `toml:"log_level" yaml:"log_level"`
	Touch    touchgui.Config `toml:"touch" yaml:"touch"`
	// Keys maps action names to key names, e.g. jump = "Space".
	Keys map[string]string `toml:"keys" yaml:"keys"`
}

// DefaultFile returns the stock configuration with default bindings.
func DefaultFile() File {
	return File{
		LogLevel: "info",
		Touch:    touchgui.DefaultConfig(),
		Keys:     DefaultKeymap().Names(),
	}
}

// Load reads a configuration file. Missing fields keep their defaults.
func Load(path string) (File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes a configuration on top of DefaultFile.
func Parse(data []byte, format Format) (File, error) {
	f := DefaultFile()
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return File{}, fmt.Errorf("settings: unknown format %v", format)
	}
	if err != nil {
		return File{}, fmt.Errorf("settings: parse %s: %w", format, err)
	}
	if _, err := f.Level(); err != nil {
		return File{}, err
	}
	if _, err := f.Keymap(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Level returns the parsed log level. An empty level means info.
func (f File) Level() (slog.Level, error) {
	var l slog.Level
	if f.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return 0, fmt.Errorf("settings: log_level: %w", err)
	}
	return l, nil
}

// Keymap returns the default bindings overridden by f.Keys.
func (f File) Keymap() (Keymap, error) {
	km := DefaultKeymap()
	if err := km.Apply(f.Keys); err != nil {
		return nil, err
	}
	return km, nil
}

// Logger builds a text logger writing to stderr at f's level.
func (f File) Logger() *slog.Logger {
	level, err := f.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
