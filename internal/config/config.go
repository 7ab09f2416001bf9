// SPDX-FileCopyrightText: 2025 The Lbar Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config holds the bar settings: built-in defaults, the optional
// TOML file and validation of the values given on the command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/janderssonse/lbar/internal/domain"
	"github.com/janderssonse/lbar/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultBackground = "#2e2c2c"
	DefaultSelected   = "#1286a1"
	DefaultText       = "#ffffff"
	DefaultSuggestion = "#ffffff"
	DefaultProgress   = "#242222"
	DefaultHeight     = 22
	DefaultFont       = "DejaVu Sans Mono"
	DefaultTerminal   = "i3-sensible-terminal"
)

// Colors are #RRGGBB strings.
type Colors struct {
	Background string `toml:"background"`
	Selected   string `toml:"selected"`
	Text       string `toml:"text"`
	Suggestion string `toml:"suggestion"`
	Progress   string `toml:"progress"`
}

// Config is the complete set of user settings.
type Config struct {
	Colors   Colors `toml:"colors"`
	Height   int    `toml:"height"`
	Bottom   bool   `toml:"bottom"`
	Font     string `toml:"font"`
	Terminal string `toml:"terminal"`
	ScanPath bool   `toml:"scan_path"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Colors: Colors{
			Background: DefaultBackground,
			Selected:   DefaultSelected,
			Text:       DefaultText,
			Suggestion: DefaultSuggestion,
			Progress:   DefaultProgress,
		},
		Height:   DefaultHeight,
		Font:     DefaultFont,
		Terminal: DefaultTerminal,
	}
}

// Load overlays the file at path on the defaults. A missing file or an
// empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user supplied config path
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := platform.SafeWriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks every color and the bar height.
func (c Config) Validate() error {
	for _, color := range []struct{ name, value string }{
		{"background", c.Colors.Background},
		{"selected", c.Colors.Selected},
		{"text", c.Colors.Text},
		{"suggestion", c.Colors.Suggestion},
		{"progress", c.Colors.Progress},
	} {
		if _, err := ParseColor(color.value); err != nil {
			return fmt.Errorf("%s color: %w", color.name, err)
		}
	}

	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", domain.ErrInvalidConfig, c.Height)
	}

	if strings.TrimSpace(c.Terminal) == "" {
		return fmt.Errorf("%w: terminal must not be empty", domain.ErrInvalidConfig)
	}

	return nil
}

// ParseColor converts "#RRGGBB" to 0xRRGGBB.
func ParseColor(value string) (uint32, error) {
	if !strings.HasPrefix(value, "#") {
		return 0, fmt.Errorf("%w: Color hex code must start with a #", domain.ErrInvalidColor)
	}

	if len(value) != 7 {
		return 0, fmt.Errorf("%w: Color hex code format: #RRGGBB", domain.ErrInvalidColor)
	}

	rgb, err := strconv.ParseUint(value[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: Couldn't parse color code", domain.ErrInvalidColor)
	}

	return uint32(rgb), nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(rgb uint32) string {
	return fmt.Sprintf("#%06x", rgb&0xffffff)
}
