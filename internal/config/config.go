// Package config loads the overlay, logger, metrics and viewer settings
// through viper and reports changes to the overlay keys.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Overlay keys, relative to the npcAggroArea group.
const (
	Group                 = "npcAggroArea"
	KeyShowArea           = "showNpcAggroArea"
	KeyCollisionDetection = "npcAggroAreaCollisionDetection"
	KeyColor              = "npcAggroAreaColor"
)

// ErrInvalidColor is returned for colour values that are not #RRGGBB or
// #RRGGBBAA.
var ErrInvalidColor = errors.New("invalid color")

// Overlay holds the user facing settings of the aggro area overlay.
type Overlay struct {
	ShowArea           bool
	CollisionDetection bool
	Color              color.NRGBA
}

// DefaultOverlay returns the settings used when nothing is configured.
func DefaultOverlay() Overlay {
	return Overlay{
		ShowArea:           false,
		CollisionDetection: true,
		Color:              color.NRGBA{R: 0xff, A: 0xff},
	}
}

// Logger configures internal/logging.
type Logger struct {
	Level      string
	File       string
	Rotation   bool
	Stdout     bool
	MaxSize    int `validate:"min=0"`
	MaxAge     int `validate:"min=0"`
	MaxBackups int `validate:"min=0"`
	LocalTime  bool
	Compress   bool
}

// Metrics configures the prometheus endpoint.
type Metrics struct {
	Enabled bool
	Addr    string `validate:"required"`
}

// Viewer configures the interactive window.
type Viewer struct {
	Scene      string `validate:"required"`
	Width      int    `validate:"min=64"`
	Height     int    `validate:"min=64"`
	TilePixels int    `validate:"min=1,max=64"`
	TickMillis int    `validate:"min=20"`
	StartX     int
	StartY     int
}

// Config is the full application configuration.
type Config struct {
	Overlay Overlay
	Logger  Logger
	Metrics Metrics
	Viewer  Viewer
}

// ParseColor parses #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor is the inverse of ParseColor. Opaque colours omit the alpha.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// changedKeys lists the overlay keys that differ between a and b, in a fixed
// order.
func changedKeys(a, b Overlay) []string {
	var keys []string
	if a.ShowArea != b.ShowArea {
		keys = append(keys, KeyShowArea)
	}
	if a.CollisionDetection != b.CollisionDetection {
		keys = append(keys, KeyCollisionDetection)
	}
	if a.Color != b.Color {
		keys = append(keys, KeyColor)
	}
	return keys
}
