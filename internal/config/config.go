// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"hex-map-editor/internal/input"
	"hex-map-editor/pkg/hexmap"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth  = 1200
	DefaultScreenHeight = 900
	DefaultHexSize      = 30.0
	DefaultMapRadius    = 6
	DefaultOutlineWidth = 1.0
	MaxDeltaTime        = 0.06
	PanSpeed            = 400.0 // screen pixels per second
)

var (
	ErrInvalidHexSize  = errors.New("hex size must be positive")
	ErrInvalidSpacing  = errors.New("spacing must not be negative")
	ErrInvalidZoom     = errors.New("zoom out of range")
	ErrInvalidTileType = errors.New("unknown tile type")
)

// MapSettings is everything the editor reads from its settings file.
type MapSettings struct {
	HexSize           float64 `yaml:"hex_size"`
	HorizontalSpacing float64 `yaml:"horizontal_spacing"`
	VerticalSpacing   float64 `yaml:"vertical_spacing"`
	Rotation          float64 `yaml:"rotation"`        // per-hex, 0 = flat top
	LayoutRotation    float64 `yaml:"layout_rotation"` // whole grid

	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Zoom    float64 `yaml:"zoom"`

	ShowOutlines              *bool   `yaml:"show_outlines"`
	OutlineWidth              float64 `yaml:"outline_width"`
	ShowCoordinates           bool    `yaml:"show_coordinates"`
	ShowExtendedSurrounding   bool    `yaml:"show_extended_surrounding"`
	ShowThirdLevelSurrounding bool    `yaml:"show_third_level_surrounding"`

	DefaultTileType  hexmap.TileType `yaml:"default_tile_type"`
	SelectedTileType hexmap.TileType `yaml:"selected_tile_type"`
	MapRadius        int             `yaml:"map_radius"`

	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
}

// Default returns the settings used when no file is given.
func Default() *MapSettings {
	s := &MapSettings{}
	s.applyDefaults()
	return s
}

// Load reads settings from a YAML file.
func Load(path string) (*MapSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[config] loaded %s (hex size %.1f, layout rotation %.1f)", path, s.HexSize, s.LayoutRotation)
	return s, nil
}

// Parse decodes YAML settings, fills unset fields with defaults and validates the result.
func Parse(data []byte) (*MapSettings, error) {
	var s MapSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *MapSettings) applyDefaults() {
	if s.HexSize == 0 {
		s.HexSize = DefaultHexSize
	}
	if s.Zoom == 0 {
		s.Zoom = 1
	}
	if s.ShowOutlines == nil {
		on := true
		s.ShowOutlines = &on
	}
	if s.OutlineWidth == 0 {
		s.OutlineWidth = DefaultOutlineWidth
	}
	if s.DefaultTileType == "" {
		s.DefaultTileType = hexmap.Grass
	}
	if s.SelectedTileType == "" {
		s.SelectedTileType = hexmap.Grass
	}
	if s.MapRadius == 0 {
		s.MapRadius = DefaultMapRadius
	}
	if s.ScreenWidth == 0 {
		s.ScreenWidth = DefaultScreenWidth
	}
	if s.ScreenHeight == 0 {
		s.ScreenHeight = DefaultScreenHeight
	}
}

// Validate checks the preconditions the projection functions rely on.
func (s *MapSettings) Validate() error {
	if !(s.HexSize > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidHexSize, s.HexSize)
	}
	if s.HorizontalSpacing < 0 || s.VerticalSpacing < 0 {
		return fmt.Errorf("%w: horizontal %v, vertical %v", ErrInvalidSpacing, s.HorizontalSpacing, s.VerticalSpacing)
	}
	if s.Zoom < input.MinZoom || s.Zoom > input.MaxZoom {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrInvalidZoom, s.Zoom, input.MinZoom, input.MaxZoom)
	}
	for _, t := range []hexmap.TileType{s.DefaultTileType, s.SelectedTileType} {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidTileType, t)
		}
	}
	return nil
}

// Outlines reports whether hex borders are drawn.
func (s *MapSettings) Outlines() bool {
	return s.ShowOutlines == nil || *s.ShowOutlines
}

// SurroundingLevels is how many rings around the selected tile are highlighted.
func (s *MapSettings) SurroundingLevels() int {
	switch {
	case s.ShowThirdLevelSurrounding:
		return 3
	case s.ShowExtendedSurrounding:
		return 2
	default:
		return 1
	}
}

// Layout returns the projection parameters.
func (s *MapSettings) Layout() hexmap.Layout {
	return hexmap.Layout{
		HexSize:           s.HexSize,
		HorizontalSpacing: s.HorizontalSpacing,
		VerticalSpacing:   s.VerticalSpacing,
		LayoutRotation:    s.LayoutRotation,
		Rotation:          s.Rotation,
	}
}

// Viewport returns the pan/zoom state. A zero offset centers the origin on screen.
func (s *MapSettings) Viewport() input.Viewport {
	v := input.Viewport{OffsetX: s.OffsetX, OffsetY: s.OffsetY, Zoom: s.Zoom}
	if v.OffsetX == 0 && v.OffsetY == 0 {
		v.OffsetX = float64(s.ScreenWidth) / 2
		v.OffsetY = float64(s.ScreenHeight) / 2
	}
	return v
}
