// pkg/render/color.go
package render

import (
	"image/color"

	"hex-map-editor/pkg/hexmap"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	SelectionColor  = color.RGBA{255, 215, 0, 255}
	unknownColor    = color.RGBA{255, 0, 255, 255}
)

// TileColors is the fill color of each terrain type.
var TileColors = map[hexmap.TileType]color.RGBA{
	hexmap.Grass:    {0x4C, 0xAF, 0x50, 0xFF},
	hexmap.Water:    {0x21, 0x96, 0xF3, 0xFF},
	hexmap.Mountain: {0x79, 0x55, 0x48, 0xFF},
	hexmap.Forest:   {0x38, 0x8E, 0x3C, 0xFF},
	hexmap.Desert:   {0xFF, 0x98, 0x00, 0xFF},
	hexmap.Snow:     {0xFF, 0xFF, 0xFF, 0xFF},
	hexmap.Void:     {0x00, 0x00, 0x00, 0xFF},
}

// TileColor returns the fill for t, magenta for unknown types.
func TileColor(t hexmap.TileType) color.RGBA {
	if c, ok := TileColors[t]; ok {
		return c
	}
	return unknownColor
}

// SurroundingColors highlight rings 1..3 around the selected tile.
var SurroundingColors = [...]color.RGBA{
	{255, 80, 80, 255},
	{255, 160, 60, 255},
	{255, 230, 90, 255},
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LabelColor picks a text color readable on top of fill.
func LabelColor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return TextDarkColor
	}
	return TextLightColor
}
