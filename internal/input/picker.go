// internal/input/picker.go
package input

import (
	"hex-map-editor/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
)

// Picker turns pointer positions into cells.
type Picker struct {
	Layout hexmap.Layout
	View   Viewport
}

// Pick returns the cell under the screen position (sx, sy).
func (p Picker) Pick(sx, sy int) hexmap.Hex {
	x, y := p.View.ScreenToWorld(float64(sx), float64(sy))
	return p.Layout.PixelToHex(x, y)
}

// Cursor returns the cell under the mouse cursor and the raw cursor position.
func (p Picker) Cursor() (hexmap.Hex, int, int) {
	x, y := ebiten.CursorPosition()
	return p.Pick(x, y), x, y
}
