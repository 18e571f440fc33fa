// internal/ui/status_bar.go
package ui

import (
	"fmt"
	"strings"

	"hex-map-editor/internal/event"
	"hex-map-editor/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatusBar shows the hovered cell, the brush and the last editor change.
type StatusBar struct {
	X, Y       int
	Hover      hexmap.Hex
	Brush      hexmap.TileType
	Zoom       float64
	LastChange string
}

func NewStatusBar(x, y int) *StatusBar {
	return &StatusBar{X: x, Y: y, Zoom: 1}
}

// OnEvent records a one-line summary of the change.
func (s *StatusBar) OnEvent(ev event.Event) {
	s.LastChange = Describe(ev)
}

// Describe formats an editor event for display.
func Describe(ev event.Event) string {
	switch data := ev.Data.(type) {
	case event.TileChange:
		if data.To == "" {
			return fmt.Sprintf("erased %v", data.Hex)
		}
		return fmt.Sprintf("painted %v %s", data.Hex, data.To)
	case event.Selection:
		return fmt.Sprintf("selected %v (%d around)", data.Hex, len(data.Surrounding))
	case hexmap.Hex:
		return fmt.Sprintf("origin moved to %v", data)
	}
	switch ev.Type {
	case event.MapCleared:
		return "map cleared"
	case event.SettingsChanged:
		return "settings changed"
	}
	return string(ev.Type)
}

// Lines returns the text rows the bar draws.
func (s *StatusBar) Lines() []string {
	lines := []string{
		fmt.Sprintf("hex %v  brush %s  zoom %.2f", s.Hover, s.Brush, s.Zoom),
	}
	if s.LastChange != "" {
		lines = append(lines, s.LastChange)
	}
	return lines
}

func (s *StatusBar) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, strings.Join(s.Lines(), "\n"), s.X, s.Y)
}
