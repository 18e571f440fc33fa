// internal/app/editor.go
package app

import (
	"fmt"
	"log"
	"math"

	"hex-map-editor/internal/config"
	"hex-map-editor/internal/event"
	"hex-map-editor/internal/input"
	"hex-map-editor/pkg/hexmap"
)

// Editor owns the map being edited and the view onto it. Every change is announced on Dispatcher.
type Editor struct {
	Settings   *config.MapSettings
	Map        *hexmap.HexMap
	Dispatcher *event.Dispatcher

	view     input.Viewport
	selected *event.Selection
}

func NewEditor(settings *config.MapSettings) *Editor {
	e := &Editor{
		Settings:   settings,
		Map:        hexmap.NewHexMap(settings.MapRadius, settings.DefaultTileType),
		Dispatcher: event.NewDispatcher(),
		view:       settings.Viewport(),
	}
	e.Dispatcher.SubscribeAll(event.ListenerFunc(logChange),
		event.TilePainted, event.TileErased, event.OriginChanged, event.MapCleared, event.SettingsChanged)
	return e
}

func logChange(ev event.Event) {
	switch data := ev.Data.(type) {
	case event.TileChange:
		log.Printf("[editor] %s %v: %q -> %q", ev.Type, data.Hex, data.From, data.To)
	case hexmap.Hex:
		log.Printf("[editor] %s %v", ev.Type, data)
	default:
		log.Printf("[editor] %s", ev.Type)
	}
}

func (e *Editor) Layout() hexmap.Layout {
	return e.Settings.Layout()
}

func (e *Editor) View() input.Viewport {
	return e.view
}

func (e *Editor) SetView(v input.Viewport) {
	e.view = v
}

// Picker maps screen positions to cells with the current layout and view.
func (e *Editor) Picker() input.Picker {
	return input.Picker{Layout: e.Layout(), View: e.view}
}

// Paint sets h to t. Painting a cell with its current type is a no-op.
func (e *Editor) Paint(h hexmap.Hex, t hexmap.TileType) bool {
	old, existed := e.Map.Get(h)
	if existed && old.Type == t {
		return false
	}
	e.Map.Set(h, t)
	e.Dispatcher.Dispatch(event.Event{
		Type: event.TilePainted,
		Data: event.TileChange{Hex: h, From: old.Type, To: t},
	})
	return true
}

// Erase removes h from the map.
func (e *Editor) Erase(h hexmap.Hex) bool {
	old, existed := e.Map.Get(h)
	if !existed {
		return false
	}
	e.Map.Remove(h)
	e.Dispatcher.Dispatch(event.Event{
		Type: event.TileErased,
		Data: event.TileChange{Hex: h, From: old.Type},
	})
	return true
}

// Select marks h and collects its surrounding tiles up to the configured level.
func (e *Editor) Select(h hexmap.Hex) event.Selection {
	sel := event.Selection{
		Hex:         h,
		Surrounding: e.Map.Surrounding(h, e.Settings.SurroundingLevels()),
	}
	e.selected = &sel
	e.Dispatcher.Dispatch(event.Event{Type: event.TileSelected, Data: sel})
	return sel
}

func (e *Editor) Selection() (event.Selection, bool) {
	if e.selected == nil {
		return event.Selection{}, false
	}
	return *e.selected, true
}

func (e *Editor) ClearSelection() {
	e.selected = nil
}

// SetOrigin renumbers the map so h becomes (0,0) and shifts the view so nothing moves on screen.
func (e *Editor) SetOrigin(h hexmap.Hex) {
	layout := e.Layout()
	before := layout.HexToPixel(h)
	after := layout.HexToPixel(hexmap.Hex{})

	e.Map.Recenter(h)
	z := e.view.Scale()
	e.view = e.view.Pan(float64(before.X-after.X)*z, float64(before.Y-after.Y)*z)
	e.selected = nil
	e.Dispatcher.Dispatch(event.Event{Type: event.OriginChanged, Data: h})
}

// Clear replaces the map with a fresh one filled with the default tile type.
func (e *Editor) Clear() {
	e.Map = hexmap.NewHexMap(e.Settings.MapRadius, e.Settings.DefaultTileType)
	e.selected = nil
	e.Dispatcher.Dispatch(event.Event{Type: event.MapCleared})
}

// ApplySettings validates and installs new settings. The view is kept.
func (e *Editor) ApplySettings(s *config.MapSettings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	e.Settings = s
	e.Dispatcher.Dispatch(event.Event{Type: event.SettingsChanged, Data: s})
	return nil
}

// RotateLayout turns the whole grid by delta degrees, keeping the angle in [0, 360).
func (e *Editor) RotateLayout(delta float64) error {
	next := *e.Settings
	next.LayoutRotation = math.Mod(next.LayoutRotation+delta, 360)
	if next.LayoutRotation < 0 {
		next.LayoutRotation += 360
	}
	return e.ApplySettings(&next)
}

// RotateHexes turns every hexagon's outline by delta degrees without moving the centers.
func (e *Editor) RotateHexes(delta float64) error {
	next := *e.Settings
	next.Rotation = math.Mod(next.Rotation+delta, 360)
	if next.Rotation < 0 {
		next.Rotation += 360
	}
	return e.ApplySettings(&next)
}

// SelectTileType changes the brush type.
func (e *Editor) SelectTileType(t hexmap.TileType) error {
	next := *e.Settings
	next.SelectedTileType = t
	return e.ApplySettings(&next)
}
