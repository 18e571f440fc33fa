// internal/state/editor_state.go
package state

import (
	"image/color"
	"log"

	"hex-map-editor/internal/app"
	"hex-map-editor/internal/config"
	"hex-map-editor/internal/event"
	"hex-map-editor/internal/ui"
	"hex-map-editor/pkg/hexmap"
	"hex-map-editor/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EditorState)(nil)

var brushKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

const rotationStep = 15.0

// EditorState paints tiles under the cursor and lets the user pan, zoom and rotate the grid.
//
//	left drag   paint with the brush      1..7  choose brush
//	right click erase                     wheel zoom at cursor
//	middle      select, show surrounding  arrows pan
//	O           make hovered cell origin  Q/E   rotate layout
//	R           rotate hexagons           G     coordinates
//	L           outlines                  C     clear map
//	F5          reload settings file
type EditorState struct {
	sm         *StateMachine
	editor     *app.Editor
	renderer   *render.HexRenderer
	status     *ui.StatusBar
	configPath string
}

func NewEditorState(sm *StateMachine, editor *app.Editor, configPath string) (*EditorState, error) {
	s := editor.Settings
	renderer, err := render.NewHexRenderer(editor.Layout(), styleFor(s), s.ScreenWidth, s.ScreenHeight)
	if err != nil {
		return nil, err
	}
	status := ui.NewStatusBar(8, 8)
	editor.Dispatcher.SubscribeAll(status,
		event.TilePainted, event.TileErased, event.TileSelected, event.OriginChanged, event.MapCleared, event.SettingsChanged)

	return &EditorState{
		sm:         sm,
		editor:     editor,
		renderer:   renderer,
		status:     status,
		configPath: configPath,
	}, nil
}

func styleFor(s *config.MapSettings) render.Style {
	return render.Style{
		ShowOutlines:    s.Outlines(),
		OutlineWidth:    float32(s.OutlineWidth),
		ShowCoordinates: s.ShowCoordinates,
	}
}

func (g *EditorState) Enter() {
	log.Printf("[editor] %d tiles, hex size %.1f", len(g.editor.Map.Tiles), g.editor.Settings.HexSize)
}

func (g *EditorState) Exit() {}

func (g *EditorState) Update(deltaTime float64) error {
	e := g.editor
	hover, cx, cy := e.Picker().Cursor()

	for i, key := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.report(e.SelectTileType(hexmap.TileTypes[i]))
		}
	}

	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		e.Paint(hover, e.Settings.SelectedTileType)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		e.Erase(hover)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		e.Select(hover)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		e.SetOrigin(hover)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		e.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.report(e.RotateLayout(-rotationStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.report(e.RotateLayout(rotationStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(e.RotateHexes(rotationStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		next := *e.Settings
		next.ShowCoordinates = !next.ShowCoordinates
		g.report(e.ApplySettings(&next))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		next := *e.Settings
		on := !next.Outlines()
		next.ShowOutlines = &on
		g.report(e.ApplySettings(&next))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.configPath != "" {
		g.reload()
	}

	view := e.View()
	step := config.PanSpeed * deltaTime
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		view = view.Pan(step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		view = view.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		view = view.Pan(0, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		view = view.Pan(0, -step)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		view = view.ZoomAt(wy, float64(cx), float64(cy))
	}
	e.SetView(view)

	g.renderer.SetLayout(e.Layout())
	g.renderer.SetStyle(styleFor(e.Settings))
	g.status.Hover = hover
	g.status.Brush = e.Settings.SelectedTileType
	g.status.Zoom = view.Scale()
	return nil
}

func (g *EditorState) reload() {
	s, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("[editor] reload failed: %v", err)
		return
	}
	g.report(g.editor.ApplySettings(s))
}

func (g *EditorState) report(err error) {
	if err != nil {
		log.Printf("[editor] %v", err)
	}
}

func (g *EditorState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.editor.Map, g.editor.View(), g.highlights())
	g.status.Draw(screen)
}

func (g *EditorState) highlights() map[hexmap.Hex]color.RGBA {
	sel, ok := g.editor.Selection()
	if !ok {
		return nil
	}
	out := make(map[hexmap.Hex]color.RGBA, len(sel.Surrounding)+1)
	for _, st := range sel.Surrounding {
		if st.Distance >= 1 && st.Distance <= len(render.SurroundingColors) {
			out[st.Hex] = render.SurroundingColors[st.Distance-1]
		}
	}
	out[sel.Hex] = render.SelectionColor
	return out
}
