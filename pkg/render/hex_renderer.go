// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image"
	"image/color"

	"hex-map-editor/internal/input"
	"hex-map-editor/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const labelFontSize = 10

// Style switches the optional parts of a frame.
type Style struct {
	ShowOutlines    bool
	OutlineWidth    float32
	ShowCoordinates bool
}

type HexRenderer struct {
	layout       hexmap.Layout
	style        Style
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
}

func NewHexRenderer(layout hexmap.Layout, style Style, screenWidth, screenHeight int) (*HexRenderer, error) {
	face, err := NewLabelFace(labelFontSize)
	if err != nil {
		return nil, err
	}

	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)
	// Anti-aliased triangles must not sample the image edge.
	fillImg := whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	return &HexRenderer{
		layout:       layout,
		style:        style,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     face,
	}, nil
}

// NewLabelFace loads the coordinate label font.
func NewLabelFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create label face: %w", err)
	}
	return face, nil
}

func (r *HexRenderer) SetLayout(layout hexmap.Layout) { r.layout = layout }
func (r *HexRenderer) SetStyle(style Style)           { r.style = style }

// Draw paints every non-void tile of hm that is on screen, then outlines the highlighted cells.
func (r *HexRenderer) Draw(screen *ebiten.Image, hm *hexmap.HexMap, view input.Viewport, highlights map[hexmap.Hex]color.RGBA) {
	screen.Fill(BackgroundColor)

	buffer := 2 * r.layout.HexSize
	for _, hex := range hm.Sorted() {
		tile := hm.Tiles[hex]
		if tile.Type == hexmap.Void {
			continue
		}
		center := r.layout.HexToPixel(hex)
		if !view.Visible(float64(center.X), float64(center.Y), r.screenWidth, r.screenHeight, buffer) {
			continue
		}
		fill := TileColor(tile.Type)
		path := HexPath(r.layout.Corners(hex), view)
		r.drawFill(screen, &path, fill)
		if r.style.ShowOutlines {
			r.drawStroke(screen, &path, DarkenColor(fill), r.style.OutlineWidth*float32(view.Scale()))
		}
		if r.style.ShowCoordinates {
			r.drawLabel(screen, hex, center, view, LabelColor(fill))
		}
	}

	for hex, c := range highlights {
		path := HexPath(r.layout.Corners(hex), view)
		r.drawStroke(screen, &path, c, max(2, r.style.OutlineWidth)*float32(view.Scale()))
	}
}

// HexPath builds the closed outline of a placed hexagon in screen space.
func HexPath(poly hexmap.Polygon, view input.Viewport) vector.Path {
	path := vector.Path{}
	for i, p := range ScreenCorners(poly, view) {
		if i == 0 {
			path.MoveTo(p[0], p[1])
		} else {
			path.LineTo(p[0], p[1])
		}
	}
	path.Close()
	return path
}

// ScreenCorners converts placed world corners into screen coordinates.
func ScreenCorners(poly hexmap.Polygon, view input.Viewport) [6][2]float32 {
	var out [6][2]float32
	for i, p := range poly {
		sx, sy := view.WorldToScreen(float64(p.X), float64(p.Y))
		out[i] = [2]float32{float32(sx), float32(sy)}
	}
	return out
}

func (r *HexRenderer) drawFill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorize(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawStroke(target *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinMiter,
	})
	colorize(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawLabel(target *ebiten.Image, hex hexmap.Hex, center hexmap.Point, view input.Viewport, c color.RGBA) {
	sx, sy := view.WorldToScreen(float64(center.X), float64(center.Y))
	label := hex.String()
	x, y := LabelOrigin(r.fontFace, label, int(sx), int(sy))
	text.Draw(target, label, r.fontFace, x, y, c)
}

// LabelOrigin returns the text baseline origin that centers label on (cx, cy).
func LabelOrigin(face font.Face, label string, cx, cy int) (x, y int) {
	bounds, _ := font.BoundString(face, label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	return cx - w/2, cy + h/2
}

func colorize(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
