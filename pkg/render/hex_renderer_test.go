package render

import (
	"testing"

	"hex-map-editor/internal/input"
	"hex-map-editor/pkg/hexmap"
)

func TestScreenCorners(t *testing.T) {
	layout := hexmap.Layout{HexSize: 30}
	view := input.Viewport{OffsetX: 100, OffsetY: 50, Zoom: 2}
	corners := ScreenCorners(layout.Corners(hexmap.Hex{Q: 1, R: 0}), view)

	// Corner 0 of (1,0) is (45+30, 26) in world space.
	if corners[0] != [2]float32{100 + 75*2, 50 + 26*2} {
		t.Fatalf("unexpected first corner %v", corners[0])
	}
	if corners[3] != [2]float32{100 + 15*2, 50 + 26*2} {
		t.Fatalf("unexpected opposite corner %v", corners[3])
	}
}

func TestLabelOriginCentersText(t *testing.T) {
	face, err := NewLabelFace(labelFontSize)
	if err != nil {
		t.Fatalf("unexpected font error: %v", err)
	}
	x, y := LabelOrigin(face, "-12,7", 200, 100)
	if x >= 200 || x < 170 {
		t.Fatalf("label x %d not left of center", x)
	}
	if y <= 100 || y > 110 {
		t.Fatalf("label baseline %d not just below center", y)
	}
}

func TestTileColors(t *testing.T) {
	for _, tt := range hexmap.TileTypes {
		if _, ok := TileColors[tt]; !ok {
			t.Errorf("no color for %q", tt)
		}
	}
	if TileColor("lava") != unknownColor {
		t.Fatal("unknown type should use the fallback color")
	}
	if LabelColor(TileColor(hexmap.Snow)) != TextDarkColor {
		t.Fatal("snow needs dark labels")
	}
	if LabelColor(TileColor(hexmap.Void)) != TextLightColor {
		t.Fatal("void needs light labels")
	}
}
