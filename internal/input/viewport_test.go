package input

import (
	"math"
	"testing"

	"hex-map-editor/pkg/hexmap"
)

func TestScreenWorldInverse(t *testing.T) {
	v := Viewport{OffsetX: 600, OffsetY: 450, Zoom: 2}
	x, y := v.ScreenToWorld(700, 350)
	if x != 50 || y != -50 {
		t.Fatalf("unexpected world point %v,%v", x, y)
	}
	sx, sy := v.WorldToScreen(x, y)
	if sx != 700 || sy != 350 {
		t.Fatalf("unexpected screen point %v,%v", sx, sy)
	}
}

func TestZeroZoomTreatedAsOne(t *testing.T) {
	v := Viewport{OffsetX: 10}
	if x, _ := v.ScreenToWorld(15, 0); x != 5 {
		t.Fatalf("expected 5, got %v", x)
	}
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	v := Viewport{OffsetX: 100, OffsetY: -40, Zoom: 1}
	wx, wy := v.ScreenToWorld(320, 200)
	for i := 0; i < 5; i++ {
		v = v.ZoomAt(1, 320, 200)
	}
	if math.Abs(v.Zoom-math.Pow(1.1, 5)) > 1e-9 {
		t.Fatalf("unexpected zoom %v", v.Zoom)
	}
	ax, ay := v.ScreenToWorld(320, 200)
	if math.Abs(ax-wx) > 1e-9 || math.Abs(ay-wy) > 1e-9 {
		t.Fatalf("anchor moved from %v,%v to %v,%v", wx, wy, ax, ay)
	}
}

func TestZoomClamped(t *testing.T) {
	v := Viewport{Zoom: 1}
	for i := 0; i < 100; i++ {
		v = v.ZoomAt(-1, 0, 0)
	}
	if v.Zoom != MinZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MinZoom, v.Zoom)
	}
	for i := 0; i < 100; i++ {
		v = v.ZoomAt(1, 0, 0)
	}
	if v.Zoom != MaxZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MaxZoom, v.Zoom)
	}
	if got := v.ZoomAt(0, 5, 5); got != v {
		t.Fatal("zero wheel must not change the view")
	}
}

func TestVisible(t *testing.T) {
	v := Viewport{OffsetX: 100, OffsetY: 100, Zoom: 1}
	if !v.Visible(0, 0, 800, 600, 0) {
		t.Fatal("origin should be visible")
	}
	if v.Visible(-150, 0, 800, 600, 0) {
		t.Fatal("point left of the screen should be hidden")
	}
	if !v.Visible(-150, 0, 800, 600, 60) {
		t.Fatal("buffer should include nearby point")
	}
}

func TestPickerPick(t *testing.T) {
	layout := hexmap.Layout{HexSize: 30}
	p := Picker{Layout: layout, View: Viewport{OffsetX: 600, OffsetY: 450, Zoom: 1}}
	if got := p.Pick(645, 476); got != (hexmap.Hex{Q: 1, R: 0}) {
		t.Fatalf("expected 1,0 got %v", got)
	}

	p.View = Viewport{OffsetX: 600, OffsetY: 450, Zoom: 2}
	for _, h := range []hexmap.Hex{{Q: 0, R: 1}, {Q: -3, R: 2}, {Q: 4, R: -4}} {
		c := layout.HexToPixel(h)
		sx, sy := p.View.WorldToScreen(float64(c.X), float64(c.Y))
		if got := p.Pick(int(sx), int(sy)); got != h {
			t.Errorf("zoomed pick of %v gave %v", h, got)
		}
	}
}
