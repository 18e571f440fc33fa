// internal/input/viewport.go
package input

const (
	MinZoom = 0.1
	MaxZoom = 5.0

	zoomInFactor  = 1.1
	zoomOutFactor = 0.9
)

// Viewport maps between screen pixels and world pixels: screen = world*Zoom + Offset.
type Viewport struct {
	OffsetX, OffsetY float64
	Zoom             float64
}

// Scale is the effective zoom; an unset zoom counts as 1.
func (v Viewport) Scale() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// ScreenToWorld converts a cursor position into the coordinates the hex projection works in.
func (v Viewport) ScreenToWorld(sx, sy float64) (x, y float64) {
	z := v.Scale()
	return (sx - v.OffsetX) / z, (sy - v.OffsetY) / z
}

// WorldToScreen is the inverse of ScreenToWorld.
func (v Viewport) WorldToScreen(x, y float64) (sx, sy float64) {
	z := v.Scale()
	return x*z + v.OffsetX, y*z + v.OffsetY
}

// Pan shifts the view by a screen-space delta.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// ZoomAt applies one wheel step (positive wheel zooms in) keeping the world point under (sx, sy) fixed.
func (v Viewport) ZoomAt(wheel, sx, sy float64) Viewport {
	if wheel == 0 {
		return v
	}
	factor := zoomOutFactor
	if wheel > 0 {
		factor = zoomInFactor
	}
	cur := v.Scale()
	next := min(MaxZoom, max(MinZoom, cur*factor))
	if next == cur {
		return v
	}
	k := next / cur
	v.OffsetX = sx - (sx-v.OffsetX)*k
	v.OffsetY = sy - (sy-v.OffsetY)*k
	v.Zoom = next
	return v
}

// Visible reports whether the world point (x, y) falls inside a screen of the given size,
// grown by buffer world pixels on every side.
func (v Viewport) Visible(x, y float64, screenW, screenH int, buffer float64) bool {
	z := v.Scale()
	left := -v.OffsetX / z
	top := -v.OffsetY / z
	right := left + float64(screenW)/z
	bottom := top + float64(screenH)/z
	return x >= left-buffer && x <= right+buffer && y >= top-buffer && y <= bottom+buffer
}
