// pkg/hexmap/layout.go
package hexmap

import "math"

// Layout carries the grid parameters shared by the forward and inverse projections.
// The same Layout must be used for drawing and for picking, otherwise clicks land on the wrong cell.
type Layout struct {
	HexSize           float64 // corner radius in pixels, must be > 0
	HorizontalSpacing float64 // extra gap between columns
	VerticalSpacing   float64 // extra gap between rows
	LayoutRotation    float64 // degrees, rotates the whole grid about the origin
	Rotation          float64 // degrees, rotates each hexagon's corners only
}

// ComputeSpacing returns the distance between neighboring column centers (spacingX)
// and between neighboring row centers (spacingY) of a flat-top grid.
// A non-positive hexSize yields zero spacing; callers validate the size.
func ComputeSpacing(hexSize, horizontalSpacing, verticalSpacing float64) (spacingX, spacingY float64) {
	if hexSize <= 0 {
		return 0, 0
	}
	spacingX = 1.5*hexSize + horizontalSpacing
	spacingY = Sqrt3*hexSize + verticalSpacing
	return spacingX, spacingY
}

// HexToPixel returns the pixel center of h.
// The unrotated position is snapped to whole pixels first; layout rotation is applied to the
// snapped position and snapped again, which keeps the unrotated grid exact.
func HexToPixel(h Hex, hexSize, horizontalSpacing, verticalSpacing, layoutRotation float64) Point {
	spacingX, spacingY := ComputeSpacing(hexSize, horizontalSpacing, verticalSpacing)

	q, r := float64(h.Q), float64(h.R)
	x := roundHalfUp(q * spacingX)
	y := roundHalfUp(r*spacingY + q*(spacingY/2))

	if layoutRotation != 0 {
		x, y = rotate(x, y, layoutRotation)
	}
	return Point{X: int(x), Y: int(y)}
}

// PixelToHex returns the cell under the pixel (x, y).
// The input is snapped to whole pixels, un-rotated by layoutRotation (and snapped again),
// then the forward projection is inverted and the fractional result cube-rounded.
func PixelToHex(x, y, hexSize, horizontalSpacing, verticalSpacing, layoutRotation float64) Hex {
	px, py := roundHalfUp(x), roundHalfUp(y)

	if layoutRotation != 0 {
		px, py = rotate(px, py, -layoutRotation)
	}

	spacingX, spacingY := ComputeSpacing(hexSize, horizontalSpacing, verticalSpacing)
	q := px / spacingX
	r := (py - q*(spacingY/2)) / spacingY
	return HexRound(q, r)
}

// HexPoints returns the six corners of an origin-centered hexagon of radius hexSize.
// Corner i sits at i*60+rotation degrees, so rotation 0 gives a flat-top hexagon with
// its first corner due east.
func HexPoints(hexSize, rotation float64) Polygon {
	var poly Polygon
	for i := range poly {
		angle := degToRad(float64(i)*60 + rotation)
		poly[i] = Point{
			X: int(roundHalfUp(hexSize * math.Cos(angle))),
			Y: int(roundHalfUp(hexSize * math.Sin(angle))),
		}
	}
	return poly
}

// Spacing is ComputeSpacing for this layout.
func (l Layout) Spacing() (spacingX, spacingY float64) {
	return ComputeSpacing(l.HexSize, l.HorizontalSpacing, l.VerticalSpacing)
}

// HexToPixel projects h with this layout.
func (l Layout) HexToPixel(h Hex) Point {
	return HexToPixel(h, l.HexSize, l.HorizontalSpacing, l.VerticalSpacing, l.LayoutRotation)
}

// PixelToHex picks the cell under (x, y) with this layout.
func (l Layout) PixelToHex(x, y float64) Hex {
	return PixelToHex(x, y, l.HexSize, l.HorizontalSpacing, l.VerticalSpacing, l.LayoutRotation)
}

// HexPoints is the origin-centered outline for this layout's size and per-hex rotation.
func (l Layout) HexPoints() Polygon {
	return HexPoints(l.HexSize, l.Rotation)
}

// Corners returns the outline of h placed at its projected center.
func (l Layout) Corners(h Hex) Polygon {
	return l.HexPoints().Translate(l.HexToPixel(h))
}
