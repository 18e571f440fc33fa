// pkg/hexmap/point.go
package hexmap

// Point is a pixel position on the drawing surface.
type Point struct {
	X, Y int
}

// Add offsets p by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Polygon holds the six corners of one hexagon.
type Polygon [6]Point

// Translate moves every corner by center, turning an origin-centered outline into a placed one.
func (poly Polygon) Translate(center Point) Polygon {
	var out Polygon
	for i, p := range poly {
		out[i] = p.Add(center)
	}
	return out
}
