// pkg/hexmap/hex.go
package hexmap

import "fmt"

// Hex is a cell address in axial coordinates (Q, R) of a flat-top layout.
// The implied cube coordinate S is -Q-R.
type Hex struct {
	Q, R int
}

// NeighborDirections lists the six axial steps, starting East and going counter-clockwise on screen.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// S returns the third cube component.
func (h Hex) S() int {
	return -h.Q - h.R
}

func (h Hex) String() string {
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// Add returns h+other in axial space.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Subtract returns h-other in axial space.
func (h Hex) Subtract(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{Q: h.Q * factor, R: h.R * factor}
}

// Distance is the number of steps between two cells.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// AllPossibleNeighbors returns the six adjacent cells, whether or not a map holds them.
func (h Hex) AllPossibleNeighbors() []Hex {
	out := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		out = append(out, h.Add(d))
	}
	return out
}

// Ring returns the cells at exactly radius steps from h, walking the ring counter-clockwise.
// Radius 0 yields h itself.
func (h Hex) Ring(radius int) []Hex {
	if radius <= 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, 6*radius)
	cur := h.Add(NeighborDirections[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			results = append(results, cur)
			cur = cur.Add(NeighborDirections[side])
		}
	}
	return results
}

// Spiral returns h followed by every ring up to radius.
func (h Hex) Spiral(radius int) []Hex {
	results := []Hex{h}
	for k := 1; k <= radius; k++ {
		results = append(results, h.Ring(k)...)
	}
	return results
}
