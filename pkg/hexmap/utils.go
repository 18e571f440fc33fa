// pkg/hexmap/utils.go
package hexmap

import "math"

// Sqrt3 is the height-to-radius ratio of a flat-top hexagon.
const Sqrt3 = 1.7320508075688772935274463415059

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf,
// so -0.5 becomes 0 and 0.5 becomes 1. Every pixel and cube rounding goes through it.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func rotateRaw(x, y, deg float64) (float64, float64) {
	rad := degToRad(deg)
	cos, sin := math.Cos(rad), math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// rotate turns (x, y) about the origin by deg degrees and snaps the result to the pixel grid.
func rotate(x, y, deg float64) (float64, float64) {
	rx, ry := rotateRaw(x, y, deg)
	return roundHalfUp(rx), roundHalfUp(ry)
}

// RotatePoint rotates (x, y) by angleDeg degrees around (cx, cy) and returns the pixel-rounded result.
func RotatePoint(x, y, angleDeg, cx, cy float64) Point {
	rx, ry := rotateRaw(x-cx, y-cy, angleDeg)
	return Point{X: int(roundHalfUp(rx + cx)), Y: int(roundHalfUp(ry + cy))}
}

// cubeRound snaps fractional cube coordinates to the nearest cube cell.
// The component with the largest rounding error is rebuilt from the other two.
func cubeRound(q, r, s float64) (rq, rr, rs float64) {
	rq = roundHalfUp(q)
	rr = roundHalfUp(r)
	rs = roundHalfUp(s)
	qd := math.Abs(rq - q)
	rd := math.Abs(rr - r)
	sd := math.Abs(rs - s)
	if qd > rd && qd > sd {
		rq = -rr - rs
	} else if rd > sd {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}
	return rq, rr, rs
}

// HexRound returns the cell whose center is nearest to the fractional axial coordinate (q, r).
func HexRound(q, r float64) Hex {
	rq, rr, _ := cubeRound(q, r, -q-r)
	return Hex{Q: int(rq), R: int(rr)}
}
