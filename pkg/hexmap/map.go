// pkg/hexmap/map.go
package hexmap

import "sort"

// TileType names the terrain painted on a cell.
type TileType string

const (
	Grass    TileType = "grass"
	Water    TileType = "water"
	Mountain TileType = "mountain"
	Forest   TileType = "forest"
	Desert   TileType = "desert"
	Snow     TileType = "snow"
	Void     TileType = "void"
)

// TileTypes lists every known type in palette order.
var TileTypes = []TileType{Grass, Water, Mountain, Forest, Desert, Snow, Void}

// Valid reports whether t is one of TileTypes.
func (t TileType) Valid() bool {
	for _, known := range TileTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Tile struct {
	Type TileType
}

// HexMap is the editable set of painted cells. It is owned by the editor;
// the projection functions in this package never read it.
type HexMap struct {
	Tiles  map[Hex]Tile
	Radius int
}

// NewHexMap fills a hexagon-shaped area of the given radius around the origin with fill.
func NewHexMap(radius int, fill TileType) *HexMap {
	tiles := make(map[Hex]Tile)
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			tiles[Hex{Q: q, R: r}] = Tile{Type: fill}
		}
	}
	return &HexMap{Tiles: tiles, Radius: radius}
}

// Get returns the tile at h.
func (hm *HexMap) Get(h Hex) (Tile, bool) {
	t, ok := hm.Tiles[h]
	return t, ok
}

// Set paints h with t, creating the cell if needed.
func (hm *HexMap) Set(h Hex, t TileType) {
	hm.Tiles[h] = Tile{Type: t}
}

// Remove deletes h and reports whether it existed.
func (hm *HexMap) Remove(h Hex) bool {
	if _, ok := hm.Tiles[h]; !ok {
		return false
	}
	delete(hm.Tiles, h)
	return true
}

// Neighbors returns the adjacent cells that exist in the map.
func (hm *HexMap) Neighbors(h Hex) []Hex {
	out := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if _, ok := hm.Tiles[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Sorted returns every cell ordered by R then Q, which gives a stable draw order.
func (hm *HexMap) Sorted() []Hex {
	out := make([]Hex, 0, len(hm.Tiles))
	for h := range hm.Tiles {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].Q < out[j].Q
	})
	return out
}

// Recenter re-keys every tile so that origin becomes (0,0).
func (hm *HexMap) Recenter(origin Hex) {
	moved := make(map[Hex]Tile, len(hm.Tiles))
	for h, t := range hm.Tiles {
		moved[h.Subtract(origin)] = t
	}
	hm.Tiles = moved
}

// SurroundingTile is an existing cell found around a selected one.
type SurroundingTile struct {
	Hex      Hex
	Tile     Tile
	Distance int
}

// Surrounding collects the existing cells at distance 1..levels from center, nearest ring first.
func (hm *HexMap) Surrounding(center Hex, levels int) []SurroundingTile {
	var out []SurroundingTile
	for k := 1; k <= levels; k++ {
		for _, h := range center.Ring(k) {
			if t, ok := hm.Tiles[h]; ok {
				out = append(out, SurroundingTile{Hex: h, Tile: t, Distance: k})
			}
		}
	}
	return out
}
