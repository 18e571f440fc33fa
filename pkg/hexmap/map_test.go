package hexmap

import "testing"

func TestDistanceAndNeighbors(t *testing.T) {
	origin := Hex{}
	for _, n := range origin.AllPossibleNeighbors() {
		if d := origin.Distance(n); d != 1 {
			t.Fatalf("neighbor %v at distance %d", n, d)
		}
	}
	if d := (Hex{Q: 2, R: -1}).Distance(Hex{Q: -1, R: 3}); d != 4 {
		t.Fatalf("expected distance 4, got %d", d)
	}
}

func TestNeighborsAreAdjacentOnScreen(t *testing.T) {
	l := Layout{HexSize: 30}
	c := l.HexToPixel(Hex{Q: 2, R: 3})
	for _, n := range (Hex{Q: 2, R: 3}).AllPossibleNeighbors() {
		p := l.HexToPixel(n)
		dx, dy := p.X-c.X, p.Y-c.Y
		if d2 := dx*dx + dy*dy; d2 < 51*51 || d2 > 53*53 {
			t.Errorf("neighbor %v is %d px² away", n, d2)
		}
	}
}

func TestRing(t *testing.T) {
	center := Hex{Q: 1, R: -2}
	for k := 1; k <= 4; k++ {
		ring := center.Ring(k)
		if len(ring) != 6*k {
			t.Fatalf("ring %d has %d cells", k, len(ring))
		}
		seen := make(map[Hex]bool)
		for _, h := range ring {
			if center.Distance(h) != k {
				t.Fatalf("ring %d contains %v at distance %d", k, h, center.Distance(h))
			}
			if seen[h] {
				t.Fatalf("ring %d repeats %v", k, h)
			}
			seen[h] = true
		}
	}
	if got := center.Spiral(2); len(got) != 1+6+12 {
		t.Fatalf("spiral of radius 2 has %d cells", len(got))
	}
}

func TestNewHexMap(t *testing.T) {
	hm := NewHexMap(3, Grass)
	if len(hm.Tiles) != 37 {
		t.Fatalf("expected 37 tiles, got %d", len(hm.Tiles))
	}
	if tile, ok := hm.Get(Hex{Q: 3, R: -3}); !ok || tile.Type != Grass {
		t.Fatalf("corner tile missing or wrong: %+v %v", tile, ok)
	}
	if _, ok := hm.Get(Hex{Q: 3, R: 1}); ok {
		t.Fatal("tile outside radius must not exist")
	}
}

func TestHexMapEditing(t *testing.T) {
	hm := NewHexMap(1, Grass)
	hm.Set(Hex{Q: 0, R: 0}, Water)
	if tile, _ := hm.Get(Hex{}); tile.Type != Water {
		t.Fatalf("expected water, got %v", tile.Type)
	}
	if !hm.Remove(Hex{Q: 1, R: 0}) {
		t.Fatal("expected remove to report existing tile")
	}
	if hm.Remove(Hex{Q: 1, R: 0}) {
		t.Fatal("second remove must report false")
	}
	if got := len(hm.Neighbors(Hex{})); got != 5 {
		t.Fatalf("expected 5 neighbors after removal, got %d", got)
	}
	sorted := hm.Sorted()
	if sorted[0] != (Hex{Q: 0, R: -1}) {
		t.Fatalf("unexpected first cell %v", sorted[0])
	}
}

func TestRecenter(t *testing.T) {
	hm := NewHexMap(0, Grass)
	hm.Set(Hex{Q: 2, R: 1}, Snow)
	hm.Recenter(Hex{Q: 2, R: 1})
	if tile, ok := hm.Get(Hex{}); !ok || tile.Type != Snow {
		t.Fatalf("recentered origin missing: %+v %v", tile, ok)
	}
	if tile, ok := hm.Get(Hex{Q: -2, R: -1}); !ok || tile.Type != Grass {
		t.Fatalf("old origin not shifted: %+v %v", tile, ok)
	}
}

func TestSurrounding(t *testing.T) {
	hm := NewHexMap(2, Forest)
	hm.Remove(Hex{Q: 1, R: 0})

	got := hm.Surrounding(Hex{}, 1)
	if len(got) != 5 {
		t.Fatalf("expected 5 first-level tiles, got %d", len(got))
	}
	got = hm.Surrounding(Hex{}, 3)
	// 5 at distance 1, 12 at distance 2, nothing beyond the map radius.
	if len(got) != 17 {
		t.Fatalf("expected 17 tiles, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Fatal("surrounding tiles must be ordered nearest ring first")
		}
	}
}

func TestTileTypeValid(t *testing.T) {
	if !Water.Valid() || TileType("lava").Valid() {
		t.Fatal("unexpected validity")
	}
}
