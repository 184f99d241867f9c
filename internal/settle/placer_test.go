package settle

import (
	"math"
	"testing"

	"terra-gen/internal/core"
	"terra-gen/internal/terrain"
	rng "terra-gen/pkg/core"
)

func uniformTiles(w, h int, kind terrain.TileKind) *core.ByteGrid {
	tiles := core.NewByteGrid(w, h)
	cells := tiles.Cells()
	for i := range cells {
		cells[i] = uint8(kind)
	}
	return tiles
}

func TestPlacementOnGrassBand(t *testing.T) {
	tiles := uniformTiles(20, 20, terrain.TileWater)
	cells := tiles.Cells()
	for y := 5; y < 15; y++ {
		for x := 0; x < 20; x++ {
			cells[tiles.Index(x, y)] = uint8(terrain.TileGrass)
		}
	}

	params := DefaultParams()
	params.FamilyCount = 3
	res := Place(tiles, params, rng.NewRNG(99))

	if res.Placed != 3 {
		t.Fatalf("placed %d families on a plentiful grass band, want 3", res.Placed)
	}
	if res.Shortfall() != 0 {
		t.Fatalf("unexpected shortfall %d", res.Shortfall())
	}
	for fi, fam := range res.Families {
		for mi, m := range fam.Members {
			onGrass := terrain.TileKind(cells[tiles.Index(m.X, m.Y)]) == terrain.TileGrass
			atAnchor := m.X == fam.AnchorX && m.Y == fam.AnchorY
			if !onGrass && !atAnchor {
				t.Fatalf("family %d member %d at (%d,%d) is neither on grass nor at its anchor", fi, mi, m.X, m.Y)
			}
		}
	}
}

func TestSingleFamilyOfThreeScenario(t *testing.T) {
	// A constant height of 0.5 classifies as grass everywhere.
	hf := terrain.NewHeightfield(10, 10)
	hf.Fill(0.5)
	tiles := core.NewByteGrid(10, 10)
	terrain.ClassifyGrid(hf, tiles)

	params := DefaultParams()
	params.FamilyCount = 1
	params.MembersMin = 3
	params.MembersMax = 3
	params.MemberAttempts = 200

	res := Place(tiles, params, rng.NewRNG(5))

	if len(res.Families) != 1 {
		t.Fatalf("placed %d families, want exactly 1", len(res.Families))
	}
	fam := res.Families[0]
	if len(fam.Members) != 3 {
		t.Fatalf("family has %d members, want 3", len(fam.Members))
	}

	seen := map[[2]int]bool{}
	ids := map[int]bool{}
	for _, m := range fam.Members {
		pos := [2]int{m.X, m.Y}
		if seen[pos] {
			t.Fatalf("duplicate member position (%d,%d)", m.X, m.Y)
		}
		seen[pos] = true
		ids[m.ID] = true

		dist := math.Hypot(float64(m.X-fam.AnchorX), float64(m.Y-fam.AnchorY))
		if dist > params.MemberRadius+1 {
			t.Fatalf("member at (%d,%d) lies %g from anchor, radius is %g", m.X, m.Y, dist, params.MemberRadius)
		}
	}

	for _, m := range fam.Members {
		if len(m.Siblings) != 2 {
			t.Fatalf("member %d has %d siblings, want 2", m.ID, len(m.Siblings))
		}
		for _, sid := range m.Siblings {
			if sid == m.ID {
				t.Fatalf("member %d lists itself as a sibling", m.ID)
			}
			if !ids[sid] {
				t.Fatalf("member %d lists unknown sibling %d", m.ID, sid)
			}
		}
	}
}

func TestShortfallReportedOnBarrenMap(t *testing.T) {
	tiles := uniformTiles(16, 16, terrain.TileWater)

	params := DefaultParams()
	params.FamilyCount = 2
	res := Place(tiles, params, rng.NewRNG(1))

	if res.Placed != 0 {
		t.Fatalf("placed %d families on open water", res.Placed)
	}
	if res.Shortfall() != 2 {
		t.Fatalf("shortfall = %d, want 2", res.Shortfall())
	}
}

func TestZeroFamiliesRequested(t *testing.T) {
	tiles := uniformTiles(8, 8, terrain.TileGrass)
	params := DefaultParams()
	params.FamilyCount = 0
	res := Place(tiles, params, rng.NewRNG(1))
	if len(res.Families) != 0 || res.Shortfall() != 0 {
		t.Fatalf("expected empty placement, got %+v", res)
	}
}
