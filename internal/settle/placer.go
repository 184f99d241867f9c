package settle

import (
	"math"

	"terra-gen/internal/core"
	"terra-gen/internal/terrain"
	rng "terra-gen/pkg/core"
)

// Result reports what placement achieved against what was requested.
type Result struct {
	Families  []Family
	Requested int
	Placed    int
}

// Shortfall returns how many requested families could not be placed.
func (r Result) Shortfall() int { return r.Requested - r.Placed }

var memberNames = []string{
	"Ada", "Bram", "Cole", "Dara", "Edda", "Fenn", "Greta", "Hale",
	"Iris", "Joss", "Kale", "Lena", "Milo", "Nell", "Orin", "Pia",
	"Quinn", "Rosa", "Sten", "Tova", "Ulf", "Vera", "Wren", "Yara",
}

// Place puts family clusters on grass tiles using bounded rejection
// sampling. Placement is best-effort: exhausting the attempt budget returns
// fewer families than requested rather than failing.
//
// The first anchor is sampled map-wide; later anchors prefer a disk around
// the first family's anchor and fall back to a map-wide sample when that
// disk holds no reachable grass. Members settle in a small disk around
// their anchor and fall back to the anchor cell itself.
func Place(tiles *core.ByteGrid, p Params, r *rng.RNG) Result {
	res := Result{Requested: p.FamilyCount}
	if tiles == nil || p.FamilyCount <= 0 {
		return res
	}

	budget := p.AttemptBudget
	var firstX, firstY int
	haveFirst := false
	nextID := 1

	for len(res.Families) < p.FamilyCount && budget > 0 {
		budget--

		var ax, ay int
		var ok bool
		if !haveFirst {
			ax, ay, ok = sampleGrass(tiles, r, p.AnchorAttempts)
		} else {
			ax, ay, ok = sampleGrassInDisk(tiles, r, firstX, firstY, p.AnchorRadius, p.AnchorAttempts, nil)
			if !ok {
				ax, ay, ok = sampleGrass(tiles, r, p.AnchorAttempts)
			}
		}
		if !ok {
			continue
		}
		if !haveFirst {
			firstX, firstY = ax, ay
			haveFirst = true
		}

		size := p.MembersMin
		if p.MembersMax > p.MembersMin {
			size += r.IntN(p.MembersMax - p.MembersMin + 1)
		}

		fam := Family{AnchorX: ax, AnchorY: ay}
		taken := make(map[[2]int]bool, size)
		for m := 0; m < size; m++ {
			mx, my, found := sampleGrassInDisk(tiles, r, ax, ay, p.MemberRadius, p.MemberAttempts, taken)
			if !found {
				mx, my = ax, ay
			}
			taken[[2]int{mx, my}] = true
			fam.Members = append(fam.Members, Member{
				ID:   nextID,
				Name: memberNames[r.IntN(len(memberNames))],
				Age:  16 + r.IntN(50),
				X:    mx,
				Y:    my,
			})
			nextID++
		}
		linkSiblings(fam.Members)
		res.Families = append(res.Families, fam)
	}

	res.Placed = len(res.Families)
	return res
}

func sampleGrass(tiles *core.ByteGrid, r *rng.RNG, attempts int) (int, int, bool) {
	for i := 0; i < attempts; i++ {
		x := r.IntN(tiles.W)
		y := r.IntN(tiles.H)
		if isGrass(tiles, x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

func sampleGrassInDisk(tiles *core.ByteGrid, r *rng.RNG, cx, cy int, radius float64, attempts int, taken map[[2]int]bool) (int, int, bool) {
	for i := 0; i < attempts; i++ {
		dx, dy := r.InDisk(radius)
		x := cx + int(math.Round(dx))
		y := cy + int(math.Round(dy))
		if !tiles.InBounds(x, y) {
			continue
		}
		if taken != nil && taken[[2]int{x, y}] {
			continue
		}
		if isGrass(tiles, x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

func isGrass(tiles *core.ByteGrid, x, y int) bool {
	return terrain.TileKind(tiles.Cells()[tiles.Index(x, y)]) == terrain.TileGrass
}

// linkSiblings records, on every member, the ids of all other members of
// the same family.
func linkSiblings(members []Member) {
	for i := range members {
		for j := range members {
			if i == j {
				continue
			}
			members[i].Siblings = append(members[i].Siblings, members[j].ID)
		}
	}
}
