package systems

import "github.com/pthm-cable/antcolony/components"

// offset is a relative Moore-neighbourhood step.
type offset struct{ dx, dy int }

// visionCone maps a last-move vector (indexed by (dx+1)*3 + (dy+1)) to the
// cells an ant considers next. A zero heading sees all 8 neighbours; every
// other heading sees the 3 cells roughly ahead of it. Order matters for
// reproducible random picks.
var visionCone = [9][]offset{
	// dx = -1
	{{-1, 0}, {0, -1}, {-1, -1}}, // (-1,-1)
	{{-1, 0}, {-1, 1}, {-1, -1}}, // (-1, 0)
	{{-1, 0}, {-1, 1}, {0, 1}},   // (-1, 1)
	// dx = 0
	{{1, -1}, {0, -1}, {-1, -1}}, // (0,-1)
	{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}, // (0, 0)
	{{-1, 1}, {0, 1}, {1, 1}}, // (0, 1)
	// dx = 1
	{{1, 0}, {1, -1}, {0, -1}}, // (1,-1)
	{{1, 1}, {1, 0}, {1, -1}},  // (1, 0)
	{{0, 1}, {1, 1}, {1, 0}},   // (1, 1)
}

// coneOffsets returns the cone for a heading.
func coneOffsets(d components.Direction) []offset {
	return visionCone[(d.DX+1)*3+(d.DY+1)]
}

// Cell is a grid coordinate.
type Cell struct{ X, Y int }

// Candidates appends to dst the cells in the vision cone of an ant at pos with
// heading dir that are on the grid and passable under mask.
func (f *Fields) Candidates(dst []Cell, pos components.Position, dir components.Direction, mask []float64) []Cell {
	for _, o := range coneOffsets(dir) {
		x, y := pos.X+o.dx, pos.Y+o.dy
		if f.Passable(mask, x, y) {
			dst = append(dst, Cell{x, y})
		}
	}
	return dst
}
