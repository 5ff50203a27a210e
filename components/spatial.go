package components

// Position is an ant's grid cell.
type Position struct {
	X, Y int
}

// Direction is the last move vector. Each component is -1, 0 or 1;
// (0,0) means the ant did not move on its last tick.
type Direction struct {
	DX, DY int
}

// Zero reports whether the ant has no heading.
func (d Direction) Zero() bool {
	return d.DX == 0 && d.DY == 0
}

// Reset clears the heading so the next tick scans the full neighbourhood.
func (d *Direction) Reset() {
	d.DX, d.DY = 0, 0
}
