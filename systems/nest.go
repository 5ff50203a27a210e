package systems

import "github.com/pthm-cable/antcolony/config"

// Nest is the inclusive rectangle where returning ants drop off resource.
type Nest struct {
	MinX, MinY, MaxX, MaxY int
}

// NestFromRect converts a configured rectangle.
func NestFromRect(r config.Rect) Nest {
	return Nest{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

// CenteredNest returns the (2*halfWidth+1)² block around the grid centre.
func CenteredNest(width, halfWidth int) Nest {
	c := width / 2
	return Nest{MinX: c - halfWidth, MinY: c - halfWidth, MaxX: c + halfWidth, MaxY: c + halfWidth}
}

// Contains reports whether (x, y) is inside the nest.
func (n Nest) Contains(x, y int) bool {
	return x >= n.MinX && x <= n.MaxX && y >= n.MinY && y <= n.MaxY
}

// Center returns the middle cell.
func (n Nest) Center() (int, int) {
	return (n.MinX + n.MaxX) / 2, (n.MinY + n.MaxY) / 2
}

// Distance is the chebyshev distance from (x, y) to the nearest nest cell,
// 0 inside the nest.
func (n Nest) Distance(x, y int) int {
	dx := max(n.MinX-x, 0, x-n.MaxX)
	dy := max(n.MinY-y, 0, y-n.MaxY)
	return max(dx, dy)
}
