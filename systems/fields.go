package systems

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/antcolony/config"
)

// MaskID selects one of the two obstacle layouts.
type MaskID uint8

const (
	MaskA MaskID = iota
	MaskB
)

func (m MaskID) String() string {
	if m == MaskA {
		return "A"
	}
	return "B"
}

// ActiveMask returns the obstacle layout in force at tick.
// Mask A is used for even switch periods, mask B for odd ones.
func ActiveMask(tick, switchPeriod int) MaskID {
	if (tick/switchPeriod)%2 == 0 {
		return MaskA
	}
	return MaskB
}

// Fields holds every per-cell layer of the grid, row-major (id = y*W + x).
type Fields struct {
	W int

	FoodPheromone    []float64 // laid by returning ants
	HomePheromone    []float64 // laid by foraging ants
	Resource         []float64 // depletable, integer-valued
	ResourceTemplate []float64 // restored wholesale on replenishment ticks
	MaskA            []float64 // passable where > 0
	MaskB            []float64
}

// NewFields builds the grid from externally supplied layers.
// All layers must hold width*width cells. Inputs are copied; the resource
// template is a snapshot of resource.
func NewFields(width int, maskA, maskB, resource []float64) (*Fields, error) {
	if width <= 0 {
		return nil, config.Errorf("world.size", "must be positive, got %d", width)
	}
	n := width * width
	for _, layer := range []struct {
		name string
		data []float64
	}{
		{"mask_a", maskA},
		{"mask_b", maskB},
		{"resource", resource},
	} {
		if len(layer.data) != n {
			return nil, config.Errorf(layer.name, "has %d cells, want %d for a %dx%d grid", len(layer.data), n, width, width)
		}
	}
	for i, v := range resource {
		if v < 0 || v != math.Trunc(v) {
			return nil, config.Errorf("resource", "cell (%d,%d) holds %g, want a whole number of units", i%width, i/width, v)
		}
	}

	f := &Fields{
		W:                width,
		FoodPheromone:    make([]float64, n),
		HomePheromone:    make([]float64, n),
		Resource:         append([]float64(nil), resource...),
		ResourceTemplate: append([]float64(nil), resource...),
		MaskA:            append([]float64(nil), maskA...),
		MaskB:            append([]float64(nil), maskB...),
	}
	return f, nil
}

// ID maps a cell to its row-major index. Out-of-bounds cells are an invariant
// violation.
func (f *Fields) ID(x, y int) int {
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("systems: cell (%d,%d) outside %dx%d grid", x, y, f.W, f.W))
	}
	return y*f.W + x
}

// InBounds reports whether (x, y) lies on the grid.
func (f *Fields) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.W
}

// Mask returns the obstacle layer for id.
func (f *Fields) Mask(id MaskID) []float64 {
	if id == MaskA {
		return f.MaskA
	}
	return f.MaskB
}

// Passable reports whether (x, y) is on the grid and open under mask.
func (f *Fields) Passable(mask []float64, x, y int) bool {
	return f.InBounds(x, y) && mask[y*f.W+x] > 0
}

// Replenish overwrites the resource layer with the template.
func (f *Fields) Replenish() {
	copy(f.Resource, f.ResourceTemplate)
}

// FieldTotals sums each mutable layer.
type FieldTotals struct {
	Food     float64
	Home     float64
	Resource float64
	Template float64
}

// Totals returns the sum of each layer.
func (f *Fields) Totals() FieldTotals {
	return FieldTotals{
		Food:     floats.Sum(f.FoodPheromone),
		Home:     floats.Sum(f.HomePheromone),
		Resource: floats.Sum(f.Resource),
		Template: floats.Sum(f.ResourceTemplate),
	}
}

// FoodView returns a copy of the food trail as a W×W matrix (row = y).
func (f *Fields) FoodView() *mat.Dense {
	return f.view(f.FoodPheromone)
}

// HomeView returns a copy of the home trail as a W×W matrix (row = y).
func (f *Fields) HomeView() *mat.Dense {
	return f.view(f.HomePheromone)
}

// ResourceView returns a copy of the resource layer as a W×W matrix (row = y).
func (f *Fields) ResourceView() *mat.Dense {
	return f.view(f.Resource)
}

// MaskView returns a copy of an obstacle layer as a W×W matrix (row = y).
func (f *Fields) MaskView(id MaskID) *mat.Dense {
	return f.view(f.Mask(id))
}

func (f *Fields) view(layer []float64) *mat.Dense {
	return mat.NewDense(f.W, f.W, append([]float64(nil), layer...))
}
