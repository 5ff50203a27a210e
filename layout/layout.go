// Package layout builds the obstacle masks and resource grid the colony runs on,
// either procedurally or from grayscale images.
package layout

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/antcolony/config"
	"github.com/pthm-cable/antcolony/systems"
)

// Layout is the externally supplied environment: two obstacle masks and a
// resource density grid, all width×width, row-major.
type Layout struct {
	Width    int
	MaskA    []float64
	MaskB    []float64
	Resource []float64
}

// Generate builds a layout from cfg.
//
// Both masks start fully open. Square barrier rings are drawn around the
// nest every BarrierSpacing cells. Each ring has two gates; mask A opens the
// north/south gates on odd rings and east/west gates on even rings, mask B
// the reverse, so the open route to any patch changes every switch period.
// Resource patches come from thresholded simplex noise and keep clear of
// the nest and of barrier cells. Each patch cell holds the multiplier rounded
// to whole units.
func Generate(cfg *config.Config, seed int64) *Layout {
	w := cfg.World.Size
	lc := cfg.Layout
	nest := systems.NestFromRect(cfg.Derived.Nest)

	l := &Layout{
		Width:    w,
		MaskA:    make([]float64, w*w),
		MaskB:    make([]float64, w*w),
		Resource: make([]float64, w*w),
	}
	for i := range l.MaskA {
		l.MaskA[i] = 1
		l.MaskB[i] = 1
	}

	if lc.BarrierSpacing > 0 {
		drawBarriers(l, nest, lc.BarrierSpacing, lc.GateWidth)
	}

	units := math.Round(cfg.Resource.Multiplier)
	noise := opensimplex.NewNormalized(seed)
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if l.MaskA[i] <= 0 || l.MaskB[i] <= 0 {
				continue
			}
			if nest.Distance(x, y) <= lc.NestClearance {
				continue
			}
			if noise.Eval2(float64(x)*lc.NoiseScale, float64(y)*lc.NoiseScale) > lc.PatchThreshold {
				l.Resource[i] = units
			}
		}
	}

	return l
}

// drawBarriers closes ring cells at chebyshev distance k*spacing from the nest
// and opens gates of the given width on the ring's axes.
func drawBarriers(l *Layout, nest systems.Nest, spacing, gate int) {
	w := l.Width
	cx, cy := nest.Center()
	half := gate / 2

	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			d := nest.Distance(x, y)
			if d == 0 || d%spacing != 0 {
				continue
			}
			ring := d / spacing

			onVertical := x >= cx-half && x <= cx+half   // north/south gates
			onHorizontal := y >= cy-half && y <= cy+half // east/west gates

			openA := onHorizontal
			openB := onVertical
			if ring%2 == 1 {
				openA, openB = onVertical, onHorizontal
			}

			i := y*w + x
			if !openA {
				l.MaskA[i] = 0
			}
			if !openB {
				l.MaskB[i] = 0
			}
		}
	}
}

// Open returns a layout with no obstacles and no resource.
func Open(width int) *Layout {
	l := &Layout{
		Width:    width,
		MaskA:    make([]float64, width*width),
		MaskB:    make([]float64, width*width),
		Resource: make([]float64, width*width),
	}
	for i := range l.MaskA {
		l.MaskA[i] = 1
		l.MaskB[i] = 1
	}
	return l
}
