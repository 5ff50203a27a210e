package systems

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianBlur smooths a square row-major grid with a separable Gaussian
// kernel truncated at 4 sigma. Edges use half-sample reflection
// (d c b a | a b c d | d c b a).
type GaussianBlur struct {
	W      int
	Sigma  float64
	radius int
	kernel []float64
	tmp    []float64
}

// NewGaussianBlur builds a blur for a width×width grid.
func NewGaussianBlur(width int, sigma float64) *GaussianBlur {
	radius := int(4*sigma + 0.5)
	norm := distuv.Normal{Mu: 0, Sigma: sigma}

	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		kernel[i] = norm.Prob(float64(i - radius))
	}
	floats.Scale(1/floats.Sum(kernel), kernel)

	return &GaussianBlur{
		W:      width,
		Sigma:  sigma,
		radius: radius,
		kernel: kernel,
		tmp:    make([]float64, width*width),
	}
}

// Kernel returns the normalised 1-D weights.
func (g *GaussianBlur) Kernel() []float64 {
	return g.kernel
}

// Apply writes the blurred src into dst. dst and src may alias.
func (g *GaussianBlur) Apply(dst, src []float64) {
	w, r := g.W, g.radius

	// Horizontal pass: src -> tmp
	for y := 0; y < w; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for k := -r; k <= r; k++ {
				sum += g.kernel[k+r] * src[row+reflectIndex(x+k, w)]
			}
			g.tmp[row+x] = sum
		}
	}

	// Vertical pass: tmp -> dst
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -r; k <= r; k++ {
				sum += g.kernel[k+r] * g.tmp[reflectIndex(y+k, w)*w+x]
			}
			dst[y*w+x] = sum
		}
	}
}

// reflectIndex folds i back into [0, n) by half-sample reflection.
func reflectIndex(i, n int) int {
	for {
		switch {
		case i < 0:
			i = -i - 1
		case i >= n:
			i = 2*n - i - 1
		default:
			return i
		}
	}
}
