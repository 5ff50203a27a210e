package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pthm-cable/antcolony/config"
)

// LoadMask reads a grayscale image as an obstacle mask: white is open,
// black is blocked (value = gray/255).
func LoadMask(path string, width int) ([]float64, error) {
	gray, err := loadGray(path, width)
	if err != nil {
		return nil, err
	}
	for i, g := range gray {
		gray[i] = g / 255
	}
	return gray, nil
}

// LoadResource reads a grayscale image as resource density: black is a full
// cell, white is empty. Values are scaled by multiplier and rounded to whole
// units so each pickup removes exactly one.
func LoadResource(path string, width int, multiplier float64) ([]float64, error) {
	gray, err := loadGray(path, width)
	if err != nil {
		return nil, err
	}
	for i, g := range gray {
		gray[i] = math.Round((1 - g/255) * multiplier)
	}
	return gray, nil
}

// loadGray decodes a PNG into row-major gray levels in [0,255].
func loadGray(path string, width int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != width {
		return nil, config.Errorf(path, "image is %dx%d, want %dx%d", b.Dx(), b.Dy(), width, width)
	}

	out := make([]float64, width*width)
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			out[y*width+x] = float64(g.Y)
		}
	}
	return out, nil
}

// WritePNG writes a layer as a grayscale image, mapping [0, maxValue] to
// black..white. maxValue <= 0 uses the layer maximum.
func WritePNG(path string, layer []float64, width int, maxValue float64) error {
	if maxValue <= 0 {
		for _, v := range layer {
			maxValue = math.Max(maxValue, v)
		}
	}

	img := image.NewGray(image.Rect(0, 0, width, width))
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			var level float64
			if maxValue > 0 {
				level = math.Min(layer[y*width+x]/maxValue, 1)
			}
			img.SetGray(x, y, color.Gray{Y: uint8(level * 255)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// InvertedResource returns the layer in the image convention LoadResource
// expects (dark = resource), scaled to [0,1].
func InvertedResource(resource []float64, multiplier float64) []float64 {
	out := make([]float64, len(resource))
	for i, v := range resource {
		if multiplier > 0 {
			out[i] = 1 - math.Min(v/multiplier, 1)
		} else {
			out[i] = 1
		}
	}
	return out
}

// Load reads all three layers from disk.
func Load(maskAPath, maskBPath, resourcePath string, width int, multiplier float64) (*Layout, error) {
	a, err := LoadMask(maskAPath, width)
	if err != nil {
		return nil, err
	}
	b, err := LoadMask(maskBPath, width)
	if err != nil {
		return nil, err
	}
	r, err := LoadResource(resourcePath, width, multiplier)
	if err != nil {
		return nil, err
	}
	return &Layout{Width: width, MaskA: a, MaskB: b, Resource: r}, nil
}
