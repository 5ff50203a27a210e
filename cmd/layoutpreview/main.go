// Layout preview tool - writes the generated obstacle masks and resource grid
// as grayscale PNGs that the main binary can load back with -mask-a, -mask-b
// and -resource.
//
// Usage: go run ./cmd/layoutpreview -out layout/
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pthm-cable/antcolony/config"
	"github.com/pthm-cable/antcolony/layout"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "Layout seed (default: sim.seed from config)")
	outDir := flag.String("out", ".", "Directory for mask_a.png, mask_b.png and resource.png")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	layoutSeed := cfg.Sim.Seed
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			layoutSeed = *seed
		}
	})

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	l := layout.Generate(cfg, layoutSeed)
	w := cfg.World.Size

	files := []struct {
		name  string
		layer []float64
	}{
		{"mask_a.png", l.MaskA},
		{"mask_b.png", l.MaskB},
		{"resource.png", layout.InvertedResource(l.Resource, cfg.Resource.Multiplier)},
	}
	for _, f := range files {
		path := filepath.Join(*outDir, f.name)
		if err := layout.WritePNG(path, f.layer, w, 1); err != nil {
			slog.Error("failed to write layer", "path", path, "error", err)
			os.Exit(1)
		}
	}

	var cells int
	for _, v := range l.Resource {
		if v > 0 {
			cells++
		}
	}
	slog.Info("layout written", "dir", *outDir, "size", w, "seed", layoutSeed, "resource_cells", cells)
}
