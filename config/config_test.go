package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.World.Size != 50 || cfg.Colony.Ants != 50 {
		t.Errorf("size/ants = %d/%d, want 50/50", cfg.World.Size, cfg.Colony.Ants)
	}
	if cfg.Pheromone.DepositRate != 0.25 || cfg.Pheromone.DecayRate != 0.6 {
		t.Errorf("deposit/decay = %v/%v", cfg.Pheromone.DepositRate, cfg.Pheromone.DecayRate)
	}
	if cfg.Obstacles.SwitchPeriod != 50 || cfg.Resource.ResetPeriod != 100 {
		t.Errorf("switch/reset = %d/%d", cfg.Obstacles.SwitchPeriod, cfg.Resource.ResetPeriod)
	}
	if cfg.Sim.Seed != 345968 || cfg.Sim.Ticks != 1000 {
		t.Errorf("seed/ticks = %d/%d", cfg.Sim.Seed, cfg.Sim.Ticks)
	}

	want := Rect{MinX: 23, MinY: 23, MaxX: 27, MaxY: 27}
	if cfg.Derived.Nest != want {
		t.Errorf("nest = %+v, want %+v", cfg.Derived.Nest, want)
	}
	if cfg.Derived.SpawnX != 25 || cfg.Derived.SpawnY != 25 {
		t.Errorf("spawn = (%d,%d), want (25,25)", cfg.Derived.SpawnX, cfg.Derived.SpawnY)
	}
	if cfg.Derived.Cells != 2500 {
		t.Errorf("cells = %d, want 2500", cfg.Derived.Cells)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.World.Size = 7
	if b := Default(); b.World.Size != 50 {
		t.Errorf("Default shared state: size = %d", b.World.Size)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("world:\n  size: 30\npheromone:\n  decay_rate: 0.9\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Size != 30 || cfg.Pheromone.DecayRate != 0.9 {
		t.Errorf("overrides not applied: size %d decay %v", cfg.World.Size, cfg.Pheromone.DecayRate)
	}
	if cfg.Pheromone.DepositRate != 0.25 {
		t.Errorf("deposit rate = %v, want default 0.25", cfg.Pheromone.DepositRate)
	}
	if cfg.Derived.Nest.MinX != 13 || cfg.Derived.Nest.MaxX != 17 {
		t.Errorf("nest = %+v, want [13,17]", cfg.Derived.Nest)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero size", func(c *Config) { c.World.Size = 0 }, "world.size"},
		{"negative ants", func(c *Config) { c.Colony.Ants = -1 }, "colony.ants"},
		{"nest too wide", func(c *Config) { c.Colony.NestHalfWidth = 25 }, "colony.nest_half_width"},
		{"negative deposit", func(c *Config) { c.Pheromone.DepositRate = -0.1 }, "pheromone.deposit_rate"},
		{"decay above one", func(c *Config) { c.Pheromone.DecayRate = 1.1 }, "pheromone.decay_rate"},
		{"diffuse without sigma", func(c *Config) {
			c.Pheromone.Diffuse = true
			c.Pheromone.DiffuseSigma = 0
		}, "pheromone.diffuse_sigma"},
		{"explore above one", func(c *Config) { c.Movement.ExploreProb = 2 }, "movement.explore_prob"},
		{"zero switch period", func(c *Config) { c.Obstacles.SwitchPeriod = 0 }, "obstacles.switch_period"},
		{"zero reset period", func(c *Config) { c.Resource.ResetPeriod = 0 }, "resource.reset_period"},
		{"negative multiplier", func(c *Config) { c.Resource.Multiplier = -1 }, "resource.multiplier"},
		{"negative ticks", func(c *Config) { c.Sim.Ticks = -5 }, "sim.ticks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestRecompute(t *testing.T) {
	cfg := Default()
	cfg.World.Size = 3
	cfg.Colony.NestHalfWidth = 0
	if err := cfg.Recompute(); err != nil {
		t.Fatal(err)
	}
	want := Rect{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}
	if cfg.Derived.Nest != want {
		t.Errorf("nest = %+v, want %+v", cfg.Derived.Nest, want)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sim.Seed = 99
	cfg.Movement.ExploreProb = 0.1

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Sim.Seed != 99 || got.Movement.ExploreProb != 0.1 {
		t.Errorf("round trip lost values: seed %d explore %v", got.Sim.Seed, got.Movement.ExploreProb)
	}
}
