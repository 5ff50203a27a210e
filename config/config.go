// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Colony    ColonyConfig    `yaml:"colony"`
	Pheromone PheromoneConfig `yaml:"pheromone"`
	Movement  MovementConfig  `yaml:"movement"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Resource  ResourceConfig  `yaml:"resource"`
	Layout    LayoutConfig    `yaml:"layout"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds grid dimensions. The grid is always square.
type WorldConfig struct {
	Size int `yaml:"size"` // cells per side
}

// ColonyConfig holds population and nest parameters.
type ColonyConfig struct {
	Ants            int  `yaml:"ants"`
	NestHalfWidth   int  `yaml:"nest_half_width"`  // nest spans centre ± this many cells
	RandomDirection bool `yaml:"random_direction"` // seed each ant with a random last-move vector
}

// PheromoneConfig holds trail deposit and evaporation parameters.
type PheromoneConfig struct {
	DepositRate  float64 `yaml:"deposit_rate"`  // added per ant per tick
	DecayRate    float64 `yaml:"decay_rate"`    // multiplicative, 1 = no decay
	Diffuse      bool    `yaml:"diffuse"`       // gaussian smoothing after decay
	DiffuseSigma float64 `yaml:"diffuse_sigma"` // kernel std-dev in cells
}

// MovementConfig holds movement decision parameters.
type MovementConfig struct {
	ExploreProb float64 `yaml:"explore_prob"`
}

// ObstaclesConfig holds obstacle mask switching parameters.
type ObstaclesConfig struct {
	SwitchPeriod int `yaml:"switch_period"` // ticks between mask A/B swaps
}

// ResourceConfig holds resource field parameters.
type ResourceConfig struct {
	ResetPeriod int     `yaml:"reset_period"` // ticks between full replenishments
	Multiplier  float64 `yaml:"multiplier"`   // units placed on a full-density cell
}

// LayoutConfig holds parameters for the procedural layout generator.
type LayoutConfig struct {
	BarrierSpacing int     `yaml:"barrier_spacing"` // cells between barrier rings
	GateWidth      int     `yaml:"gate_width"`      // opening width in each barrier
	NoiseScale     float64 `yaml:"noise_scale"`     // resource noise frequency
	PatchThreshold float64 `yaml:"patch_threshold"` // noise level above which a cell holds resource
	NestClearance  int     `yaml:"nest_clearance"`  // resource-free margin around the nest
}

// SimConfig holds run parameters.
type SimConfig struct {
	Seed  int64 `yaml:"seed"`
	Ticks int   `yaml:"ticks"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// Rect is an inclusive axis-aligned cell rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Cells  int  // Size*Size
	Nest   Rect // centre block of the grid
	SpawnX int
	SpawnY int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Recompute refreshes derived values after fields were changed in code.
// Returns the same error Validate would.
func (c *Config) Recompute() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	size := c.World.Size
	c.Derived.Cells = size * size

	centre := size / 2
	hw := c.Colony.NestHalfWidth
	c.Derived.Nest = Rect{
		MinX: centre - hw,
		MinY: centre - hw,
		MaxX: centre + hw,
		MaxY: centre + hw,
	}
	c.Derived.SpawnX = centre
	c.Derived.SpawnY = centre
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
