package config

import "fmt"

// ConfigurationError reports structurally invalid simulation input: bad scalar
// settings or grid dimensions that do not match the configured size. It is
// fatal; the simulation cannot start.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Errorf builds a ConfigurationError for field.
func Errorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks scalar settings. Grid dimension checks happen when the
// fields are built, since masks come from outside the config.
func (c *Config) Validate() error {
	if c.World.Size <= 0 {
		return Errorf("world.size", "must be positive, got %d", c.World.Size)
	}
	if c.Colony.Ants < 0 {
		return Errorf("colony.ants", "must not be negative, got %d", c.Colony.Ants)
	}
	hw := c.Colony.NestHalfWidth
	if hw < 0 {
		return Errorf("colony.nest_half_width", "must not be negative, got %d", hw)
	}
	if centre := c.World.Size / 2; centre-hw < 0 || centre+hw >= c.World.Size {
		return Errorf("colony.nest_half_width", "nest of half width %d does not fit a %d grid", hw, c.World.Size)
	}
	if c.Pheromone.DepositRate < 0 {
		return Errorf("pheromone.deposit_rate", "must not be negative, got %g", c.Pheromone.DepositRate)
	}
	if r := c.Pheromone.DecayRate; r < 0 || r > 1 {
		return Errorf("pheromone.decay_rate", "must be in [0,1], got %g", r)
	}
	if c.Pheromone.Diffuse && c.Pheromone.DiffuseSigma <= 0 {
		return Errorf("pheromone.diffuse_sigma", "must be positive when diffusion is enabled, got %g", c.Pheromone.DiffuseSigma)
	}
	if p := c.Movement.ExploreProb; p < 0 || p > 1 {
		return Errorf("movement.explore_prob", "must be in [0,1], got %g", p)
	}
	if c.Obstacles.SwitchPeriod <= 0 {
		return Errorf("obstacles.switch_period", "must be positive, got %d", c.Obstacles.SwitchPeriod)
	}
	if c.Resource.ResetPeriod <= 0 {
		return Errorf("resource.reset_period", "must be positive, got %d", c.Resource.ResetPeriod)
	}
	if c.Resource.Multiplier < 0 {
		return Errorf("resource.multiplier", "must not be negative, got %g", c.Resource.Multiplier)
	}
	if c.Sim.Ticks < 0 {
		return Errorf("sim.ticks", "must not be negative, got %d", c.Sim.Ticks)
	}
	return nil
}
