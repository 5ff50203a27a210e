package components

// Mode is the foraging state of an ant.
type Mode uint8

const (
	ModeForaging  Mode = iota // searching for resource, following the food trail
	ModeReturning             // carrying resource, following the home trail
)

// String returns the display name for a Mode.
func (m Mode) String() string {
	switch m {
	case ModeForaging:
		return "foraging"
	case ModeReturning:
		return "returning"
	}
	return "unknown"
}

// Forager holds per-ant colony state.
type Forager struct {
	ID   uint32
	Mode Mode
}

// Returning reports whether the ant is carrying resource home.
func (f *Forager) Returning() bool {
	return f.Mode == ModeReturning
}
