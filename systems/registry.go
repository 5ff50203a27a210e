package systems

// SystemInfo describes a simulation system for perf reporting.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "colony", "environment")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the game loop and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all tick systems in execution order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "obstacles", Name: "Obstacles", Description: "Selects the obstacle mask for the tick", Category: "environment"})
	r.Register(SystemInfo{ID: "movement", Name: "Movement", Description: "Moves ants along their vision cone", Category: "colony"})
	r.Register(SystemInfo{ID: "pheromone", Name: "Pheromone", Description: "Decays, diffuses and deposits trails; handles pickup and drop-off", Category: "colony"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Records collected resources and window stats", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
