package components

// Colony is the world-level ECS resource holding colony-wide counters.
type Colony struct {
	// Collected counts resource units delivered to the nest. Never decreases.
	Collected int
	// Consumed counts units taken from the resource layer since its last replenishment.
	Consumed int
}
