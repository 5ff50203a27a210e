// Package components defines ECS components for the colony simulation.
package components

// AntState is a flat copy of one ant's components, used for snapshots and tests.
type AntState struct {
	ID   uint32    `json:"id"`
	Pos  Position  `json:"pos"`
	Dir  Direction `json:"dir"`
	Mode Mode      `json:"mode"`
}
