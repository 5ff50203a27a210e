package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/antcolony/components"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:    SnapshotVersion,
		RNGSeed:    42,
		Tick:       1000,
		Width:      2,
		ActiveMask: "B",
		Collected:  7,
		Ants: []components.AntState{
			{ID: 1, Pos: components.Position{X: 1, Y: 0}, Dir: components.Direction{DX: 1, DY: -1}, Mode: components.ModeReturning},
			{ID: 2, Pos: components.Position{X: 0, Y: 1}, Mode: components.ModeForaging},
		},
		FoodPheromone: []float64{0, 0.25, 0.5, 0},
		HomePheromone: []float64{0.1, 0, 0, 0.75},
		Resource:      []float64{1, 0, 0, 2},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if filepath.Base(path) != "snapshot_1000.json" {
		t.Errorf("unexpected snapshot filename %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Snapshot file not created at %s", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.RNGSeed != 42 || loaded.Tick != 1000 || loaded.Collected != 7 {
		t.Errorf("header mismatch: seed=%d tick=%d collected=%d", loaded.RNGSeed, loaded.Tick, loaded.Collected)
	}
	if len(loaded.Ants) != 2 {
		t.Fatalf("expected 2 ants, got %d", len(loaded.Ants))
	}
	if loaded.Ants[0] != snapshot.Ants[0] {
		t.Errorf("ant mismatch: got %+v, want %+v", loaded.Ants[0], snapshot.Ants[0])
	}
	if loaded.HomePheromone[3] != 0.75 {
		t.Errorf("home pheromone mismatch: got %v", loaded.HomePheromone)
	}
}

func TestLoadSnapshotRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	data, _ := json.Marshal(&Snapshot{Version: SnapshotVersion + 1})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
