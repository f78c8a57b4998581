// Package telemetry bridges the game's status file into trip and fine
// records. A separate SDK plugin inside the game writes a JSON snapshot to a
// well-known path about once a second; this package polls it, detects the
// "trip finished" and "fine issued" edges and appends the matching records.
package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Snapshot mirrors the JSON document produced by the in-game plugin.
// A missing or unreadable file is represented as the zero value, whose
// Connected=false disables all event logic for that tick.
type Snapshot struct {
	Connected    bool    `json:"connected"`
	JobActive    bool    `json:"job_active"`
	TripDistance float64 `json:"trip_distance"` // km driven on the current job
	Source       string  `json:"source"`
	Destination  string  `json:"destination"`
	Cargo        string  `json:"cargo"`
	Income       float64 `json:"income"`
	FineDetected bool    `json:"fine_detected"`
	FineType     string  `json:"fine_type"`
	FineAmount   float64 `json:"fine_amount"`
	Odometer     float64 `json:"odometer"` // career km, display only
}

// Disconnected is the stand-in snapshot for every failure mode.
func Disconnected() Snapshot {
	return Snapshot{}
}

// DefaultSnapshotPath is where the game plugin drops its file.
func DefaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("ETS2_Tracker", "data.json")
	}
	return filepath.Join(home, "Documents", "ETS2_Tracker", "data.json")
}

// SnapshotReader reads the plugin's status file.
type SnapshotReader struct {
	Path string
}

func NewSnapshotReader(path string) *SnapshotReader {
	if path == "" {
		path = DefaultSnapshotPath()
	}
	return &SnapshotReader{Path: path}
}

// Read returns the current snapshot. The game not running, a half-written
// file or garbage content are all normal conditions here, so every failure
// collapses into the disconnected default and never an error.
func (r *SnapshotReader) Read() Snapshot {
	raw, err := os.ReadFile(r.Path)
	if err != nil || len(raw) == 0 {
		return Disconnected()
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Disconnected()
	}
	return s
}
