package store

import "time"

// RunStatus is the lifecycle state of a simulation run.
type RunStatus string

// Run lifecycle states.
const (
	StatusCreated   RunStatus = "created"
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// Valid reports whether s is one of the known run states.
func (s RunStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusRunning, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// SimulationRun is one independent simulation execution context.
// It owns its cells and, through them, its temperature time series.
type SimulationRun struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ConfigJSON  string     `json:"config_json"`
	Status      RunStatus  `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Cell is a unit grid position (x, y, z) within one simulation run,
// optionally tagged with the room it belongs to.
type Cell struct {
	ID              int64  `json:"id"`
	SimulationRunID int64  `json:"simulation_run_id"`
	X               int    `json:"x"`
	Y               int    `json:"y"`
	Z               int    `json:"z"`
	RoomID          string `json:"room_id,omitempty"`
}

// Temperature is one reading for a cell at an exact timestamp.
// (CellID, Timestamp) is the row identity; a later write with the same
// identity overwrites TempC in place.
type Temperature struct {
	CellID    int64     `json:"cell_id"`
	Timestamp time.Time `json:"timestamp"`
	TempC     float64   `json:"temp_c"`
}

// CellTemperature pairs a cell with one of its readings. Snapshot
// queries return these across all cells of a run.
type CellTemperature struct {
	Cell        Cell        `json:"cell"`
	Temperature Temperature `json:"temperature"`
}

// RangeStats aggregates readings over a time window. Min, Max, and Avg
// are nil when Count is zero; callers must check Count before trusting
// the aggregates.
type RangeStats struct {
	Min   *float64  `json:"min_temperature"`
	Max   *float64  `json:"max_temperature"`
	Avg   *float64  `json:"average_temperature"`
	Count int64     `json:"reading_count"`
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// Metadata is one row of the global key-value table. UpdatedAt is
// refreshed on every write; CreatedAt is fixed at first insert.
type Metadata struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
