package recorder

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ashgrove/heatflow-core/internal/infrastructure/logging"
	"github.com/ashgrove/heatflow-core/internal/infrastructure/mqtt"
	"github.com/ashgrove/heatflow-core/internal/store"
)

// TemperatureMirror receives a copy of every persisted reading and run
// transition. Implemented by the influxdb client; nil disables
// mirroring.
type TemperatureMirror interface {
	WriteCellTemperature(runID int64, x, y, z int, roomID string, tempC float64, timestamp time.Time)
	WriteRunEvent(runID int64, status string)
}

// EventPublisher announces run lifecycle changes. Implemented by the
// mqtt client; nil disables events.
type EventPublisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Recorder fans simulation writes out to the store and the optional
// telemetry sinks. The store write is authoritative: its error is the
// operation's error, while sink failures are only logged.
type Recorder struct {
	store  *store.Store
	mirror TemperatureMirror
	events EventPublisher
	logger *logging.Logger
}

// New creates a Recorder over the given store. mirror and events may
// be nil; logger must not be.
func New(st *store.Store, mirror TemperatureMirror, events EventPublisher, logger *logging.Logger) *Recorder {
	return &Recorder{
		store:  st,
		mirror: mirror,
		events: events,
		logger: logger,
	}
}

// runEvent is the payload published on run status topics.
type runEvent struct {
	RunID     int64  `json:"run_id"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// CreateRun inserts a new simulation run and announces it.
func (r *Recorder) CreateRun(ctx context.Context, name, configJSON, description string) (*store.SimulationRun, error) {
	run, err := r.store.CreateSimulationRun(ctx, name, configJSON, description)
	if err != nil {
		return nil, err
	}

	r.publishRunStatus(run.ID, run.Name, string(run.Status))
	if r.mirror != nil {
		r.mirror.WriteRunEvent(run.ID, string(run.Status))
	}
	return run, nil
}

// SetRunStatus transitions a run and announces the new status.
func (r *Recorder) SetRunStatus(ctx context.Context, runID int64, status store.RunStatus) error {
	if err := r.store.UpdateSimulationRunStatus(ctx, runID, status); err != nil {
		return err
	}

	r.publishRunStatus(runID, "", string(status))
	if r.mirror != nil {
		r.mirror.WriteRunEvent(runID, string(status))
	}
	return nil
}

// RecordTemperature persists one reading and mirrors it.
//
// The mirrored point carries the resolved timestamp, so a zero input
// timestamp mirrors as the same instant the store recorded.
func (r *Recorder) RecordTemperature(ctx context.Context, runID int64, x, y, z int, tempC float64, timestamp time.Time) error {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	if err := r.store.RecordTemperature(ctx, runID, x, y, z, tempC, timestamp); err != nil {
		return err
	}

	if r.mirror != nil {
		r.mirror.WriteCellTemperature(runID, x, y, z, "", tempC, timestamp)
	}
	return nil
}

// ClearRun deletes a run's data and announces the deletion.
func (r *Recorder) ClearRun(ctx context.Context, runID int64) error {
	if err := r.store.ClearSimulationRun(ctx, runID); err != nil {
		return err
	}

	if r.events != nil {
		payload, _ := json.Marshal(runEvent{ //nolint:errcheck // Struct of plain fields cannot fail
			RunID:     runID,
			Status:    "cleared",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		if err := r.events.Publish(mqtt.Topics{}.RunCleared(runID), payload, 1, false); err != nil {
			r.logger.Warn("run cleared event not published", "run_id", runID, "error", err)
		}
	}
	return nil
}

// Store exposes the underlying store for read-side queries.
func (r *Recorder) Store() *store.Store {
	return r.store
}

// publishRunStatus sends a retained status event, logging on failure.
func (r *Recorder) publishRunStatus(runID int64, name, status string) {
	if r.events == nil {
		return
	}

	payload, _ := json.Marshal(runEvent{ //nolint:errcheck // Struct of plain fields cannot fail
		RunID:     runID,
		Name:      name,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err := r.events.Publish(mqtt.Topics{}.RunStatus(runID), payload, 1, true); err != nil {
		r.logger.Warn("run status event not published",
			"run_id", runID, "status", status, "error", err)
	}
}
