package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CreateSimulationRun inserts a new run in the created state and
// returns the persisted record. The config blob is stored verbatim.
func (s *Store) CreateSimulationRun(ctx context.Context, name, configJSON, description string) (*SimulationRun, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	const query = `INSERT INTO simulation_runs (name, description, config_json, status, created_at)
		VALUES (?, ?, ?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query,
		name, nullStr(description), configJSON, string(StatusCreated), formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("inserting simulation run %q: %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading run id: %w", err)
	}

	return &SimulationRun{
		ID:          id,
		Name:        name,
		Description: description,
		ConfigJSON:  configJSON,
		Status:      StatusCreated,
		CreatedAt:   now,
	}, nil
}

// UpdateSimulationRunStatus moves a run to the given status. The
// completed_at timestamp is set to the current time iff the new status
// is completed; other transitions leave it untouched. Unknown run IDs
// are a no-op.
func (s *Store) UpdateSimulationRunStatus(ctx context.Context, runID int64, status RunStatus) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var err error
	if status == StatusCompleted {
		_, err = s.db.ExecContext(ctx,
			"UPDATE simulation_runs SET status = ?, completed_at = ? WHERE id = ?",
			string(status), formatTime(time.Now().UTC()), runID)
	} else {
		_, err = s.db.ExecContext(ctx,
			"UPDATE simulation_runs SET status = ? WHERE id = ?",
			string(status), runID)
	}
	if err != nil {
		return fmt.Errorf("updating run %d status: %w", runID, err)
	}
	return nil
}

// GetSimulationRun returns a run by ID, or nil if it does not exist.
func (s *Store) GetSimulationRun(ctx context.Context, runID int64) (*SimulationRun, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	const query = `SELECT id, name, description, config_json, status, created_at, completed_at
		FROM simulation_runs WHERE id = ?`
	run, err := scanRun(s.db.QueryRowContext(ctx, query, runID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// ListSimulationRuns returns all runs, newest first.
func (s *Store) ListSimulationRuns(ctx context.Context) ([]SimulationRun, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	const query = `SELECT id, name, description, config_json, status, created_at, completed_at
		FROM simulation_runs ORDER BY created_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []SimulationRun
	for rows.Next() {
		run, err := scanRunRow(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating simulation runs: %w", err)
	}
	return runs, nil
}

// ClearSimulationRun deletes a run and everything it owns, children
// first: temperatures, then cells, then the run row, in one
// transaction. Other runs' data is untouched. Unknown IDs are a no-op.
func (s *Store) ClearSimulationRun(ctx context.Context, runID int64) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM temperatures WHERE cell_id IN (SELECT id FROM cells WHERE simulation_run_id = ?)",
		runID); err != nil {
		return fmt.Errorf("deleting temperatures for run %d: %w", runID, err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM cells WHERE simulation_run_id = ?", runID); err != nil {
		return fmt.Errorf("deleting cells for run %d: %w", runID, err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM simulation_runs WHERE id = ?", runID); err != nil {
		return fmt.Errorf("deleting run %d: %w", runID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run clear: %w", err)
	}
	return nil
}

// ClearAllData truncates every table, children first: temperatures,
// cells, runs, then metadata, in one transaction.
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	for _, table := range []string{"temperatures", "cells", "simulation_runs", "metadata"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clear: %w", err)
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunFields(sc rowScanner) (*SimulationRun, error) {
	var run SimulationRun
	var description sql.NullString
	var status, createdAt string
	var completedAt sql.NullString

	if err := sc.Scan(&run.ID, &run.Name, &description, &run.ConfigJSON,
		&status, &createdAt, &completedAt); err != nil {
		return nil, err
	}

	run.Description = description.String
	run.Status = RunStatus(status)
	run.CreatedAt = parseTime(createdAt)
	if completedAt.Valid {
		t := parseTime(completedAt.String)
		run.CompletedAt = &t
	}
	return &run, nil
}

func scanRun(row *sql.Row) (*SimulationRun, error) {
	run, err := scanRunFields(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	return run, nil
}

func scanRunRow(rows *sql.Rows) (*SimulationRun, error) {
	run, err := scanRunFields(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning run row: %w", err)
	}
	return run, nil
}
