package store

import (
	"context"
	"database/sql"
	"fmt"
)

// GetOrCreateCell resolves the cell at (x, y, z) within a run, creating
// it if absent. The roomID tag is only applied on creation: an existing
// cell is returned unchanged even when a different roomID is passed.
//
// Creation uses INSERT OR IGNORE followed by a re-read, so a concurrent
// caller racing on the same coordinates loses the insert to the unique
// constraint and both observe the same row.
func (s *Store) GetOrCreateCell(ctx context.Context, runID int64, x, y, z int, roomID string) (*Cell, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	cell, err := s.findCell(ctx, runID, x, y, z)
	if err != nil {
		return nil, err
	}
	if cell != nil {
		return cell, nil
	}

	const insert = `INSERT OR IGNORE INTO cells (simulation_run_id, x, y, z, room_id)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, insert, runID, x, y, z, nullStr(roomID)); err != nil {
		return nil, fmt.Errorf("inserting cell (%d,%d,%d) for run %d: %w", x, y, z, runID, err)
	}

	cell, err = s.findCell(ctx, runID, x, y, z)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		return nil, fmt.Errorf("cell (%d,%d,%d) for run %d missing after insert", x, y, z, runID)
	}
	return cell, nil
}

// findCell looks up a cell by its run-scoped coordinates, returning nil
// when it does not exist.
func (s *Store) findCell(ctx context.Context, runID int64, x, y, z int) (*Cell, error) {
	const query = `SELECT id, simulation_run_id, x, y, z, room_id FROM cells
		WHERE simulation_run_id = ? AND x = ? AND y = ? AND z = ?`

	var cell Cell
	var roomID sql.NullString
	err := s.db.QueryRowContext(ctx, query, runID, x, y, z).
		Scan(&cell.ID, &cell.SimulationRunID, &cell.X, &cell.Y, &cell.Z, &roomID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying cell (%d,%d,%d) for run %d: %w", x, y, z, runID, err)
	}
	cell.RoomID = roomID.String
	return &cell, nil
}

// CountCells returns the number of cells across all runs.
func (s *Store) CountCells(ctx context.Context) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cells").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cells: %w", err)
	}
	return n, nil
}

// CountCellsForRun returns the number of cells owned by one run.
// Unknown runs count zero.
func (s *Store) CountCellsForRun(ctx context.Context, runID int64) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cells WHERE simulation_run_id = ?", runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cells for run %d: %w", runID, err)
	}
	return n, nil
}
