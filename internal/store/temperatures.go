package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RecordTemperature deposits one reading for the cell at (x, y, z)
// within a run, creating the cell if needed. A zero timestamp defaults
// to the current time. The write is an upsert on (cell_id, timestamp):
// repeating the same identity overwrites temp_c in place, so the call
// is safe to retry (last write wins).
//
// Cell resolution and the upsert are two separate transactions; the
// unique constraints keep concurrent callers consistent, but the pair
// is not atomic as a unit.
func (s *Store) RecordTemperature(ctx context.Context, runID int64, x, y, z int, tempC float64, timestamp time.Time) error {
	if err := s.ready(); err != nil {
		return err
	}

	cell, err := s.GetOrCreateCell(ctx, runID, x, y, z, "")
	if err != nil {
		return err
	}

	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	const query = `INSERT INTO temperatures (cell_id, timestamp, temp_c)
		VALUES (?, ?, ?)
		ON CONFLICT(cell_id, timestamp) DO UPDATE SET temp_c = excluded.temp_c`
	if _, err := s.db.ExecContext(ctx, query, cell.ID, formatTime(timestamp), tempC); err != nil {
		return fmt.Errorf("recording temperature for cell %d: %w", cell.ID, err)
	}
	return nil
}

// GetTemperatureHistory returns the readings for one cell ordered
// ascending by timestamp. Either bound may be nil to leave that side
// open; bounds are inclusive. A cell that does not exist for the run
// yields an empty history, not an error.
func (s *Store) GetTemperatureHistory(ctx context.Context, runID int64, x, y, z int, start, end *time.Time) ([]Temperature, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	cell, err := s.findCell(ctx, runID, x, y, z)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		return nil, nil
	}

	query := "SELECT cell_id, timestamp, temp_c FROM temperatures WHERE cell_id = ?"
	args := []any{cell.ID}
	if start != nil {
		query += " AND timestamp >= ?"
		args = append(args, formatTime(*start))
	}
	if end != nil {
		query += " AND timestamp <= ?"
		args = append(args, formatTime(*end))
	}
	query += " ORDER BY timestamp"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history for cell %d: %w", cell.ID, err)
	}
	defer rows.Close()

	var history []Temperature
	for rows.Next() {
		temp, err := scanTemperature(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *temp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history for cell %d: %w", cell.ID, err)
	}
	return history, nil
}

// GetTemperaturesAtTimestamp returns the grid snapshot for a run: every
// cell's reading at (or near) one instant. With zero tolerance only
// exact-timestamp matches are returned; a positive tolerance widens the
// match to [timestamp-tolerance, timestamp+tolerance], both ends
// inclusive.
func (s *Store) GetTemperaturesAtTimestamp(ctx context.Context, runID int64, timestamp time.Time, tolerance time.Duration) ([]CellTemperature, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	const base = `SELECT c.id, c.simulation_run_id, c.x, c.y, c.z, c.room_id,
			t.cell_id, t.timestamp, t.temp_c
		FROM cells c
		JOIN temperatures t ON t.cell_id = c.id
		WHERE c.simulation_run_id = ?`

	var (
		rows *sql.Rows
		err  error
	)
	if tolerance == 0 {
		rows, err = s.db.QueryContext(ctx, base+" AND t.timestamp = ?",
			runID, formatTime(timestamp))
	} else {
		rows, err = s.db.QueryContext(ctx, base+" AND t.timestamp >= ? AND t.timestamp <= ?",
			runID, formatTime(timestamp.Add(-tolerance)), formatTime(timestamp.Add(tolerance)))
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot for run %d: %w", runID, err)
	}
	defer rows.Close()

	var snapshot []CellTemperature
	for rows.Next() {
		var ct CellTemperature
		var roomID sql.NullString
		var ts string
		if err := rows.Scan(&ct.Cell.ID, &ct.Cell.SimulationRunID,
			&ct.Cell.X, &ct.Cell.Y, &ct.Cell.Z, &roomID,
			&ct.Temperature.CellID, &ts, &ct.Temperature.TempC); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		ct.Cell.RoomID = roomID.String
		ct.Temperature.Timestamp = parseTime(ts)
		snapshot = append(snapshot, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot for run %d: %w", runID, err)
	}
	return snapshot, nil
}

// GetTemperatureRange aggregates all readings for a run's cells with
// timestamps in [start, end], both ends inclusive. When no readings
// match, Count is zero and Min/Max/Avg are nil.
func (s *Store) GetTemperatureRange(ctx context.Context, runID int64, start, end time.Time) (*RangeStats, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	const query = `SELECT MIN(t.temp_c), MAX(t.temp_c), AVG(t.temp_c), COUNT(t.temp_c)
		FROM temperatures t
		JOIN cells c ON c.id = t.cell_id
		WHERE c.simulation_run_id = ? AND t.timestamp >= ? AND t.timestamp <= ?`

	stats := &RangeStats{Start: start, End: end}
	var minT, maxT, avgT sql.NullFloat64
	err := s.db.QueryRowContext(ctx, query, runID, formatTime(start), formatTime(end)).
		Scan(&minT, &maxT, &avgT, &stats.Count)
	if err != nil {
		return nil, fmt.Errorf("aggregating temperatures for run %d: %w", runID, err)
	}

	if minT.Valid {
		stats.Min = &minT.Float64
	}
	if maxT.Valid {
		stats.Max = &maxT.Float64
	}
	if avgT.Valid {
		stats.Avg = &avgT.Float64
	}
	return stats, nil
}

// CountTemperatures returns the number of readings across all runs.
func (s *Store) CountTemperatures(ctx context.Context) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM temperatures").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting temperatures: %w", err)
	}
	return n, nil
}

// CountTemperaturesForRun returns the number of readings belonging to
// one run's cells. Unknown runs count zero.
func (s *Store) CountTemperaturesForRun(ctx context.Context, runID int64) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	const query = `SELECT COUNT(*) FROM temperatures t
		JOIN cells c ON c.id = t.cell_id
		WHERE c.simulation_run_id = ?`
	var n int64
	if err := s.db.QueryRowContext(ctx, query, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting temperatures for run %d: %w", runID, err)
	}
	return n, nil
}

// scanTemperature reads one reading from a Rows cursor.
func scanTemperature(rows *sql.Rows) (*Temperature, error) {
	var temp Temperature
	var ts string
	if err := rows.Scan(&temp.CellID, &ts, &temp.TempC); err != nil {
		return nil, fmt.Errorf("scanning temperature row: %w", err)
	}
	temp.Timestamp = parseTime(ts)
	return &temp, nil
}
