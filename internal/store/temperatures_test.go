package store

import (
	"context"
	"testing"
	"time"
)

func TestRecordTemperature(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "readings")

	ts := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	if err := s.RecordTemperature(ctx, run.ID, 2, 1, 0, 21.75, ts); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}

	// The cell is created implicitly, untagged.
	history, err := s.GetTemperatureHistory(ctx, run.ID, 2, 1, 0, nil, nil)
	if err != nil {
		t.Fatalf("GetTemperatureHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d readings, want 1", len(history))
	}
	if history[0].TempC != 21.75 {
		t.Errorf("temp_c = %v, want 21.75", history[0].TempC)
	}
	if !history[0].Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", history[0].Timestamp, ts)
	}
}

func TestRecordTemperatureDefaultTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "defaulted")

	before := time.Now().UTC()
	if err := s.RecordTemperature(ctx, run.ID, 0, 0, 0, 18.0, time.Time{}); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}
	after := time.Now().UTC()

	history, err := s.GetTemperatureHistory(ctx, run.ID, 0, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("GetTemperatureHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d readings, want 1", len(history))
	}
	got := history[0].Timestamp
	if got.Before(before.Truncate(time.Second)) || got.After(after.Add(time.Second)) {
		t.Errorf("defaulted timestamp %v outside [%v, %v]", got, before, after)
	}
}

func TestRecordTemperatureOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "rewrite")

	ts := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	if err := s.RecordTemperature(ctx, run.ID, 0, 0, 0, 20.0, ts); err != nil {
		t.Fatalf("first RecordTemperature() error = %v", err)
	}
	// Same cell, same instant: last write wins, no second row.
	if err := s.RecordTemperature(ctx, run.ID, 0, 0, 0, 25.0, ts); err != nil {
		t.Fatalf("second RecordTemperature() error = %v", err)
	}

	history, err := s.GetTemperatureHistory(ctx, run.ID, 0, 0, 0, nil, nil)
	if err != nil {
		t.Fatalf("GetTemperatureHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d readings, want 1", len(history))
	}
	if history[0].TempC != 25.0 {
		t.Errorf("temp_c = %v, want 25.0", history[0].TempC)
	}
	if n, _ := s.CountTemperaturesForRun(ctx, run.ID); n != 1 {
		t.Errorf("reading count = %d, want 1", n)
	}
}

func TestGetTemperatureHistoryBounds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "bounded")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		if err := s.RecordTemperature(ctx, run.ID, 0, 0, 0, float64(i), ts); err != nil {
			t.Fatalf("RecordTemperature(%d) error = %v", i, err)
		}
	}

	tests := []struct {
		name       string
		start, end *time.Time
		wantTemps  []float64
	}{
		{"unbounded", nil, nil, []float64{0, 1, 2, 3, 4}},
		{"start only", timePtr(base.Add(2 * time.Hour)), nil, []float64{2, 3, 4}},
		{"end only", nil, timePtr(base.Add(1 * time.Hour)), []float64{0, 1}},
		{"both inclusive", timePtr(base.Add(1 * time.Hour)), timePtr(base.Add(3 * time.Hour)), []float64{1, 2, 3}},
		{"empty window", timePtr(base.Add(10 * time.Hour)), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history, err := s.GetTemperatureHistory(ctx, run.ID, 0, 0, 0, tt.start, tt.end)
			if err != nil {
				t.Fatalf("GetTemperatureHistory() error = %v", err)
			}
			if len(history) != len(tt.wantTemps) {
				t.Fatalf("got %d readings, want %d", len(history), len(tt.wantTemps))
			}
			for i, want := range tt.wantTemps {
				if history[i].TempC != want {
					t.Errorf("history[%d].TempC = %v, want %v", i, history[i].TempC, want)
				}
			}
		})
	}
}

func TestGetTemperatureHistoryMissingCell(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, "nowhere")

	history, err := s.GetTemperatureHistory(context.Background(), run.ID, 9, 9, 9, nil, nil)
	if err != nil {
		t.Fatalf("GetTemperatureHistory() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("got %d readings for missing cell, want 0", len(history))
	}
}

func TestGetTemperaturesAtTimestampExact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "snapshot")

	ts := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	for x := 0; x < 3; x++ {
		if err := s.RecordTemperature(ctx, run.ID, x, 0, 0, 20.0+float64(x), ts); err != nil {
			t.Fatalf("RecordTemperature() error = %v", err)
		}
	}
	// A reading one second away must not appear with zero tolerance.
	if err := s.RecordTemperature(ctx, run.ID, 0, 1, 0, 99.0, ts.Add(time.Second)); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}

	snapshot, err := s.GetTemperaturesAtTimestamp(ctx, run.ID, ts, 0)
	if err != nil {
		t.Fatalf("GetTemperaturesAtTimestamp() error = %v", err)
	}
	if len(snapshot) != 3 {
		t.Fatalf("got %d rows, want 3", len(snapshot))
	}
	for _, ct := range snapshot {
		if !ct.Temperature.Timestamp.Equal(ts) {
			t.Errorf("snapshot row timestamp = %v, want %v", ct.Temperature.Timestamp, ts)
		}
		if ct.Cell.SimulationRunID != run.ID {
			t.Errorf("snapshot row run = %d, want %d", ct.Cell.SimulationRunID, run.ID)
		}
	}
}

func TestGetTemperaturesAtTimestampTolerance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "near-miss")

	ts := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	if err := s.RecordTemperature(ctx, run.ID, 0, 0, 0, 20.0, ts.Add(-30*time.Second)); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}
	if err := s.RecordTemperature(ctx, run.ID, 1, 0, 0, 21.0, ts.Add(45*time.Second)); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}
	if err := s.RecordTemperature(ctx, run.ID, 2, 0, 0, 22.0, ts.Add(2*time.Minute)); err != nil {
		t.Fatalf("RecordTemperature() error = %v", err)
	}

	snapshot, err := s.GetTemperaturesAtTimestamp(ctx, run.ID, ts, time.Minute)
	if err != nil {
		t.Fatalf("GetTemperaturesAtTimestamp() error = %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("got %d rows within tolerance, want 2", len(snapshot))
	}
}

func TestGetTemperaturesAtTimestampScopedToRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runA := createTestRun(t, s, "visible")
	runB := createTestRun(t, s, "hidden")
	ts := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	if err := s.RecordTemperature(ctx, runA.ID, 0, 0, 0, 20.0, ts); err != nil {
		t.Fatalf("RecordTemperature(runA) error = %v", err)
	}
	if err := s.RecordTemperature(ctx, runB.ID, 0, 0, 0, 30.0, ts); err != nil {
		t.Fatalf("RecordTemperature(runB) error = %v", err)
	}

	snapshot, err := s.GetTemperaturesAtTimestamp(ctx, runA.ID, ts, 0)
	if err != nil {
		t.Fatalf("GetTemperaturesAtTimestamp() error = %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("got %d rows, want 1", len(snapshot))
	}
	if snapshot[0].Temperature.TempC != 20.0 {
		t.Errorf("snapshot leaked another run's reading: %v", snapshot[0].Temperature.TempC)
	}
}

func TestGetTemperatureRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	run := createTestRun(t, s, "aggregated")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	temps := []float64{18.0, 20.0, 22.0, 24.0}
	for i, v := range temps {
		ts := base.Add(time.Duration(i) * time.Hour)
		if err := s.RecordTemperature(ctx, run.ID, i, 0, 0, v, ts); err != nil {
			t.Fatalf("RecordTemperature(%d) error = %v", i, err)
		}
	}

	// Inclusive window covering the middle two readings.
	stats, err := s.GetTemperatureRange(ctx, run.ID, base.Add(time.Hour), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("GetTemperatureRange() error = %v", err)
	}
	if stats.Count != 2 {
		t.Fatalf("count = %d, want 2", stats.Count)
	}
	if stats.Min == nil || *stats.Min != 20.0 {
		t.Errorf("min = %v, want 20.0", stats.Min)
	}
	if stats.Max == nil || *stats.Max != 22.0 {
		t.Errorf("max = %v, want 22.0", stats.Max)
	}
	if stats.Avg == nil || *stats.Avg != 21.0 {
		t.Errorf("avg = %v, want 21.0", stats.Avg)
	}
}

func TestGetTemperatureRangeEmpty(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, "silent")

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stats, err := s.GetTemperatureRange(context.Background(), run.ID, start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetTemperatureRange() error = %v", err)
	}
	if stats.Count != 0 {
		t.Errorf("count = %d, want 0", stats.Count)
	}
	if stats.Min != nil || stats.Max != nil || stats.Avg != nil {
		t.Errorf("aggregates should be nil on empty window: min=%v max=%v avg=%v",
			stats.Min, stats.Max, stats.Avg)
	}
	if !stats.Start.Equal(start) {
		t.Errorf("stats echo wrong window start: %v", stats.Start)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
