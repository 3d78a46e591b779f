package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashgrove/heatflow-core/internal/infrastructure/database"
	_ "github.com/ashgrove/heatflow-core/migrations" // Register embedded schema
)

// newTestStore opens a migrated database in a temp directory and
// returns a Store over it.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "heatflow.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close() //nolint:errcheck // Test cleanup
	})

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return New(db.DB)
}

// createTestRun inserts a run with a minimal config blob.
func createTestRun(t *testing.T, s *Store, name string) *SimulationRun {
	t.Helper()

	run, err := s.CreateSimulationRun(context.Background(), name,
		`{"rooms":[],"simulation":{"timestep_s":1}}`, "")
	if err != nil {
		t.Fatalf("creating run %q: %v", name, err)
	}
	return run
}

func TestNotInitialized(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	checks := map[string]func() error{
		"CreateSimulationRun": func() error {
			_, err := s.CreateSimulationRun(ctx, "r", "{}", "")
			return err
		},
		"UpdateSimulationRunStatus": func() error {
			return s.UpdateSimulationRunStatus(ctx, 1, StatusRunning)
		},
		"GetSimulationRun": func() error {
			_, err := s.GetSimulationRun(ctx, 1)
			return err
		},
		"ListSimulationRuns": func() error {
			_, err := s.ListSimulationRuns(ctx)
			return err
		},
		"GetOrCreateCell": func() error {
			_, err := s.GetOrCreateCell(ctx, 1, 0, 0, 0, "")
			return err
		},
		"RecordTemperature": func() error {
			return s.RecordTemperature(ctx, 1, 0, 0, 0, 20, time.Time{})
		},
		"GetTemperatureHistory": func() error {
			_, err := s.GetTemperatureHistory(ctx, 1, 0, 0, 0, nil, nil)
			return err
		},
		"GetTemperaturesAtTimestamp": func() error {
			_, err := s.GetTemperaturesAtTimestamp(ctx, 1, time.Now(), 0)
			return err
		},
		"GetTemperatureRange": func() error {
			_, err := s.GetTemperatureRange(ctx, 1, time.Now(), time.Now())
			return err
		},
		"SetMetadata": func() error {
			return s.SetMetadata(ctx, "k", "v")
		},
		"GetMetadata": func() error {
			_, _, err := s.GetMetadata(ctx, "k")
			return err
		},
		"ClearSimulationRun": func() error {
			return s.ClearSimulationRun(ctx, 1)
		},
		"ClearAllData": func() error {
			return s.ClearAllData(ctx)
		},
		"CountCells": func() error {
			_, err := s.CountCells(ctx)
			return err
		},
		"CountTemperatures": func() error {
			_, err := s.CountTemperatures(ctx)
			return err
		},
	}

	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("error = %v, want ErrNotInitialized", err)
			}
		})
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, 1, 1, 12, 30, 45, 123456789, time.UTC)
	got := parseTime(formatTime(in))
	if !got.Equal(in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestTimeFormatOrdering(t *testing.T) {
	// Stored TEXT values must sort lexicographically in chronological
	// order, including across fractional-second boundaries.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(5 * time.Nanosecond),
		base.Add(500 * time.Millisecond),
		base.Add(550 * time.Millisecond),
		base.Add(time.Second),
		base.Add(time.Minute),
	}
	for i := 1; i < len(times); i++ {
		prev, cur := formatTime(times[i-1]), formatTime(times[i])
		if prev >= cur {
			t.Errorf("formatTime ordering broken: %q >= %q", prev, cur)
		}
	}
}

func TestParseTimeSecondGranularity(t *testing.T) {
	got := parseTime("2024-06-15T08:00:00Z")
	want := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTime = %v, want %v", got, want)
	}
}
