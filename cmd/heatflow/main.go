// Heatflow Core - spatial-temporal store for heat-flow simulations.
//
// This is the main entry point for the heat-flow store service. The
// store persists simulation runs, their cell grids, and temperature
// time series in a single SQLite file, optionally mirroring writes to
// InfluxDB and announcing run events over MQTT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/ashgrove/heatflow-core/migrations"

	"github.com/ashgrove/heatflow-core/internal/infrastructure/config"
	"github.com/ashgrove/heatflow-core/internal/infrastructure/database"
	"github.com/ashgrove/heatflow-core/internal/infrastructure/influxdb"
	"github.com/ashgrove/heatflow-core/internal/infrastructure/logging"
	"github.com/ashgrove/heatflow-core/internal/infrastructure/mqtt"
	"github.com/ashgrove/heatflow-core/internal/recorder"
	"github.com/ashgrove/heatflow-core/internal/store"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability.
//
// Without HEATFLOW_CONFIG the command only prints its banner: the
// store is a library consumed by solvers, and the binary exists to
// verify a deployment. With HEATFLOW_CONFIG it walks the full
// bootstrap path (config, logging, database, migrations, telemetry)
// and reports the store's contents.
func run(ctx context.Context) error {
	printBanner()

	configPath := os.Getenv("HEATFLOW_CONFIG")
	if configPath == "" {
		return nil
	}

	log := logging.Default()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log = logging.New(cfg.Logging, version)
	log.Info("configuration loaded", "path", configPath)

	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("database migrations complete")

	// Optional telemetry sinks.
	var mirror recorder.TemperatureMirror
	if cfg.InfluxDB.Enabled {
		influxClient, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		mirror = influxClient
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled")
	}

	var events recorder.EventPublisher
	if cfg.MQTT.Enabled {
		mqttClient, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return fmt.Errorf("connecting to MQTT: %w", err)
		}
		defer func() {
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
		events = mqttClient
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	} else {
		log.Info("MQTT disabled")
	}

	st := store.New(db.DB)

	// Solvers embed the recorder for writes; the inspect path only reads.
	_ = recorder.New(st, mirror, events, log)

	cells, err := st.CountCells(ctx)
	if err != nil {
		return fmt.Errorf("counting cells: %w", err)
	}
	temps, err := st.CountTemperatures(ctx)
	if err != nil {
		return fmt.Errorf("counting temperatures: %w", err)
	}
	runs, err := st.ListSimulationRuns(ctx)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	log.Info("store ready",
		"instance", cfg.Store.InstanceID,
		"runs", len(runs),
		"cells", cells,
		"temperatures", temps,
	)

	return nil
}

// printBanner writes the version banner and usage hint.
func printBanner() {
	fmt.Printf("Heatflow Core %s (commit %s, built %s)\n", version, commit, date)
	fmt.Println("Spatial-temporal store for heat-flow house simulations.")
	fmt.Println()
	fmt.Println("Set HEATFLOW_CONFIG to a config.yaml to inspect a store instance.")
}
