// Package influxdb provides the optional InfluxDB mirror for the
// heat-flow store.
//
// It wraps the official influxdb-client-go v2 library with patterns
// for connection management, point writing, and health monitoring.
//
// # Purpose
//
// SQLite holds the authoritative simulation data; this package mirrors
// it into a time-series database for:
//   - Live dashboards over cell temperature curves
//   - Run lifecycle annotations
//   - Retention-managed long-term telemetry
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "ashgrove",
//	    Bucket: "heatflow",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteCellTemperature(runID, 1, 2, 0, "kitchen", 21.5, ts)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via
// a callback. Connection and health check errors are returned directly.
//
// # Performance
//
// Writes are batched according to config.yaml settings (batch_size,
// flush_interval). This reduces network overhead when a simulation
// deposits thousands of readings per timestep.
package influxdb
