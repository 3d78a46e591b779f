package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteCellTemperature mirrors one cell reading to InfluxDB.
//
// This is the primary mirror method, called once per persisted
// reading. The write is non-blocking; data is batched and sent
// asynchronously. The cell coordinates and run ID become tags so the
// series can be filtered and grouped per cell or per run.
//
// Example:
//
//	client.WriteCellTemperature(run.ID, 1, 2, 0, "kitchen", 21.5, ts)
func (c *Client) WriteCellTemperature(runID int64, x, y, z int, roomID string, tempC float64, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	tags := map[string]string{
		"run_id": strconv.FormatInt(runID, 10),
		"x":      strconv.Itoa(x),
		"y":      strconv.Itoa(y),
		"z":      strconv.Itoa(z),
	}
	if roomID != "" {
		tags["room_id"] = roomID
	}

	point := write.NewPoint(
		"cell_temperature",
		tags,
		map[string]interface{}{
			"temp_c": tempC,
		},
		timestamp,
	)

	c.writeAPI.WritePoint(point)
}

// WriteRunEvent records a run lifecycle transition as an annotation
// series. Dashboards overlay these on the temperature curves.
func (c *Client) WriteRunEvent(runID int64, status string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"run_events",
		map[string]string{
			"run_id": strconv.FormatInt(runID, 10),
		},
		map[string]interface{}{
			"status": status,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Example:
//
//	client.WritePoint("store_stats",
//	    map[string]string{"instance": "heatflow-001"},
//	    map[string]interface{}{"cells": 900, "readings": 45000})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., backfilled data).
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
