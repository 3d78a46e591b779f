package mqtt

import "fmt"

// Topic prefixes for the heat-flow store's MQTT surface.
//
// All topics use the flat scheme: heatflow/{category}/{id...}
const (
	// TopicPrefix is the base for all heat-flow topics.
	TopicPrefix = "heatflow"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "heatflow/system"

	// TopicPrefixRuns is the base for simulation run topics.
	TopicPrefixRuns = "heatflow/runs"
)

// Topics provides builders for heat-flow MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
//
//	topics := mqtt.Topics{}
//	statusTopic := topics.RunStatus(42)
//	// Returns: "heatflow/runs/42/status"
type Topics struct{}

// SystemStatus returns the topic for the store's own online/offline
// status. Retained, so new subscribers see the last known state.
func (Topics) SystemStatus() string {
	return TopicPrefixSystem + "/status"
}

// RunStatus returns the topic for run lifecycle events (created,
// running, completed, failed).
//
// Example: heatflow/runs/42/status
func (Topics) RunStatus(runID int64) string {
	return fmt.Sprintf("%s/%d/status", TopicPrefixRuns, runID)
}

// RunCleared returns the topic announcing that a run's data was
// deleted.
//
// Example: heatflow/runs/42/cleared
func (Topics) RunCleared(runID int64) string {
	return fmt.Sprintf("%s/%d/cleared", TopicPrefixRuns, runID)
}
