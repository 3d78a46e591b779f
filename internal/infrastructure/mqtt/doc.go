// Package mqtt provides publish-only MQTT connectivity for the
// heat-flow store.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Run lifecycle event publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// The store uses MQTT as an optional outbound event channel: run
// status changes and data-clear events are announced so dashboards
// and downstream consumers can react without polling SQLite.
//
//	Heat-flow store → MQTT Broker → Subscribers
//
// The store never subscribes; SQLite remains the source of truth and
// every persisted write succeeds or fails independently of the broker.
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.RunStatus(run.ID)
//	client.Publish(topic, []byte(`{"status":"running"}`), 1, true)
package mqtt
