// Package recorder is the solver-facing write facade for the
// heat-flow store.
//
// Every simulation write lands in SQLite through the store package;
// the recorder additionally fans each write out to the optional
// telemetry sinks:
//
//	solver → Recorder → store (SQLite, source of truth)
//	                  → influxdb mirror (optional)
//	                  → mqtt run events (optional)
//
// Telemetry failures are logged and never propagated: a dead broker or
// mirror must not fail a simulation step.
package recorder
