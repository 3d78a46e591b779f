// Package store persists and queries heat-flow simulation data.
//
// It owns the four persisted tables: simulation_runs, cells,
// temperatures, and metadata. A SimulationRun is one independent
// simulation execution; it exclusively owns its Cells, and each Cell
// owns its Temperature time series. Metadata is a global key-value
// table independent of any run.
//
// Entities are plain records; the Store type owns all SQL and
// transaction boundaries. Every operation opens its own implicit or
// explicit transaction and commits before returning — there is no
// long-lived session spanning public calls. Absence (unknown run, cell,
// or key) is a valid empty result, never an error; the only store-state
// error is ErrNotInitialized for use before a database is attached.
//
// Timestamps are stored as fixed-width UTC TEXT so that SQL comparison
// and ordering over the column match chronological order exactly.
package store
