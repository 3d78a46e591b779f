// Package house defines the simulation configuration aggregate.
//
// A HouseConfig collects the rooms and holes of one building together
// with its physical parameters; a SimulationConfig wraps a HouseConfig
// with solver settings. Configurations are loaded from YAML documents
// and validated eagerly: per-field checks run first (each room and hole
// validates itself, physical parameters must be positive), then
// whole-configuration invariants (unique room IDs, no pairwise room
// overlap). There is no partial or lazy validation path — a config that
// loads is fully consistent.
//
// Accepted configurations serialize to JSON via ConfigJSON for verbatim
// storage alongside a simulation run.
package house
